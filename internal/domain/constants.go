package domain

// Default booking policy values
const (
	DefaultSlotStepMinutes            = 30
	DefaultMinBookingNoticeMinutes    = 60 // 1 hour
	DefaultAdvanceBookingDays         = 30
	DefaultPendingResponseWindowHours = 24
	DefaultLateCancelThresholdHours   = 24
)

// Boost constants
const (
	BoostActiveDays   = 7
	BoostCooldownDays = 21 // 7 активных + 14 отдыха
)

// Service activation quotas
const (
	FreeServiceQuota    = 1
	PremiumServiceQuota = 3
)

// Business validation constants
const (
	MinCancellationReasonLength = 5
	MaxCancellationReasonLength = 200
	MinutesPerDay               = 1440
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CalendarStatuses статусы, занимающие календарь профессионала
// Используются при подсчете доступных слотов и проверке конфликтов
var CalendarStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses терминальные статусы
// Используются для фильтрации при выдаче календаря профессионала
var InactiveStatuses = []BookingStatus{
	StatusDeclined,
	StatusCancelledByClient,
	StatusCancelledByClientLate,
	StatusCancelledByPro,
	StatusCancelledAutoFirstConfirm,
	StatusExpired,
	StatusCompleted,
}
