package domain

// BookingPolicy системные константы генерации слотов и жизненного цикла бронирований
// Значения фиксируются конфигурацией при старте и одинаковы для всех профессионалов
type BookingPolicy struct {
	SlotStepMinutes            int // Шаг сетки слотов
	MinBookingNoticeMinutes    int // Минимальное время до начала слота при бронировании на сегодня
	AdvanceBookingDays         int // Горизонт бронирования в днях
	PendingResponseWindowHours int // Окно ответа профессионала на PENDING
	LateCancelThresholdHours   int // Порог "поздней" отмены клиентом
}

// DefaultBookingPolicy возвращает политику с дефолтными значениями
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		SlotStepMinutes:            DefaultSlotStepMinutes,
		MinBookingNoticeMinutes:    DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays:         DefaultAdvanceBookingDays,
		PendingResponseWindowHours: DefaultPendingResponseWindowHours,
		LateCancelThresholdHours:   DefaultLateCancelThresholdHours,
	}
}
