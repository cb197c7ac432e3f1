package domain

import (
	"time"

	"github.com/m04kA/SMP-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending                   BookingStatus = "PENDING"
	StatusConfirmed                 BookingStatus = "CONFIRMED"
	StatusDeclined                  BookingStatus = "DECLINED"
	StatusCancelledByClient         BookingStatus = "CANCELLED_BY_CLIENT"
	StatusCancelledByClientLate     BookingStatus = "CANCELLED_BY_CLIENT_LATE"
	StatusCancelledByPro            BookingStatus = "CANCELLED_BY_PRO"
	StatusCancelledAutoFirstConfirm BookingStatus = "CANCELLED_AUTO_FIRST_CONFIRMED"
	StatusExpired                   BookingStatus = "EXPIRED"
	StatusCompleted                 BookingStatus = "COMPLETED"
)

// Booking represents one reservation of a professional's time by a client
type Booking struct {
	ID              int64
	ClientID        int64
	ProfessionalID  int64
	CategoryID      int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Выставляется при отмене подтвержденного бронирования профессионалом
	IsModifiedByPro bool

	CancellationReason *string
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCalendar returns true if the booking blocks the professional's calendar
func (b *Booking) OccupiesCalendar() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return !b.OccupiesCalendar()
}

// CanBeCancelled returns true if the booking can still be cancelled by an actor
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StartAt returns the absolute start timestamp of the booking
func (b *Booking) StartAt() (time.Time, error) {
	return b.StartTime.On(b.BookingDate)
}

// EndAt returns the absolute end timestamp of the booking
func (b *Booking) EndAt() (time.Time, error) {
	start, err := b.StartAt()
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.DurationMinutes) * time.Minute), nil
}

// ValidStatus returns true if s is a known wire-level status
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined,
		StatusCancelledByClient, StatusCancelledByClientLate,
		StatusCancelledByPro, StatusCancelledAutoFirstConfirm,
		StatusExpired, StatusCompleted:
		return true
	}
	return false
}

// ProfessionalBookingsFilter фильтр для выборки бронирований профессионала
type ProfessionalBookingsFilter struct {
	ProfessionalID  int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли терминальные бронирования
}
