package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ClientID == req.ProfessionalID {
		return fmt.Errorf("%w: client cannot book themselves", ErrInvalidInput)
	}

	if req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не за горизонтом бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)
	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateBookingTime проверяет, что бронирование не нарушает minBookingNoticeMinutes
// Сравнение идет в минутах с полуночи: порог now+notice может выйти за границу
// суток, тогда ни один слот на сегодня уже не доступен
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	// Для будущих дат проверка упреждения не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	startMin, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	minAllowed := now.Hour()*60 + now.Minute() + minBookingNoticeMinutes
	if startMin < minAllowed {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

// validateSlotInWindow проверяет, что слот лежит внутри окна доступности
// и выровнен по сетке слотов от начала окна
func validateSlotInWindow(startMin, durationMin int, window *domain.AvailabilityWindow, stepMin int) error {
	if startMin < window.StartMin || startMin+durationMin > window.EndMin {
		return fmt.Errorf("%w: slot is outside the availability window", ErrInvalidTimeSlot)
	}

	if (startMin-window.StartMin)%stepMin != 0 {
		return fmt.Errorf("%w: slot start is not aligned to %d-minute grid", ErrInvalidTimeSlot, stepMin)
	}

	return nil
}

// findConflict ищет бронирование, блокирующее создание нового:
// пересечение с CONFIRMED либо PENDING с тем же самым временем начала
// Пересекающиеся PENDING с другим началом не блокируют - конфликт разрешит
// первое подтверждение профессионала
func findConflict(startMin, durationMin int, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if !booking.OccupiesCalendar() {
			continue
		}

		switch booking.Status {
		case domain.StatusConfirmed:
			if domain.BookingOverlapsSlot(booking, startMin, durationMin) {
				return booking
			}
		case domain.StatusPending:
			bookingStart, err := booking.StartTime.Minutes()
			if err != nil {
				continue
			}
			if bookingStart == startMin {
				return booking
			}
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
