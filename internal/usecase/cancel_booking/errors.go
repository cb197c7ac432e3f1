package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied возвращается, когда актор не участник бронирования
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrInvalidTransition возвращается, когда бронирование нельзя отменить из текущего статуса
	ErrInvalidTransition = errors.New("cancel_booking: invalid status transition")

	// ErrReasonRequired возвращается, когда профессионал отменяет без причины
	ErrReasonRequired = errors.New("cancel_booking: cancellation reason is required")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
