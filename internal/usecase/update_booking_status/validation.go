package update_booking_status

import (
	"fmt"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.Status != domain.StatusConfirmed && req.Status != domain.StatusDeclined {
		return fmt.Errorf("%w: status must be %s or %s, got %s",
			ErrInvalidInput, domain.StatusConfirmed, domain.StatusDeclined, req.Status)
	}

	return nil
}
