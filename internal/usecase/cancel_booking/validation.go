package cancel_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

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

	if req.Reason != nil {
		if err := validateReason(*req.Reason); err != nil {
			return err
		}
	}

	return nil
}

// validateReason проверяет длину причины отмены
func validateReason(reason string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(reason))
	if length < domain.MinCancellationReasonLength || length > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must be %d-%d characters",
			ErrInvalidInput, domain.MinCancellationReasonLength, domain.MaxCancellationReasonLength)
	}
	return nil
}
