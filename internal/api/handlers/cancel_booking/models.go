package cancel_booking

import (
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	cancelBooking "github.com/m04kA/SMP-BookingService/internal/usecase/cancel_booking"
	"github.com/m04kA/SMP-BookingService/pkg/ptr"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	ClientID           int64   `json:"clientId"`
	ProfessionalID     int64   `json:"professionalId"`
	CategoryID         int64   `json:"categoryId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	PenaltyApplied     bool    `json:"penaltyApplied"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID, actorID int64) *cancelBooking.Request {
	return &cancelBooking.Request{
		BookingID: bookingID,
		ActorID:   actorID,
		Reason:    r.CancellationReason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:                 resp.ID,
		ClientID:           resp.ClientID,
		ProfessionalID:     resp.ProfessionalID,
		CategoryID:         resp.CategoryID,
		BookingDate:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		DurationMinutes:    resp.DurationMinutes,
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		PenaltyApplied:     resp.PenaltyApplied,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		out.CancelledAt = ptr.Ptr(resp.CancelledAt.Format(time.RFC3339))
	}

	return out
}
