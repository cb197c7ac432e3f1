package update_booking_status

import (
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	updateBookingStatus "github.com/m04kA/SMP-BookingService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMP-BookingService/pkg/ptr"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // CONFIRMED или DECLINED
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	ProfessionalID  int64   `json:"professionalId"`
	CategoryID      int64   `json:"categoryId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	AutoCancelled   int64   `json:"autoCancelled"`
	ConfirmedAt     *string `json:"confirmedAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(bookingID, actorID int64) *updateBookingStatus.Request {
	return &updateBookingStatus.Request{
		BookingID: bookingID,
		ActorID:   actorID,
		Status:    domain.BookingStatus(r.Status),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ProfessionalID:  resp.ProfessionalID,
		CategoryID:      resp.CategoryID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		AutoCancelled:   resp.AutoCancelled,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.ConfirmedAt != nil {
		out.ConfirmedAt = ptr.Ptr(resp.ConfirmedAt.Format(time.RFC3339))
	}

	return out
}
