package start_boost

import (
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/pkg/ptr"
)

// BoostResponse HTTP response model
type BoostResponse struct {
	ProfessionalID   int64   `json:"professionalId"`
	BoostActiveUntil *string `json:"boostActiveUntil,omitempty"`
	LastBoostEndedAt *string `json:"lastBoostEndedAt,omitempty"`
}

// FromDomainState конвертирует состояние подписки в HTTP response
func FromDomainState(state *domain.SubscriptionState) *BoostResponse {
	resp := &BoostResponse{ProfessionalID: state.ProfessionalID}

	if state.BoostActiveUntil != nil {
		resp.BoostActiveUntil = ptr.Ptr(state.BoostActiveUntil.Format(time.RFC3339))
	}
	if state.LastBoostEndedAt != nil {
		resp.LastBoostEndedAt = ptr.Ptr(state.LastBoostEndedAt.Format(time.RFC3339))
	}

	return resp
}
