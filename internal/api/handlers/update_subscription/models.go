package update_subscription

import (
	"fmt"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/pkg/ptr"
)

// UpdateSubscriptionRequest HTTP request model
type UpdateSubscriptionRequest struct {
	IsPremium          bool    `json:"isPremium"`
	PremiumActiveUntil *string `json:"premiumActiveUntil,omitempty"`
}

// SubscriptionResponse HTTP response model
type SubscriptionResponse struct {
	ProfessionalID     int64   `json:"professionalId"`
	IsPremium          bool    `json:"isPremium"`
	PremiumActiveUntil *string `json:"premiumActiveUntil,omitempty"`
	BoostActiveUntil   *string `json:"boostActiveUntil,omitempty"`
}

// ActiveUntil парсит срок действия премиума из запроса
// Для активного премиума срок обязателен, при отключении игнорируется
func (r *UpdateSubscriptionRequest) ActiveUntil() (*time.Time, error) {
	if !r.IsPremium {
		return nil, nil
	}
	if r.PremiumActiveUntil == nil {
		return nil, fmt.Errorf("premiumActiveUntil is required when isPremium is true")
	}
	t, err := time.Parse(time.RFC3339, *r.PremiumActiveUntil)
	if err != nil {
		return nil, fmt.Errorf("invalid premiumActiveUntil: %v", err)
	}
	return &t, nil
}

// FromDomainState конвертирует состояние подписки в HTTP response
func FromDomainState(state *domain.SubscriptionState) *SubscriptionResponse {
	resp := &SubscriptionResponse{
		ProfessionalID: state.ProfessionalID,
		IsPremium:      state.IsPremium,
	}

	if state.PremiumActiveUntil != nil {
		resp.PremiumActiveUntil = ptr.Ptr(state.PremiumActiveUntil.Format(time.RFC3339))
	}
	if state.BoostActiveUntil != nil {
		resp.BoostActiveUntil = ptr.Ptr(state.BoostActiveUntil.Format(time.RFC3339))
	}

	return resp
}
