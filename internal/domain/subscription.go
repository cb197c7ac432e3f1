package domain

import "time"

// KYCStatus статус проверки документов профессионала (ведется identity-подсистемой)
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "PENDING"
	KYCStatusApproved KYCStatus = "APPROVED"
	KYCStatusRejected KYCStatus = "REJECTED"
)

// SubscriptionState is the owned premium/boost state of one professional.
// Written by payment callbacks, read by the capacity gate.
type SubscriptionState struct {
	ProfessionalID     int64
	IsPremium          bool
	PremiumActiveUntil *time.Time
	BoostActiveUntil   *time.Time
	LastBoostEndedAt   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ServiceQuota returns how many services the professional may keep active
func (s *SubscriptionState) ServiceQuota() int {
	if s.IsPremium {
		return PremiumServiceQuota
	}
	return FreeServiceQuota
}

// BoostActive returns true if a boost is currently running
func (s *SubscriptionState) BoostActive(now time.Time) bool {
	return s.BoostActiveUntil != nil && now.Before(*s.BoostActiveUntil)
}

// CanStartBoost returns true if a new boost may start at now:
// either no boost has ever run, or lastBoostEndedAt + BoostCooldownDays has passed
func (s *SubscriptionState) CanStartBoost(now time.Time) bool {
	if s.LastBoostEndedAt == nil {
		return true
	}
	cooldownEnd := s.LastBoostEndedAt.AddDate(0, 0, BoostCooldownDays)
	return !now.Before(cooldownEnd)
}
