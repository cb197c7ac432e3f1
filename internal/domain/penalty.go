package domain

import "time"

// PenaltyType тип штрафного события
type PenaltyType string

const (
	// PenaltyClientCancelLate поздняя отмена подтвержденного бронирования клиентом
	PenaltyClientCancelLate PenaltyType = "CLIENT_CANCEL_LATE"
	// PenaltyProCancelConfirmed отмена подтвержденного бронирования профессионалом
	PenaltyProCancelConfirmed PenaltyType = "PRO_CANCEL_CONFIRMED"
)

// ValidPenaltyType returns true if t is a known penalty type
func ValidPenaltyType(t PenaltyType) bool {
	return t == PenaltyClientCancelLate || t == PenaltyProCancelConfirmed
}

// PenaltyRecord is an append-only record of one qualifying cancellation.
// Created exactly once per event; never mutated or deleted.
type PenaltyRecord struct {
	ID         int64
	Type       PenaltyType
	BookingID  int64
	ActorID    int64
	OccurredAt time.Time
}
