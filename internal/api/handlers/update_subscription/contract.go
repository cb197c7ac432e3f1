package update_subscription

import (
	"context"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

type CapacityService interface {
	UpdatePremium(ctx context.Context, professionalID int64, isPremium bool, activeUntil *time.Time) (*domain.SubscriptionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
