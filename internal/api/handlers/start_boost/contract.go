package start_boost

import (
	"context"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

type CapacityService interface {
	StartBoost(ctx context.Context, professionalID int64) (*domain.SubscriptionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
