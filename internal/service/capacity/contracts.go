package capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetKYCStatus(ctx context.Context, professionalID int64) (domain.KYCStatus, error)
}

// SubscriptionRepository интерфейс репозитория состояния подписки
type SubscriptionRepository interface {
	GetByProfessional(ctx context.Context, professionalID int64) (*domain.SubscriptionState, error)
	StartBoost(ctx context.Context, professionalID int64, now, activeUntil time.Time) error
	UpsertPremium(ctx context.Context, professionalID int64, isPremium bool, activeUntil *time.Time) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
