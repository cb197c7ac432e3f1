package penalties

import (
	"context"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

// PenaltyRepository интерфейс репозитория штрафных записей
type PenaltyRepository interface {
	Create(ctx context.Context, record *domain.PenaltyRecord) (*domain.PenaltyRecord, error)
	CountByActor(ctx context.Context, actorID int64, penaltyType domain.PenaltyType, since time.Time) (int, error)
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
