package worker

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований для фоновых переходов
type BookingRepository interface {
	ExpirePending(ctx context.Context, now time.Time, responseWindow time.Duration) (int64, error)
	CompleteFinished(ctx context.Context, now time.Time) (int64, error)
}

// Metrics интерфейс метрик фоновых задач
type Metrics interface {
	AddSweeperTransitions(task string, count float64)
	IncSweeperError(task string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
