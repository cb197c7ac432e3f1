package count_penalties

import (
	"context"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

type PenaltyService interface {
	CountByActor(ctx context.Context, actorID int64, penaltyType domain.PenaltyType, days int) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
