package penalty

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SMP-BookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки unique_violation
const pgUniqueViolation = "23505"

// Repository append-only репозиторий штрафных записей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория штрафов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает штрафное событие
// Повторная запись за то же (booking, type) отклоняется уникальным индексом
func (r *Repository) Create(ctx context.Context, record *domain.PenaltyRecord) (*domain.PenaltyRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("penalty_records").
		Columns("type", "booking_id", "actor_id").
		Values(record.Type, record.BookingID, record.ActorID).
		Suffix("RETURNING id, occurred_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var occurredAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &occurredAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.OccurredAt = occurredAt.Time

	return record, nil
}

// CountByActor возвращает количество штрафов актора указанного типа начиная с since
func (r *Repository) CountByActor(ctx context.Context, actorID int64, penaltyType domain.PenaltyType, since time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("penalty_records").
		Where(squirrel.Eq{
			"actor_id": actorID,
			"type":     penaltyType,
		}).
		Where(squirrel.GtOrEq{"occurred_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByActor - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByActor - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
