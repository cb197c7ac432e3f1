package subscription

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SMP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий состояния подписки/буста профессионала
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessional возвращает состояние подписки профессионала
func (r *Repository) GetByProfessional(ctx context.Context, professionalID int64) (*domain.SubscriptionState, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"professional_id",
		"is_premium",
		"premium_active_until",
		"boost_active_until",
		"last_boost_ended_at",
		"created_at",
		"updated_at",
	).
		From("professional_subscriptions").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var state domain.SubscriptionState
	var premiumUntil, boostUntil, lastBoostEnded sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&state.ProfessionalID,
		&state.IsPremium,
		&premiumUntil,
		&boostUntil,
		&lastBoostEnded,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - scan row: %v", ErrScanRow, err)
	}

	if premiumUntil.Valid {
		state.PremiumActiveUntil = &premiumUntil.Time
	}
	if boostUntil.Valid {
		state.BoostActiveUntil = &boostUntil.Time
	}
	if lastBoostEnded.Valid {
		state.LastBoostEndedAt = &lastBoostEnded.Time
	}
	state.CreatedAt = createdAt.Time
	state.UpdatedAt = updatedAt.Time

	return &state, nil
}

// UpsertPremium записывает премиум-состояние профессионала
// Вызывается из обвязки платежных колбеков (вне этого сервиса)
func (r *Repository) UpsertPremium(ctx context.Context, professionalID int64, isPremium bool, activeUntil *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professional_subscriptions").
		Columns("professional_id", "is_premium", "premium_active_until").
		Values(professionalID, isPremium, activeUntil).
		Suffix(`ON CONFLICT (professional_id) DO UPDATE
			SET is_premium = EXCLUDED.is_premium,
			    premium_active_until = EXCLUDED.premium_active_until,
			    updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertPremium - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertPremium - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// StartBoost атомарно стартует буст, если кулдаун истек (или буст никогда не запускался)
// Одна условная запись: boost_active_until = activeUntil, last_boost_ended_at = activeUntil
// Если условие кулдауна не выполнено, возвращает ErrCooldownActive
func (r *Repository) StartBoost(ctx context.Context, professionalID int64, now, activeUntil time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cooldownCutoff := now.AddDate(0, 0, -domain.BoostCooldownDays)

	query, args, err := psqlbuilder.Insert("professional_subscriptions").
		Columns("professional_id", "boost_active_until", "last_boost_ended_at").
		Values(professionalID, activeUntil, activeUntil).
		Suffix(`ON CONFLICT (professional_id) DO UPDATE
			SET boost_active_until = EXCLUDED.boost_active_until,
			    last_boost_ended_at = EXCLUDED.last_boost_ended_at,
			    updated_at = NOW()
			WHERE professional_subscriptions.last_boost_ended_at IS NULL
			   OR professional_subscriptions.last_boost_ended_at <= ?`, cooldownCutoff).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: StartBoost - build upsert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: StartBoost - execute upsert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: StartBoost - get rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		return ErrCooldownActive
	}

	return nil
}
