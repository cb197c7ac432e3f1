package penalties

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	penaltyRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/penalty"
)

// Service append-only журнал штрафных событий отмен
type Service struct {
	penaltyRepo  PenaltyRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр журнала штрафов
func NewService(penaltyRepo PenaltyRepository, logger Logger) *Service {
	return &Service{
		penaltyRepo:  penaltyRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Record записывает штрафное событие
// Повторная запись за то же (booking, type) не считается ошибкой
func (s *Service) Record(ctx context.Context, penaltyType domain.PenaltyType, bookingID, actorID int64) error {
	if !domain.ValidPenaltyType(penaltyType) {
		return fmt.Errorf("%w: %s", ErrInvalidPenaltyType, penaltyType)
	}

	record := &domain.PenaltyRecord{
		Type:      penaltyType,
		BookingID: bookingID,
		ActorID:   actorID,
	}

	created, err := s.penaltyRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, penaltyRepo.ErrDuplicateRecord) {
			s.logger.Warn("Record: penalty %s for booking id=%d already recorded", penaltyType, bookingID)
			return nil
		}
		s.logger.Error("Record: failed to create penalty %s for booking id=%d: %v", penaltyType, bookingID, err)
		return fmt.Errorf("%w: failed to create penalty record: %v", ErrInternal, err)
	}

	s.logger.Info("Record: penalty id=%d type=%s booking=%d actor=%d", created.ID, penaltyType, bookingID, actorID)
	return nil
}

// CountByActor возвращает количество штрафов актора за последние days дней
func (s *Service) CountByActor(ctx context.Context, actorID int64, penaltyType domain.PenaltyType, days int) (int, error) {
	if !domain.ValidPenaltyType(penaltyType) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPenaltyType, penaltyType)
	}

	since := s.timeProvider.Now().AddDate(0, 0, -days)

	count, err := s.penaltyRepo.CountByActor(ctx, actorID, penaltyType, since)
	if err != nil {
		s.logger.Error("CountByActor: failed to count penalties for actor id=%d: %v", actorID, err)
		return 0, fmt.Errorf("%w: failed to count penalties: %v", ErrInternal, err)
	}

	return count, nil
}
