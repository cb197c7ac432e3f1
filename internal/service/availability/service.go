package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMP-BookingService/internal/service/availability/models"
)

// Service сервис еженедельного расписания профессионала
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(availabilityRepo AvailabilityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Replace полностью заменяет еженедельное расписание профессионала
// Сохранение всегда идет целиком: день без окна в запросе удаляется
func (s *Service) Replace(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Replace: replacing schedule for professional=%d, %d windows",
		req.ProfessionalID, len(req.Windows))

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	windows := req.ToDomainWindows()

	seen := make(map[int]bool, len(windows))
	for _, window := range windows {
		if err := window.Validate(); err != nil {
			s.logger.Warn("Replace: invalid window for professional=%d: %v", req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if seen[window.DayOfWeek] {
			s.logger.Warn("Replace: duplicate day %d for professional=%d", window.DayOfWeek, req.ProfessionalID)
			return nil, fmt.Errorf("%w: day %d", ErrDuplicateDay, window.DayOfWeek)
		}
		seen[window.DayOfWeek] = true
	}

	// Удаление старых окон и вставка новых в одной транзакции:
	// промежуточное пустое расписание не должно быть видно снаружи
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.ReplaceAll(txCtx, req.ProfessionalID, windows)
	})
	if err != nil {
		s.logger.Error("Replace: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: schedule replaced for professional=%d", req.ProfessionalID)
	return s.Get(ctx, req.ProfessionalID)
}

// Get возвращает еженедельное расписание профессионала
// Пустое расписание - это валидный ответ без окон
func (s *Service) Get(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error) {
	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("Get: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindows(professionalID, windows), nil
}
