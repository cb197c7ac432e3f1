package worker

import (
	"context"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

const (
	taskExpirePending    = "expire_pending"
	taskCompleteFinished = "complete_finished"
)

// Sweeper периодически выполняет временные переходы бронирований:
// PENDING -> EXPIRED и CONFIRMED -> COMPLETED
// Переходы - условные UPDATE по статусу, поэтому запуск нескольких
// экземпляров безопасен
type Sweeper struct {
	bookingRepo BookingRepository
	interval    time.Duration
	policy      domain.BookingPolicy
	metrics     Metrics
	logger      Logger
	stopChan    chan struct{}
}

// NewSweeper создает новый экземпляр свипера
func NewSweeper(
	bookingRepo BookingRepository,
	interval time.Duration,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *Sweeper {
	return &Sweeper{
		bookingRepo: bookingRepo,
		interval:    interval,
		policy:      policy,
		metrics:     metrics,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Start запускает фоновый цикл свипера
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Sweeper: starting with interval %s", s.interval)
	go s.run(ctx)
}

// Stop останавливает фоновый цикл
func (s *Sweeper) Stop() {
	s.logger.Info("Sweeper: stopping")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	// Первый запуск сразу при старте
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Sweeper: stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Sweeper: cancelled")
			return
		}
	}
}

// Sweep выполняет один проход обеих задач
// Ошибка одной задачи не прерывает другую
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now()

	s.expirePending(ctx, now)
	s.completeFinished(ctx, now)
}

func (s *Sweeper) expirePending(ctx context.Context, now time.Time) {
	responseWindow := time.Duration(s.policy.PendingResponseWindowHours) * time.Hour

	expired, err := s.bookingRepo.ExpirePending(ctx, now, responseWindow)
	if err != nil {
		s.metrics.IncSweeperError(taskExpirePending)
		s.logger.Error("Sweeper: failed to expire pending bookings: %v", err)
		return
	}

	s.metrics.AddSweeperTransitions(taskExpirePending, float64(expired))
	if expired > 0 {
		s.logger.Info("Sweeper: expired %d pending bookings", expired)
	}
}

func (s *Sweeper) completeFinished(ctx context.Context, now time.Time) {
	completed, err := s.bookingRepo.CompleteFinished(ctx, now)
	if err != nil {
		s.metrics.IncSweeperError(taskCompleteFinished)
		s.logger.Error("Sweeper: failed to complete finished bookings: %v", err)
		return
	}

	s.metrics.AddSweeperTransitions(taskCompleteFinished, float64(completed))
	if completed > 0 {
		s.logger.Info("Sweeper: completed %d finished bookings", completed)
	}
}
