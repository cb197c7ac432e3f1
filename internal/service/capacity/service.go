package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/subscription"
	identityClient "github.com/m04kA/SMP-BookingService/internal/integrations/identityservice"
)

// Service реализует гейт допуска профессионала: KYC, квота услуг, кулдаун буста
type Service struct {
	identityClient   IdentityServiceClient
	subscriptionRepo SubscriptionRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса гейта допуска
func NewService(
	identityClient IdentityServiceClient,
	subscriptionRepo SubscriptionRepository,
	logger Logger,
) *Service {
	return &Service{
		identityClient:   identityClient,
		subscriptionRepo: subscriptionRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// CanAcceptBooking проверяет, может ли профессионал принимать новые бронирования
// Требование: kycStatus == APPROVED
func (s *Service) CanAcceptBooking(ctx context.Context, professionalID int64) error {
	status, err := s.identityClient.GetKYCStatus(ctx, professionalID)
	if err != nil {
		if errors.Is(err, identityClient.ErrProfessionalNotFound) {
			s.logger.Warn("CanAcceptBooking: professional id=%d not found", professionalID)
			return ErrProfessionalNotFound
		}
		s.logger.Error("CanAcceptBooking: failed to get kyc status for professional id=%d: %v", professionalID, err)
		return fmt.Errorf("%w: failed to get kyc status: %v", ErrInternal, err)
	}

	if status != domain.KYCStatusApproved {
		s.logger.Warn("CanAcceptBooking: professional id=%d has kyc status %s", professionalID, status)
		return ErrKYCNotApproved
	}

	return nil
}

// CanActivateService проверяет, может ли профессионал активировать еще одну услугу
// Квота: 1 активная услуга без премиума, 3 с премиумом
func (s *Service) CanActivateService(ctx context.Context, professionalID int64, currentActiveCount int) error {
	state, err := s.subscriptionState(ctx, professionalID)
	if err != nil {
		s.logger.Error("CanActivateService: failed to get subscription state for professional id=%d: %v", professionalID, err)
		return fmt.Errorf("%w: failed to get subscription state: %v", ErrInternal, err)
	}

	quota := state.ServiceQuota()
	if currentActiveCount >= quota {
		s.logger.Warn("CanActivateService: professional id=%d reached quota %d/%d",
			professionalID, currentActiveCount, quota)
		return fmt.Errorf("%w: %d of %d services active", ErrServiceLimitReached, currentActiveCount, quota)
	}

	return nil
}

// StartBoost запускает буст видимости на BoostActiveDays дней
// Старт возможен, если бустов еще не было или кулдаун после предыдущего истек
// Проверка и запись выполняются одним условным upsert
func (s *Service) StartBoost(ctx context.Context, professionalID int64) (*domain.SubscriptionState, error) {
	now := s.timeProvider.Now()
	activeUntil := now.AddDate(0, 0, domain.BoostActiveDays)

	if err := s.subscriptionRepo.StartBoost(ctx, professionalID, now, activeUntil); err != nil {
		if errors.Is(err, subscriptionRepo.ErrCooldownActive) {
			s.logger.Warn("StartBoost: professional id=%d is on boost cooldown", professionalID)
			return nil, ErrBoostCooldownActive
		}
		s.logger.Error("StartBoost: failed to start boost for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to start boost: %v", ErrInternal, err)
	}

	state, err := s.subscriptionRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("StartBoost: failed to reread subscription state for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to get subscription state: %v", ErrInternal, err)
	}

	s.logger.Info("StartBoost: professional id=%d boost active until %s",
		professionalID, activeUntil.Format("2006-01-02"))

	return state, nil
}

// UpdatePremium выставляет премиум-статус профессионала
// Вызывается обвязкой платежных колбеков через внутренний endpoint
func (s *Service) UpdatePremium(ctx context.Context, professionalID int64, isPremium bool, activeUntil *time.Time) (*domain.SubscriptionState, error) {
	if err := s.subscriptionRepo.UpsertPremium(ctx, professionalID, isPremium, activeUntil); err != nil {
		s.logger.Error("UpdatePremium: failed to upsert premium for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to upsert premium: %v", ErrInternal, err)
	}

	state, err := s.subscriptionRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("UpdatePremium: failed to reread subscription state for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to get subscription state: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePremium: professional id=%d premium=%t", professionalID, isPremium)

	return state, nil
}

// subscriptionState возвращает состояние подписки; отсутствие записи означает
// бесплатный тариф без истории бустов
func (s *Service) subscriptionState(ctx context.Context, professionalID int64) (*domain.SubscriptionState, error) {
	state, err := s.subscriptionRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			return &domain.SubscriptionState{ProfessionalID: professionalID}, nil
		}
		return nil, err
	}
	return state, nil
}
