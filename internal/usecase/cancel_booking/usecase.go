package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования клиентом или профессионалом
type UseCase struct {
	bookingRepo   BookingRepository
	penaltyLedger PenaltyLedger
	txManager     TransactionManager
	timeProvider  TimeProvider
	policy        domain.BookingPolicy
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	penaltyLedger PenaltyLedger,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		penaltyLedger: penaltyLedger,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		policy:        policy,
		logger:        logger,
	}
}

// Execute выполняет отмену бронирования
// Клиент: PENDING отменяется без штрафа; CONFIRMED менее чем за
// LateCancelThresholdHours до начала классифицируется как поздняя отмена
// и создает штрафную запись CLIENT_CANCEL_LATE
// Профессионал: отменяет только CONFIRMED, причина обязательна,
// штрафная запись PRO_CANCEL_CONFIRMED создается всегда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, actor=%d", req.BookingID, req.ActorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result         *domain.Booking
		penaltyApplied bool
	)

	// 2. Отмена и запись штрафа в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отменять может только клиент или профессионал бронирования
		switch req.ActorID {
		case booking.ClientID:
			penaltyApplied, err = uc.cancelByClient(txCtx, booking, req, now)
		case booking.ProfessionalID:
			penaltyApplied, err = uc.cancelByProfessional(txCtx, booking, req)
		default:
			uc.logger.Warn("CancelBooking: actor=%d is not a participant of booking id=%d",
				req.ActorID, req.BookingID)
			return ErrAccessDenied
		}
		if err != nil {
			return err
		}

		// 2.3. Перечитываем обновленное бронирование
		updated, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to reread booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to reread booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled with status=%s, penalty=%t",
		result.ID, result.Status, penaltyApplied)

	return &Response{
		ID:                 result.ID,
		ClientID:           result.ClientID,
		ProfessionalID:     result.ProfessionalID,
		CategoryID:         result.CategoryID,
		BookingDate:        result.BookingDate,
		StartTime:          result.StartTime,
		DurationMinutes:    result.DurationMinutes,
		Status:             string(result.Status),
		CancellationReason: result.CancellationReason,
		PenaltyApplied:     penaltyApplied,
		CancelledAt:        result.CancelledAt,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}

// cancelByClient отменяет бронирование от имени клиента
func (uc *UseCase) cancelByClient(ctx context.Context, booking *domain.Booking, req *Request, now time.Time) (bool, error) {
	switch booking.Status {
	case domain.StatusPending:
		// Отмена заявки до подтверждения, без штрафа
		if err := uc.bookingRepo.Cancel(ctx, booking.ID, domain.StatusPending, domain.StatusCancelledByClient, req.Reason, false); err != nil {
			return false, uc.mapCancelError(err, booking.ID)
		}
		return false, nil

	case domain.StatusConfirmed:
		cancelStatus := domain.StatusCancelledByClient
		late, err := uc.isLateCancellation(booking, now)
		if err != nil {
			return false, fmt.Errorf("%w: failed to classify cancellation: %v", ErrInternal, err)
		}
		if late {
			cancelStatus = domain.StatusCancelledByClientLate
		}

		if err := uc.bookingRepo.Cancel(ctx, booking.ID, domain.StatusConfirmed, cancelStatus, req.Reason, false); err != nil {
			return false, uc.mapCancelError(err, booking.ID)
		}

		if late {
			if err := uc.penaltyLedger.Record(ctx, domain.PenaltyClientCancelLate, booking.ID, booking.ClientID); err != nil {
				uc.logger.Error("CancelBooking: failed to record client penalty for booking id=%d: %v", booking.ID, err)
				return false, fmt.Errorf("%w: failed to record penalty: %v", ErrInternal, err)
			}
			return true, nil
		}
		return false, nil

	default:
		uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled from status %s", booking.ID, booking.Status)
		return false, fmt.Errorf("%w: booking is in status %s", ErrInvalidTransition, booking.Status)
	}
}

// cancelByProfessional отменяет подтвержденное бронирование от имени профессионала
// Отмена PENDING профессионалом не поддерживается - для этого есть отклонение
func (uc *UseCase) cancelByProfessional(ctx context.Context, booking *domain.Booking, req *Request) (bool, error) {
	if booking.Status != domain.StatusConfirmed {
		uc.logger.Warn("CancelBooking: professional cannot cancel booking id=%d in status %s", booking.ID, booking.Status)
		return false, fmt.Errorf("%w: booking is in status %s", ErrInvalidTransition, booking.Status)
	}

	if req.Reason == nil {
		uc.logger.Warn("CancelBooking: professional cancellation of booking id=%d without reason", booking.ID)
		return false, ErrReasonRequired
	}

	if err := uc.bookingRepo.Cancel(ctx, booking.ID, domain.StatusConfirmed, domain.StatusCancelledByPro, req.Reason, true); err != nil {
		return false, uc.mapCancelError(err, booking.ID)
	}

	// Отмена подтвержденного бронирования профессионалом штрафуется всегда
	if err := uc.penaltyLedger.Record(ctx, domain.PenaltyProCancelConfirmed, booking.ID, booking.ProfessionalID); err != nil {
		uc.logger.Error("CancelBooking: failed to record professional penalty for booking id=%d: %v", booking.ID, err)
		return false, fmt.Errorf("%w: failed to record penalty: %v", ErrInternal, err)
	}

	return true, nil
}

// isLateCancellation возвращает true, если до начала бронирования осталось
// меньше LateCancelThresholdHours
func (uc *UseCase) isLateCancellation(booking *domain.Booking, now time.Time) (bool, error) {
	startAt, err := booking.StartAt()
	if err != nil {
		return false, err
	}
	threshold := time.Duration(uc.policy.LateCancelThresholdHours) * time.Hour
	return startAt.Sub(now) < threshold, nil
}

func (uc *UseCase) mapCancelError(err error, bookingID int64) error {
	if errors.Is(err, bookingRepo.ErrStatusConflict) {
		return fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
	}
	uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", bookingID, err)
	return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
}
