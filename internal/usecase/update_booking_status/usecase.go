package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/booking"
)

// UseCase use case подтверждения или отклонения бронирования профессионалом
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет переход PENDING -> CONFIRMED или PENDING -> DECLINED
// При подтверждении все остальные PENDING того же профессионала, пересекающиеся
// с подтвержденным интервалом, переводятся в CANCELLED_AUTO_FIRST_CONFIRMED:
// при нескольких заявках на один слот побеждает первое подтверждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%d, actor=%d, status=%s",
		req.BookingID, req.ActorID, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	var (
		result        *domain.Booking
		autoCancelled int64
	)

	// 2. Переход и авто-отмена конкурентов в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Подтверждать и отклонять может только профессионал бронирования
		if booking.ProfessionalID != req.ActorID {
			uc.logger.Warn("UpdateBookingStatus: actor=%d is not the professional of booking id=%d",
				req.ActorID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Переход возможен только из PENDING
		if booking.Status != domain.StatusPending {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d is in status %s", req.BookingID, booking.Status)
			return fmt.Errorf("%w: booking is in status %s", ErrInvalidTransition, booking.Status)
		}

		switch req.Status {
		case domain.StatusConfirmed:
			if err := uc.bookingRepo.Confirm(txCtx, req.BookingID); err != nil {
				if errors.Is(err, bookingRepo.ErrStatusConflict) {
					return fmt.Errorf("%w: booking is no longer pending", ErrInvalidTransition)
				}
				uc.logger.Error("UpdateBookingStatus: failed to confirm booking id=%d: %v", req.BookingID, err)
				return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
			}

			autoCancelled, err = uc.bookingRepo.CancelOverlappingPending(
				txCtx, booking.ProfessionalID, booking.ID,
				booking.BookingDate, booking.StartTime, booking.DurationMinutes,
			)
			if err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to cancel overlapping pending bookings: %v", err)
				return fmt.Errorf("%w: failed to cancel overlapping bookings: %v", ErrInternal, err)
			}

		case domain.StatusDeclined:
			if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusPending, domain.StatusDeclined); err != nil {
				if errors.Is(err, bookingRepo.ErrStatusConflict) {
					return fmt.Errorf("%w: booking is no longer pending", ErrInvalidTransition)
				}
				uc.logger.Error("UpdateBookingStatus: failed to decline booking id=%d: %v", req.BookingID, err)
				return fmt.Errorf("%w: failed to decline booking: %v", ErrInternal, err)
			}
		}

		// 2.4. Перечитываем обновленное бронирование
		updated, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to reread booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to reread booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d is now %s, auto-cancelled %d pending",
		result.ID, result.Status, autoCancelled)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ProfessionalID:  result.ProfessionalID,
		CategoryID:      result.CategoryID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		AutoCancelled:   autoCancelled,
		ConfirmedAt:     result.ConfirmedAt,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
