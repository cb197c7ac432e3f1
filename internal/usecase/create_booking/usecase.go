package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	storageAvailability "github.com/m04kA/SMP-BookingService/internal/infra/storage/availability"
	"github.com/m04kA/SMP-BookingService/internal/service/capacity"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	capacityGate     CapacityGate
	txManager        TransactionManager
	timeProvider     TimeProvider
	policy           domain.BookingPolicy
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	capacityGate CapacityGate,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		capacityGate:     capacityGate,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		policy:           policy,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции: список слотов, показанный клиенту, к этому моменту мог устареть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, professional=%d, category=%d, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.CategoryID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Гейт допуска: профессионал должен пройти KYC
	if err := uc.capacityGate.CanAcceptBooking(ctx, req.ProfessionalID); err != nil {
		switch {
		case errors.Is(err, capacity.ErrProfessionalNotFound):
			uc.logger.Warn("CreateBooking: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		case errors.Is(err, capacity.ErrKYCNotApproved):
			uc.logger.Warn("CreateBooking: professional id=%d cannot accept bookings, kyc not approved", req.ProfessionalID)
			return nil, ErrKYCNotApproved
		default:
			uc.logger.Error("CreateBooking: capacity gate failed for professional id=%d: %v", req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: capacity gate failed: %v", ErrInternal, err)
		}
	}

	// 4. Определяем длительность по категории
	durationMin, err := domain.CategoryDurationMinutes(req.CategoryID)
	if err != nil {
		uc.logger.Warn("CreateBooking: unknown category id=%d", req.CategoryID)
		return nil, fmt.Errorf("%w: category %d", ErrCategoryNotFound, req.CategoryID)
	}

	// 5. Валидация даты и упреждения
	if err := validateDate(req.Date, now, uc.policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateBookingTime(req.Date, req.StartTime, now, uc.policy.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 6. Атомарная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Окно доступности на день недели
		window, err := uc.availabilityRepo.GetByProfessionalAndDay(txCtx, req.ProfessionalID, domain.DayOfWeekOf(req.Date))
		if err != nil {
			if errors.Is(err, storageAvailability.ErrWindowNotFound) {
				uc.logger.Warn("CreateBooking: professional id=%d has no availability on %s",
					req.ProfessionalID, req.Date.Format(domain.DateFormat))
				return fmt.Errorf("%w: professional is not available on this day", ErrInvalidTimeSlot)
			}
			uc.logger.Error("CreateBooking: failed to get availability window: %v", err)
			return fmt.Errorf("%w: failed to get availability window: %v", ErrInternal, err)
		}
		if !window.IsActive {
			return fmt.Errorf("%w: professional is not available on this day", ErrInvalidTimeSlot)
		}

		// 6.2. Слот внутри окна и по сетке
		if err := validateSlotInWindow(startMin, durationMin, window, uc.policy.SlotStepMinutes); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// 6.3. Читаем занимающие календарь бронирования на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(txCtx, domain.ProfessionalBookingsFilter{
			ProfessionalID: req.ProfessionalID,
			StartDate:      &req.Date,
			EndDate:        &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.4. Проверяем конфликт: пересечение с CONFIRMED или дубль PENDING
		if conflict := findConflict(startMin, durationMin, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s taken by booking id=%d (%s)",
				req.StartTime, conflict.ID, conflict.Status)
			return ErrSlotTaken
		}

		// 6.5. Создаем бронирование в статусе PENDING
		booking := &domain.Booking{
			ClientID:        req.ClientID,
			ProfessionalID:  req.ProfessionalID,
			CategoryID:      req.CategoryID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMin,
			Status:          domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ProfessionalID:  result.ProfessionalID,
		CategoryID:      result.CategoryID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
