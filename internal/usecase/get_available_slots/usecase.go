package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	storageAvailability "github.com/m04kA/SMP-BookingService/internal/infra/storage/availability"
	"github.com/m04kA/SMP-BookingService/pkg/types"
)

// UseCase возвращает доступные слоты бронирования для профессионала
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	policy           domain.BookingPolicy
	logger           Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	timeProvider TimeProvider,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     timeProvider,
		policy:           policy,
		logger:           logger,
	}
}

// Execute возвращает список доступных времён начала для заданной даты и категории
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[GetAvailableSlots] Invalid request: %v", err)
		return nil, err
	}

	// 2. Определение длительности по категории
	durationMin, err := domain.CategoryDurationMinutes(req.CategoryID)
	if err != nil {
		uc.logger.Warn("[GetAvailableSlots] Unknown category %d: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: category %d", ErrCategoryNotFound, req.CategoryID)
	}

	// 3. Проверка даты: прошлое и горизонт бронирования
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		return nil, fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}
	if isDateBeyondHorizon(req.Date, now, uc.policy.AdvanceBookingDays) {
		return nil, fmt.Errorf("%w: date %s is beyond %d days",
			ErrDateTooFarInFuture, req.Date.Format(domain.DateFormat), uc.policy.AdvanceBookingDays)
	}

	// 4. Окно доступности на день недели; нет окна - нет слотов
	window, err := uc.availabilityRepo.GetByProfessionalAndDay(ctx, req.ProfessionalID, domain.DayOfWeekOf(req.Date))
	if err != nil {
		if errors.Is(err, storageAvailability.ErrWindowNotFound) {
			return uc.emptyResponse(req, durationMin), nil
		}
		uc.logger.Error("[GetAvailableSlots] Failed to load availability window: %v", err)
		return nil, fmt.Errorf("%w: failed to load availability window", ErrInternal)
	}
	if !window.IsActive {
		return uc.emptyResponse(req, durationMin), nil
	}

	// 5. Генерация кандидатов по сетке окна
	starts := generateCandidateStarts(window, durationMin, uc.policy.SlotStepMinutes)

	// 6. На сегодня отбрасываем слоты раньше минимального упреждения
	if isSameDay(req.Date, now) {
		starts = filterPastStarts(starts, now, uc.policy.MinBookingNoticeMinutes)
	}

	// 7. Фильтрация по занятым бронированиям (PENDING/CONFIRMED)
	if len(starts) > 0 {
		bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(ctx, domain.ProfessionalBookingsFilter{
			ProfessionalID: req.ProfessionalID,
			StartDate:      &req.Date,
			EndDate:        &req.Date,
		})
		if err != nil {
			uc.logger.Error("[GetAvailableSlots] Failed to load bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to load bookings", ErrInternal)
		}
		starts = filterOccupiedStarts(starts, durationMin, bookings)
	}

	// 8. Преобразование минутных смещений в HH:MM
	slots := make([]types.TimeString, 0, len(starts))
	for _, start := range starts {
		slot, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			uc.logger.Error("[GetAvailableSlots] Failed to convert slot start %d: %v", start, err)
			return nil, fmt.Errorf("%w: failed to convert slot start", ErrInternal)
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("[GetAvailableSlots] Professional %d, date %s, category %d: %d slots",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.CategoryID, len(slots))

	return &Response{
		ProfessionalID:  req.ProfessionalID,
		CategoryID:      req.CategoryID,
		Date:            req.Date,
		DurationMinutes: durationMin,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMin int) *Response {
	return &Response{
		ProfessionalID:  req.ProfessionalID,
		CategoryID:      req.CategoryID,
		Date:            req.Date,
		DurationMinutes: durationMin,
		Slots:           []types.TimeString{},
	}
}
