package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	storageAvailability "github.com/m04kA/SMP-BookingService/internal/infra/storage/availability"
	"github.com/m04kA/SMP-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, r.err
}

type fakeAvailabilityRepo struct {
	window *domain.AvailabilityWindow
	err    error
}

func (r *fakeAvailabilityRepo) GetByProfessionalAndDay(_ context.Context, _ int64, _ int) (*domain.AvailabilityWindow, error) {
	return r.window, r.err
}

func TestGenerateCandidateStarts(t *testing.T) {
	window := &domain.AvailabilityWindow{StartMin: 540, EndMin: 1080} // 09:00-18:00

	// Двухчасовая услуга с часовым шагом: 09:00..16:00
	starts := generateCandidateStarts(window, 120, 60)
	assert.Equal(t, []int{540, 600, 660, 720, 780, 840, 900, 960}, starts)

	// Слот должен целиком помещаться в окно
	starts = generateCandidateStarts(window, 540, 60)
	assert.Equal(t, []int{540}, starts)

	starts = generateCandidateStarts(window, 600, 60)
	assert.Empty(t, starts)
}

func TestFilterPastStarts(t *testing.T) {
	starts := []int{540, 600, 660, 720}
	now := time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)

	// 09:30 + 60 минут упреждения: остаются слоты с 10:30
	filtered := filterPastStarts(starts, now, 60)
	assert.Equal(t, []int{660, 720}, filtered)

	// Граница включается: слот ровно в now+notice доступен
	now = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	filtered = filterPastStarts(starts, now, 60)
	assert.Equal(t, []int{660, 720}, filtered)
}

func TestFilterOccupiedStarts(t *testing.T) {
	starts := []int{540, 600, 660, 720, 780}
	bookings := []*domain.Booking{
		{StartTime: "11:00", DurationMinutes: 120, Status: domain.StatusConfirmed},
	}

	// Занято 11:00-13:00: выбывают старты 10:00, 11:00, 12:00
	filtered := filterOccupiedStarts(starts, 120, bookings)
	assert.Equal(t, []int{540, 780}, filtered)
}

func TestExecute_HappyPath(t *testing.T) {
	// Вторник 2026-09-15, окно 09:00-18:00, услуга 2 часа, занято 11:00-13:00
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "11:00", DurationMinutes: 120, Status: domain.StatusConfirmed},
		}},
		&fakeAvailabilityRepo{window: &domain.AvailabilityWindow{
			DayOfWeek: 2, StartMin: 540, EndMin: 1080, IsActive: true,
		}},
		&fakeTimeProvider{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)},
		domain.BookingPolicy{
			SlotStepMinutes:         60,
			MinBookingNoticeMinutes: 60,
			AdvanceBookingDays:      30,
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 10,
		CategoryID:     1,
		Date:           date,
	})
	require.NoError(t, err)

	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, []types.TimeString{"09:00", "13:00", "14:00", "15:00", "16:00"}, resp.Slots)
}

func TestExecute_PendingAlsoBlocksSlots(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "09:00", DurationMinutes: 120, Status: domain.StatusPending},
		}},
		&fakeAvailabilityRepo{window: &domain.AvailabilityWindow{
			DayOfWeek: 2, StartMin: 540, EndMin: 780, IsActive: true,
		}},
		&fakeTimeProvider{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)},
		domain.BookingPolicy{SlotStepMinutes: 60, MinBookingNoticeMinutes: 60, AdvanceBookingDays: 30},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 10, CategoryID: 1, Date: date})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"11:00"}, resp.Slots)
}

func TestExecute_NoWindowReturnsEmptyList(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{err: storageAvailability.ErrWindowNotFound},
		&fakeTimeProvider{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)},
		domain.DefaultBookingPolicy(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 10, CategoryID: 1, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_InactiveWindowReturnsEmptyList(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{window: &domain.AvailabilityWindow{
			DayOfWeek: 2, StartMin: 540, EndMin: 1080, IsActive: false,
		}},
		&fakeTimeProvider{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)},
		domain.DefaultBookingPolicy(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 10, CategoryID: 1, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DateValidation(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{window: &domain.AvailabilityWindow{
			StartMin: 540, EndMin: 1080, IsActive: true,
		}},
		&fakeTimeProvider{now: now},
		domain.DefaultBookingPolicy(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 10, CategoryID: 1,
		Date: now.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{
		ProfessionalID: 10, CategoryID: 1,
		Date: now.AddDate(0, 0, 31),
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// Граница горизонта включается
	_, err = uc.Execute(context.Background(), &Request{
		ProfessionalID: 10, CategoryID: 1,
		Date: now.AddDate(0, 0, 30),
	})
	assert.NoError(t, err)
}

func TestExecute_SameDayNoticeFilter(t *testing.T) {
	// Запрос на сегодня в 12:30: слоты раньше 13:30 отбрасываются
	now := time.Date(2026, 9, 15, 12, 30, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{window: &domain.AvailabilityWindow{
			DayOfWeek: 2, StartMin: 540, EndMin: 1080, IsActive: true,
		}},
		&fakeTimeProvider{now: now},
		domain.BookingPolicy{SlotStepMinutes: 60, MinBookingNoticeMinutes: 60, AdvanceBookingDays: 30},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 10, CategoryID: 1,
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00", "15:00", "16:00"}, resp.Slots)
}

func TestExecute_UnknownCategory(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{},
		&fakeTimeProvider{now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)},
		domain.DefaultBookingPolicy(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 10, CategoryID: 999,
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
