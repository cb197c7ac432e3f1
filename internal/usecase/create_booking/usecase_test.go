package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	storageAvailability "github.com/m04kA/SMP-BookingService/internal/infra/storage/availability"
	"github.com/m04kA/SMP-BookingService/internal/service/capacity"
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

// memBookingRepo хранит бронирования в памяти под мьютексом
type memBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (r *memBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *booking
	stored.ID = r.nextID
	r.bookings = append(r.bookings, &stored)

	result := stored
	return &result, nil
}

func (r *memBookingRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.ProfessionalID != filter.ProfessionalID {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

type fakeAvailabilityRepo struct {
	window *domain.AvailabilityWindow
	err    error
}

func (r *fakeAvailabilityRepo) GetByProfessionalAndDay(_ context.Context, _ int64, _ int) (*domain.AvailabilityWindow, error) {
	return r.window, r.err
}

type fakeCapacityGate struct {
	err error
}

func (g *fakeCapacityGate) CanAcceptBooking(_ context.Context, _ int64) error {
	return g.err
}

// serialTxManager имитирует сериализуемые транзакции, выполняя их по очереди
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func workingWindow() *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		DayOfWeek: 2,
		StartMin:  540,  // 09:00
		EndMin:    1080, // 18:00
		IsActive:  true,
	}
}

func testUseCase(repo *memBookingRepo, window *domain.AvailabilityWindow, now time.Time) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeAvailabilityRepo{window: window},
		&fakeCapacityGate{},
		&serialTxManager{},
		domain.BookingPolicy{
			SlotStepMinutes:         30,
			MinBookingNoticeMinutes: 60,
			AdvanceBookingDays:      30,
		},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:       1,
		ProfessionalID: 10,
		CategoryID:     1,
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecute_ValidationErrors(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "client books themselves",
			req:     &Request{ClientID: 10, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time format",
			req:     &Request{ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10-00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown category",
			req:     &Request{ClientID: 1, ProfessionalID: 10, CategoryID: 999, Date: date, StartTime: "10:00"},
			wantErr: ErrCategoryNotFound,
		},
		{
			name:    "date in past",
			req:     &Request{ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: now.AddDate(0, 0, -1), StartTime: "10:00"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date beyond horizon",
			req:     &Request{ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: now.AddDate(0, 0, 31), StartTime: "10:00"},
			wantErr: ErrDateTooFarInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_SameDayNotice(t *testing.T) {
	repo := &memBookingRepo{}
	// Сегодня 15-е, 12:00: бронь на 12:30 нарушает часовое упреждение
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: today, StartTime: "12:30",
	})
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Ровно через час - можно
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: today, StartTime: "13:00",
	})
	assert.NoError(t, err)
}

func TestExecute_NoticeWindowCrossingMidnight(t *testing.T) {
	repo := &memBookingRepo{}
	// Сегодня 23:30: порог now+60мин уходит за полночь,
	// бронь на сегодня уже невозможна ни на какой слот
	now := time.Date(2026, 9, 15, 23, 30, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: today, StartTime: "23:45",
	})
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Завтра тот же слот доступен
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: today.AddDate(0, 0, 1), StartTime: "10:00",
	})
	assert.NoError(t, err)
}

func TestExecute_SlotOutsideWindow(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// До начала окна
	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "08:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// Конец услуги выходит за окно: 17:00 + 2 часа > 18:00
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// Не по сетке: окно с 09:00, шаг 30 минут
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10:15",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_NoAvailabilityWindow(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		repo,
		&fakeAvailabilityRepo{err: storageAvailability.ErrWindowNotFound},
		&fakeCapacityGate{},
		&serialTxManager{},
		domain.DefaultBookingPolicy(),
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1,
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_KYCGate(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := testUseCase(repo, workingWindow(), now)
	uc.capacityGate = &fakeCapacityGate{err: capacity.ErrKYCNotApproved}

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrKYCNotApproved)

	uc.capacityGate = &fakeCapacityGate{err: capacity.ErrProfessionalNotFound}
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ConfirmedOverlapBlocks(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	repo.bookings = append(repo.bookings, &domain.Booking{
		ID: 100, ProfessionalID: 10, BookingDate: date,
		StartTime: "11:00", DurationMinutes: 120, Status: domain.StatusConfirmed,
	})

	// 10:00-12:00 пересекается с подтвержденным 11:00-13:00
	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// 09:00-11:00 граничит - не конфликт
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "09:00",
	})
	assert.NoError(t, err)
}

func TestExecute_OverlappingPendingsCoexist(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID: 1, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10:00",
	})
	require.NoError(t, err)

	// Пересекающийся PENDING с другим началом не блокирует
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 2, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "11:00",
	})
	assert.NoError(t, err)

	// PENDING с тем же началом - конфликт
	_, err = uc.Execute(context.Background(), &Request{
		ClientID: 3, ProfessionalID: 10, CategoryID: 1, Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ConcurrentIdenticalSlot(t *testing.T) {
	repo := &memBookingRepo{}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := testUseCase(repo, workingWindow(), now)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	const clients = 20

	var wg sync.WaitGroup
	errs := make([]error, clients)

	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{
				ClientID:       int64(i + 1),
				ProfessionalID: 100,
				CategoryID:     1,
				Date:           date,
				StartTime:      "10:00",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}

	// Слот достается ровно одному клиенту
	assert.Equal(t, 1, succeeded)
	assert.Len(t, repo.bookings, 1)
}
