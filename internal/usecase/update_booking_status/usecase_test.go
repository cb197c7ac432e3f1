package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMP-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passTxManager struct{}

func (passTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memBookingRepo повторяет условную семантику переходов реального репозитория
type memBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newMemBookingRepo(bookings ...*domain.Booking) *memBookingRepo {
	r := &memBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		copied := *b
		r.bookings[b.ID] = &copied
	}
	return r
}

func (r *memBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) Confirm(_ context.Context, id int64) error {
	b, ok := r.bookings[id]
	if !ok || b.Status != domain.StatusPending {
		return bookingRepo.ErrStatusConflict
	}
	now := time.Now()
	b.Status = domain.StatusConfirmed
	b.ConfirmedAt = &now
	return nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, id int64, from, to domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	return nil
}

func (r *memBookingRepo) CancelOverlappingPending(
	_ context.Context,
	professionalID, excludeID int64,
	date time.Time,
	startTime types.TimeString,
	durationMinutes int,
) (int64, error) {
	startMin, err := startTime.Minutes()
	if err != nil {
		return 0, err
	}

	var cancelled int64
	for _, b := range r.bookings {
		if b.ID == excludeID || b.ProfessionalID != professionalID {
			continue
		}
		if b.Status != domain.StatusPending || !b.BookingDate.Equal(date) {
			continue
		}
		if domain.BookingOverlapsSlot(b, startMin, durationMinutes) {
			b.Status = domain.StatusCancelledAutoFirstConfirm
			cancelled++
		}
	}
	return cancelled, nil
}

func pendingBooking(id, clientID, professionalID int64, start types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ClientID:        clientID,
		ProfessionalID:  professionalID,
		CategoryID:      1,
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: 120,
		Status:          domain.StatusPending,
	}
}

func TestExecute_ConfirmCancelsOverlappingPending(t *testing.T) {
	repo := newMemBookingRepo(
		pendingBooking(1, 100, 10, "10:00"),
		pendingBooking(2, 101, 10, "11:00"), // пересекается с 10:00-12:00
		pendingBooking(3, 102, 10, "14:00"), // не пересекается
		pendingBooking(4, 103, 99, "10:00"), // другой профессионал
	)
	uc := NewUseCase(repo, passTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 1, ActorID: 10, Status: domain.StatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, int64(1), resp.AutoCancelled)
	assert.NotNil(t, resp.ConfirmedAt)

	assert.Equal(t, domain.StatusCancelledAutoFirstConfirm, repo.bookings[2].Status)
	assert.Equal(t, domain.StatusPending, repo.bookings[3].Status)
	assert.Equal(t, domain.StatusPending, repo.bookings[4].Status)
}

func TestExecute_Decline(t *testing.T) {
	repo := newMemBookingRepo(pendingBooking(1, 100, 10, "10:00"))
	uc := NewUseCase(repo, passTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 1, ActorID: 10, Status: domain.StatusDeclined,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusDeclined), resp.Status)
	assert.Zero(t, resp.AutoCancelled)
	assert.Nil(t, resp.ConfirmedAt)
}

func TestExecute_OnlyProfessionalMayRespond(t *testing.T) {
	repo := newMemBookingRepo(pendingBooking(1, 100, 10, "10:00"))
	uc := NewUseCase(repo, passTxManager{}, nopLogger{})

	// Клиент не может подтвердить собственную заявку
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 1, ActorID: 100, Status: domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Посторонний тоже
	_, err = uc.Execute(context.Background(), &Request{
		BookingID: 1, ActorID: 555, Status: domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_TransitionOnlyFromPending(t *testing.T) {
	confirmed := pendingBooking(1, 100, 10, "10:00")
	confirmed.Status = domain.StatusConfirmed
	expired := pendingBooking(2, 100, 10, "14:00")
	expired.Status = domain.StatusExpired

	repo := newMemBookingRepo(confirmed, expired)
	uc := NewUseCase(repo, passTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 1, ActorID: 10, Status: domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = uc.Execute(context.Background(), &Request{
		BookingID: 2, ActorID: 10, Status: domain.StatusDeclined,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(newMemBookingRepo(), passTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42, ActorID: 10, Status: domain.StatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_RejectsOtherTargetStatuses(t *testing.T) {
	uc := NewUseCase(newMemBookingRepo(), passTxManager{}, nopLogger{})

	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusCompleted,
		domain.StatusCancelledByClient,
		domain.BookingStatus("UNKNOWN"),
	} {
		_, err := uc.Execute(context.Background(), &Request{
			BookingID: 1, ActorID: 10, Status: status,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "status %s", status)
	}
}
