package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	"github.com/m04kA/SMP-BookingService/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type txMarkerKey struct{}

// markingTxManager помечает контекст транзакции, чтобы репозиторий
// мог проверить, что его вызвали внутри Do
type markingTxManager struct {
	calls int
}

func (m *markingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(context.WithValue(ctx, txMarkerKey{}, true))
}

type memAvailabilityRepo struct {
	windows      map[int64][]*domain.AvailabilityWindow
	replacedInTx bool
}

func newMemAvailabilityRepo() *memAvailabilityRepo {
	return &memAvailabilityRepo{windows: make(map[int64][]*domain.AvailabilityWindow)}
}

func (r *memAvailabilityRepo) ReplaceAll(ctx context.Context, professionalID int64, windows []*domain.AvailabilityWindow) error {
	r.replacedInTx, _ = ctx.Value(txMarkerKey{}).(bool)
	r.windows[professionalID] = windows
	return nil
}

func (r *memAvailabilityRepo) GetByProfessional(_ context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error) {
	return r.windows[professionalID], nil
}

func TestReplace_StoresSchedule(t *testing.T) {
	repo := newMemAvailabilityRepo()
	s := NewService(repo, &markingTxManager{}, nopLogger{})

	resp, err := s.Replace(context.Background(), &models.ReplaceScheduleRequest{
		ProfessionalID: 10,
		Windows: []models.WindowPayload{
			{DayOfWeek: 1, StartMin: 540, EndMin: 1080, IsActive: true},
			{DayOfWeek: 2, StartMin: 600, EndMin: 900, IsActive: true},
			{DayOfWeek: 6, StartMin: 600, EndMin: 780, IsActive: false},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ProfessionalID)
	assert.Len(t, resp.Windows, 3)
	assert.Equal(t, 540, resp.Windows[0].StartMin)
	assert.False(t, resp.Windows[2].IsActive)
}

func TestReplace_EmptyScheduleClearsWindows(t *testing.T) {
	repo := newMemAvailabilityRepo()
	s := NewService(repo, &markingTxManager{}, nopLogger{})

	_, err := s.Replace(context.Background(), &models.ReplaceScheduleRequest{
		ProfessionalID: 10,
		Windows: []models.WindowPayload{
			{DayOfWeek: 1, StartMin: 540, EndMin: 1080, IsActive: true},
		},
	})
	require.NoError(t, err)

	resp, err := s.Replace(context.Background(), &models.ReplaceScheduleRequest{
		ProfessionalID: 10,
		Windows:        []models.WindowPayload{},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestReplace_RunsInsideTransaction(t *testing.T) {
	repo := newMemAvailabilityRepo()
	txManager := &markingTxManager{}
	s := NewService(repo, txManager, nopLogger{})

	_, err := s.Replace(context.Background(), &models.ReplaceScheduleRequest{
		ProfessionalID: 10,
		Windows: []models.WindowPayload{
			{DayOfWeek: 1, StartMin: 540, EndMin: 1080, IsActive: true},
		},
	})
	require.NoError(t, err)

	// Delete и insert выполняются одним вызовом внутри транзакции
	assert.Equal(t, 1, txManager.calls)
	assert.True(t, repo.replacedInTx)
}

func TestReplace_RejectsDuplicateDay(t *testing.T) {
	s := NewService(newMemAvailabilityRepo(), &markingTxManager{}, nopLogger{})

	_, err := s.Replace(context.Background(), &models.ReplaceScheduleRequest{
		ProfessionalID: 10,
		Windows: []models.WindowPayload{
			{DayOfWeek: 1, StartMin: 540, EndMin: 720, IsActive: true},
			{DayOfWeek: 1, StartMin: 780, EndMin: 1080, IsActive: true},
		},
	})
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestReplace_RejectsInvalidWindow(t *testing.T) {
	s := NewService(newMemAvailabilityRepo(), &markingTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		window models.WindowPayload
	}{
		{name: "bad day", window: models.WindowPayload{DayOfWeek: 7, StartMin: 540, EndMin: 1080}},
		{name: "start after end", window: models.WindowPayload{DayOfWeek: 1, StartMin: 1080, EndMin: 540}},
		{name: "end past day boundary", window: models.WindowPayload{DayOfWeek: 1, StartMin: 540, EndMin: 1440}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Replace(context.Background(), &models.ReplaceScheduleRequest{
				ProfessionalID: 10,
				Windows:        []models.WindowPayload{tt.window},
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGet_EmptyScheduleIsValid(t *testing.T) {
	s := NewService(newMemAvailabilityRepo(), &markingTxManager{}, nopLogger{})

	resp, err := s.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}
