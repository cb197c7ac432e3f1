package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type memMetrics struct {
	mu          sync.Mutex
	transitions map[string]float64
	errors      map[string]int
}

func newMemMetrics() *memMetrics {
	return &memMetrics{
		transitions: make(map[string]float64),
		errors:      make(map[string]int),
	}
}

func (m *memMetrics) AddSweeperTransitions(task string, count float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions[task] += count
}

func (m *memMetrics) IncSweeperError(task string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[task]++
}

func (m *memMetrics) transitionCount(task string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions[task]
}

// memSweepRepo имитирует условные bulk-переходы реального репозитория:
// повторный проход ничего не находит
type memSweepRepo struct {
	pendingToExpire   int64
	confirmedToFinish int64
	expireErr         error
	completeErr       error
}

func (r *memSweepRepo) ExpirePending(_ context.Context, _ time.Time, _ time.Duration) (int64, error) {
	if r.expireErr != nil {
		return 0, r.expireErr
	}
	n := r.pendingToExpire
	r.pendingToExpire = 0
	return n, nil
}

func (r *memSweepRepo) CompleteFinished(_ context.Context, _ time.Time) (int64, error) {
	if r.completeErr != nil {
		return 0, r.completeErr
	}
	n := r.confirmedToFinish
	r.confirmedToFinish = 0
	return n, nil
}

func TestSweep_TransitionsBothTasks(t *testing.T) {
	repo := &memSweepRepo{pendingToExpire: 3, confirmedToFinish: 2}
	metrics := newMemMetrics()
	s := NewSweeper(repo, time.Minute, domain.DefaultBookingPolicy(), metrics, nopLogger{})

	s.Sweep(context.Background())

	assert.Equal(t, float64(3), metrics.transitions[taskExpirePending])
	assert.Equal(t, float64(2), metrics.transitions[taskCompleteFinished])
	assert.Empty(t, metrics.errors)
}

func TestSweep_SecondPassIsIdempotent(t *testing.T) {
	repo := &memSweepRepo{pendingToExpire: 3, confirmedToFinish: 2}
	metrics := newMemMetrics()
	s := NewSweeper(repo, time.Minute, domain.DefaultBookingPolicy(), metrics, nopLogger{})

	s.Sweep(context.Background())
	s.Sweep(context.Background())

	// Повторный проход не находит новых переходов
	assert.Equal(t, float64(3), metrics.transitions[taskExpirePending])
	assert.Equal(t, float64(2), metrics.transitions[taskCompleteFinished])
}

func TestSweep_OneFailingTaskDoesNotBlockTheOther(t *testing.T) {
	repo := &memSweepRepo{
		confirmedToFinish: 2,
		expireErr:         errors.New("connection reset"),
	}
	metrics := newMemMetrics()
	s := NewSweeper(repo, time.Minute, domain.DefaultBookingPolicy(), metrics, nopLogger{})

	s.Sweep(context.Background())

	assert.Equal(t, 1, metrics.errors[taskExpirePending])
	assert.Equal(t, float64(2), metrics.transitions[taskCompleteFinished])
}

func TestSweeper_StartStop(t *testing.T) {
	repo := &memSweepRepo{pendingToExpire: 1}
	metrics := newMemMetrics()
	s := NewSweeper(repo, 10*time.Millisecond, domain.DefaultBookingPolicy(), metrics, nopLogger{})

	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	s.Stop()
	time.Sleep(10 * time.Millisecond)

	// Первый проход при старте успел перевести ожидающую запись
	assert.Equal(t, float64(1), metrics.transitionCount(taskExpirePending))
}
