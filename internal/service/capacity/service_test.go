package capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-BookingService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/subscription"
	identityClient "github.com/m04kA/SMP-BookingService/internal/integrations/identityservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type fakeIdentityClient struct {
	status domain.KYCStatus
	err    error
}

func (c *fakeIdentityClient) GetKYCStatus(_ context.Context, _ int64) (domain.KYCStatus, error) {
	return c.status, c.err
}

// memSubscriptionRepo повторяет условную семантику upsert реального репозитория
type memSubscriptionRepo struct {
	state *domain.SubscriptionState
	err   error
}

func (r *memSubscriptionRepo) GetByProfessional(_ context.Context, professionalID int64) (*domain.SubscriptionState, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.state == nil {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	copied := *r.state
	return &copied, nil
}

func (r *memSubscriptionRepo) StartBoost(_ context.Context, professionalID int64, now, activeUntil time.Time) error {
	if r.state == nil {
		r.state = &domain.SubscriptionState{ProfessionalID: professionalID}
	}
	if !r.state.CanStartBoost(now) {
		return subscriptionRepo.ErrCooldownActive
	}
	ended := activeUntil
	r.state.BoostActiveUntil = &activeUntil
	r.state.LastBoostEndedAt = &ended
	return nil
}

func (r *memSubscriptionRepo) UpsertPremium(_ context.Context, professionalID int64, isPremium bool, activeUntil *time.Time) error {
	if r.err != nil {
		return r.err
	}
	if r.state == nil {
		r.state = &domain.SubscriptionState{ProfessionalID: professionalID}
	}
	r.state.IsPremium = isPremium
	r.state.PremiumActiveUntil = activeUntil
	return nil
}

func testService(identity *fakeIdentityClient, subs *memSubscriptionRepo, now time.Time) *Service {
	s := NewService(identity, subs, nopLogger{})
	s.timeProvider = &fakeTimeProvider{now: now}
	return s
}

func TestCanAcceptBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, &memSubscriptionRepo{}, now)
	assert.NoError(t, s.CanAcceptBooking(context.Background(), 10))

	s = testService(&fakeIdentityClient{status: domain.KYCStatusPending}, &memSubscriptionRepo{}, now)
	assert.ErrorIs(t, s.CanAcceptBooking(context.Background(), 10), ErrKYCNotApproved)

	s = testService(&fakeIdentityClient{status: domain.KYCStatusRejected}, &memSubscriptionRepo{}, now)
	assert.ErrorIs(t, s.CanAcceptBooking(context.Background(), 10), ErrKYCNotApproved)

	s = testService(&fakeIdentityClient{err: identityClient.ErrProfessionalNotFound}, &memSubscriptionRepo{}, now)
	assert.ErrorIs(t, s.CanAcceptBooking(context.Background(), 10), ErrProfessionalNotFound)
}

func TestCanActivateService_FreeQuota(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	// Записи о подписке нет: бесплатный тариф, квота 1
	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, &memSubscriptionRepo{}, now)

	assert.NoError(t, s.CanActivateService(context.Background(), 10, 0))
	assert.ErrorIs(t, s.CanActivateService(context.Background(), 10, 1), ErrServiceLimitReached)
}

func TestCanActivateService_PremiumQuota(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &memSubscriptionRepo{state: &domain.SubscriptionState{ProfessionalID: 10, IsPremium: true}}
	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, repo, now)

	assert.NoError(t, s.CanActivateService(context.Background(), 10, 2))
	assert.ErrorIs(t, s.CanActivateService(context.Background(), 10, 3), ErrServiceLimitReached)
}

func TestStartBoost_FirstBoost(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &memSubscriptionRepo{}
	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, repo, now)

	state, err := s.StartBoost(context.Background(), 10)
	require.NoError(t, err)

	require.NotNil(t, state.BoostActiveUntil)
	assert.Equal(t, now.AddDate(0, 0, domain.BoostActiveDays), *state.BoostActiveUntil)
	assert.True(t, state.BoostActive(now))
}

func TestStartBoost_CooldownBlocksRestart(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	// Предыдущий буст закончился 20 дней назад, кулдаун 21 день
	ended := now.AddDate(0, 0, -domain.BoostCooldownDays+1)
	repo := &memSubscriptionRepo{state: &domain.SubscriptionState{
		ProfessionalID:   10,
		LastBoostEndedAt: &ended,
	}}
	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, repo, now)

	_, err := s.StartBoost(context.Background(), 10)
	assert.ErrorIs(t, err, ErrBoostCooldownActive)
}

func TestStartBoost_AfterCooldown(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ended := now.AddDate(0, 0, -domain.BoostCooldownDays)
	repo := &memSubscriptionRepo{state: &domain.SubscriptionState{
		ProfessionalID:   10,
		LastBoostEndedAt: &ended,
	}}
	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, repo, now)

	state, err := s.StartBoost(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, state.BoostActive(now))
}

func TestUpdatePremium_RaisesQuota(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &memSubscriptionRepo{}
	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, repo, now)

	// Без премиума вторая услуга не проходит
	assert.ErrorIs(t, s.CanActivateService(context.Background(), 10, 1), ErrServiceLimitReached)

	activeUntil := now.AddDate(0, 1, 0)
	state, err := s.UpdatePremium(context.Background(), 10, true, &activeUntil)
	require.NoError(t, err)
	assert.True(t, state.IsPremium)
	require.NotNil(t, state.PremiumActiveUntil)
	assert.Equal(t, activeUntil, *state.PremiumActiveUntil)

	assert.NoError(t, s.CanActivateService(context.Background(), 10, 1))
}

func TestUpdatePremium_Disable(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	activeUntil := now.AddDate(0, 1, 0)
	repo := &memSubscriptionRepo{state: &domain.SubscriptionState{
		ProfessionalID:     10,
		IsPremium:          true,
		PremiumActiveUntil: &activeUntil,
	}}
	s := testService(&fakeIdentityClient{status: domain.KYCStatusApproved}, repo, now)

	state, err := s.UpdatePremium(context.Background(), 10, false, nil)
	require.NoError(t, err)
	assert.False(t, state.IsPremium)
	assert.Nil(t, state.PremiumActiveUntil)

	assert.ErrorIs(t, s.CanActivateService(context.Background(), 10, 1), ErrServiceLimitReached)
}
