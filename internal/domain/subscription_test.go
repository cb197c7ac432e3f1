package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionState_ServiceQuota(t *testing.T) {
	free := &SubscriptionState{ProfessionalID: 1}
	assert.Equal(t, FreeServiceQuota, free.ServiceQuota())

	premium := &SubscriptionState{ProfessionalID: 1, IsPremium: true}
	assert.Equal(t, PremiumServiceQuota, premium.ServiceQuota())
}

func TestSubscriptionState_BoostActive(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	none := &SubscriptionState{}
	assert.False(t, none.BoostActive(now))

	until := now.Add(time.Hour)
	active := &SubscriptionState{BoostActiveUntil: &until}
	assert.True(t, active.BoostActive(now))

	expired := &SubscriptionState{BoostActiveUntil: &now}
	assert.False(t, expired.BoostActive(now))
}

func TestSubscriptionState_CanStartBoost(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Бустов еще не было
	fresh := &SubscriptionState{}
	assert.True(t, fresh.CanStartBoost(now))

	// Кулдаун отсчитывается от конца предыдущего буста
	ended := now.AddDate(0, 0, -BoostCooldownDays)
	cooled := &SubscriptionState{LastBoostEndedAt: &ended}
	assert.True(t, cooled.CanStartBoost(now))

	tooSoon := now.AddDate(0, 0, -BoostCooldownDays+1)
	hot := &SubscriptionState{LastBoostEndedAt: &tooSoon}
	assert.False(t, hot.CanStartBoost(now))
}

func TestAvailabilityWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		window  AvailabilityWindow
		wantErr bool
	}{
		{name: "valid", window: AvailabilityWindow{DayOfWeek: 1, StartMin: 540, EndMin: 1080}},
		{name: "full day", window: AvailabilityWindow{DayOfWeek: 0, StartMin: 0, EndMin: 1439}},
		{name: "negative day", window: AvailabilityWindow{DayOfWeek: -1, StartMin: 540, EndMin: 1080}, wantErr: true},
		{name: "day too large", window: AvailabilityWindow{DayOfWeek: 7, StartMin: 540, EndMin: 1080}, wantErr: true},
		{name: "negative start", window: AvailabilityWindow{DayOfWeek: 1, StartMin: -10, EndMin: 600}, wantErr: true},
		{name: "end past day boundary", window: AvailabilityWindow{DayOfWeek: 1, StartMin: 540, EndMin: 1440}, wantErr: true},
		{name: "start equals end", window: AvailabilityWindow{DayOfWeek: 1, StartMin: 540, EndMin: 540}, wantErr: true},
		{name: "start after end", window: AvailabilityWindow{DayOfWeek: 1, StartMin: 600, EndMin: 540}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryDurationMinutes(t *testing.T) {
	min, err := CategoryDurationMinutes(1)
	assert.NoError(t, err)
	assert.Equal(t, 120, min)

	_, err = CategoryDurationMinutes(999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
