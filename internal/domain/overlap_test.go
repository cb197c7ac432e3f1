package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMP-BookingService/pkg/types"
)

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aDur, bStart, bDur int
		want                       bool
	}{
		{name: "partial overlap", aStart: 690, aDur: 30, bStart: 680, bDur: 20, want: true},
		{name: "contained", aStart: 600, aDur: 120, bStart: 630, bDur: 30, want: true},
		{name: "identical", aStart: 600, aDur: 60, bStart: 600, bDur: 60, want: true},
		{name: "adjacent before does not overlap", aStart: 690, aDur: 30, bStart: 660, bDur: 30, want: false},
		{name: "adjacent after does not overlap", aStart: 690, aDur: 30, bStart: 720, bDur: 30, want: false},
		{name: "disjoint", aStart: 600, aDur: 30, bStart: 720, bDur: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalsOverlap(tt.aStart, tt.aDur, tt.bStart, tt.bDur)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, tt.want, IntervalsOverlap(tt.bStart, tt.bDur, tt.aStart, tt.aDur))
		})
	}
}

func TestBookingOverlapsSlot(t *testing.T) {
	booking := &Booking{
		StartTime:       "11:00",
		DurationMinutes: 120,
		Status:          StatusConfirmed,
	}

	assert.True(t, BookingOverlapsSlot(booking, 600, 120))  // 10:00-12:00 пересекается
	assert.True(t, BookingOverlapsSlot(booking, 660, 120))  // 11:00-13:00 совпадает
	assert.True(t, BookingOverlapsSlot(booking, 720, 120))  // 12:00-14:00 пересекается
	assert.False(t, BookingOverlapsSlot(booking, 540, 120)) // 09:00-11:00 граничит
	assert.False(t, BookingOverlapsSlot(booking, 780, 120)) // 13:00-15:00 граничит
}

func TestBookingOverlapsSlot_TerminalStatusesDoNotBlock(t *testing.T) {
	for _, status := range InactiveStatuses {
		booking := &Booking{
			StartTime:       "11:00",
			DurationMinutes: 120,
			Status:          status,
		}
		assert.False(t, BookingOverlapsSlot(booking, 660, 120), "status %s", status)
	}
}

func TestBooking_OccupiesCalendar(t *testing.T) {
	for _, status := range CalendarStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.OccupiesCalendar(), "status %s", status)
		assert.False(t, b.IsTerminal(), "status %s", status)
	}
	for _, status := range InactiveStatuses {
		b := &Booking{Status: status}
		assert.False(t, b.OccupiesCalendar(), "status %s", status)
		assert.True(t, b.IsTerminal(), "status %s", status)
	}
}

func TestBooking_StartAtEndAt(t *testing.T) {
	b := &Booking{
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 120,
	}

	start, err := b.StartAt()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), start)

	end, err := b.EndAt()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC), end)
}
