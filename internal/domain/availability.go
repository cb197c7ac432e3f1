package domain

import (
	"fmt"
	"time"
)

// AvailabilityWindow describes one day of a professional's weekly recurring schedule.
// Times are stored as minute offsets from local midnight.
type AvailabilityWindow struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      int // 0=Sunday .. 6=Saturday
	StartMin       int
	EndMin         int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate проверяет инварианты окна: 0 <= startMin < endMin <= 1439, день 0..6
func (w *AvailabilityWindow) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek must be in [0, 6], got %d", w.DayOfWeek)
	}
	if w.StartMin < 0 || w.EndMin > MinutesPerDay-1 {
		return fmt.Errorf("window must be within [0, 1439], got [%d, %d]", w.StartMin, w.EndMin)
	}
	if w.StartMin >= w.EndMin {
		return fmt.Errorf("startMin must be less than endMin, got [%d, %d]", w.StartMin, w.EndMin)
	}
	return nil
}

// DurationMinutes возвращает длину окна в минутах
func (w *AvailabilityWindow) DurationMinutes() int {
	return w.EndMin - w.StartMin
}

// DayOfWeekOf возвращает день недели даты в нумерации окон (0=Sunday)
func DayOfWeekOf(date time.Time) int {
	return int(date.Weekday())
}
