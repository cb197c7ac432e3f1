package get_available_slots

import (
	"time"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

// generateCandidateStarts генерирует кандидатов начала слота в минутах с полуночи
// Шаг сетки фиксированный от начала окна; кандидат остается, только если интервал
// [start, start+duration) целиком помещается в окно [startMin, endMin]
func generateCandidateStarts(window *domain.AvailabilityWindow, durationMin, stepMin int) []int {
	starts := make([]int, 0)
	if durationMin <= 0 || stepMin <= 0 {
		return starts
	}

	for start := window.StartMin; start+durationMin <= window.EndMin; start += stepMin {
		starts = append(starts, start)
	}

	return starts
}

// filterPastStarts убирает кандидатов, начинающихся раньше now + minNoticeMinutes
// Применяется только при бронировании на сегодня
func filterPastStarts(starts []int, now time.Time, minNoticeMinutes int) []int {
	minAllowed := now.Hour()*60 + now.Minute() + minNoticeMinutes

	filtered := make([]int, 0, len(starts))
	for _, start := range starts {
		if start >= minAllowed {
			filtered = append(filtered, start)
		}
	}
	return filtered
}

// filterOccupiedStarts убирает кандидатов, пересекающихся с бронированиями,
// занимающими календарь (PENDING/CONFIRMED)
func filterOccupiedStarts(starts []int, durationMin int, bookings []*domain.Booking) []int {
	filtered := make([]int, 0, len(starts))

	for _, start := range starts {
		occupied := false
		for _, booking := range bookings {
			if domain.BookingOverlapsSlot(booking, start, durationMin) {
				occupied = true
				break
			}
		}
		if !occupied {
			filtered = append(filtered, start)
		}
	}

	return filtered
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isDateBeyondHorizon проверяет, что дата дальше advanceDays от сегодня
func isDateBeyondHorizon(date, now time.Time, advanceDays int) bool {
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceDays)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.After(maxDate)
}
