package domain

// IntervalsOverlap проверяет пересечение интервалов [aStart, aStart+aDur) и [bStart, bStart+bDur)
// Интервалы пересекаются только при строгом наложении: граничащие интервалы
// (конец одного совпадает с началом другого) пересечением НЕ считаются
//
// Примеры:
// - [690, 720) и [680, 700) → пересекаются (690-700)
// - [690, 720) и [660, 690) → не пересекаются (граничат)
// - [690, 720) и [720, 750) → не пересекаются (граничат)
func IntervalsOverlap(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// BookingOverlapsSlot проверяет, пересекается ли бронирование со слотом,
// заданным началом в минутах с полуночи и длительностью
// Бронирования, не занимающие календарь, пересечением не считаются
func BookingOverlapsSlot(b *Booking, slotStartMin, slotDurationMin int) bool {
	if !b.OccupiesCalendar() {
		return false
	}
	bookingStart, err := b.StartTime.Minutes()
	if err != nil {
		// Некорректное время в записи не должно блокировать слот
		return false
	}
	return IntervalsOverlap(slotStartMin, slotDurationMin, bookingStart, b.DurationMinutes)
}
