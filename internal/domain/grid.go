package domain

import "iter"

// Каноническая сетка рабочего дня салона: 29 слотов по 30 минут,
// с 09:00 до 23:30 включительно.
const (
	SlotStepMinutes = 30
	DayStartMinutes = 9 * 60       // 09:00 — первый слот
	DayEndMinutes   = 23*60 + 30   // 23:30 — последний слот
	SlotsPerDay     = (DayEndMinutes-DayStartMinutes)/SlotStepMinutes + 1 // 29
)

// SlotsOfDay returns the canonical day grid as a restartable sequence:
// 09:00, 09:30, ..., 23:30 in ascending order.
func SlotsOfDay() iter.Seq[TimeOfDay] {
	return func(yield func(TimeOfDay) bool) {
		for m := DayStartMinutes; m <= DayEndMinutes; m += SlotStepMinutes {
			if !yield(TimeOfDayFromMinutes(m)) {
				return
			}
		}
	}
}

// IsGridSlot reports whether t is one of the canonical day slots.
func IsGridSlot(t TimeOfDay) bool {
	m := t.Minutes()
	return m >= DayStartMinutes && m <= DayEndMinutes && m%SlotStepMinutes == 0
}
