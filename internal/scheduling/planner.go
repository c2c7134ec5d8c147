package scheduling

import (
	"time"

	"github.com/salonix/booking-service/internal/domain"
)

// AvailableSlots builds the annotated slot list for one staff member and
// date from snapshots of their availability windows and booked intervals.
//
// Rules:
//   - date strictly before today (calendar day) → empty list, no booking
//     into the past;
//   - on today's date slots that have already started (slot <= now) are
//     dropped;
//   - with explicit windows only slots inside availability are returned,
//     booked ones included and flagged so the UI can render them as
//     unselectable instead of hiding them;
//   - with zero windows the default-open fallback emits every remaining
//     canonical slot annotated with the booked flag only.
//
// The result is always in chronological order. The function is pure:
// identical snapshots produce identical output.
func AvailableSlots(
	windows []domain.AvailabilityWindow,
	intervals []domain.BookedInterval,
	date domain.CalendarDate,
	now time.Time,
) []domain.SlotState {
	if date.IsPast(now) {
		return []domain.SlotState{}
	}

	isToday := date.IsToday(now)
	cutoff := domain.TimeOfDayOf(now)
	blocked := BlockedSlots(intervals)

	slots := make([]domain.SlotState, 0, domain.SlotsPerDay)
	for slot := range domain.SlotsOfDay() {
		// Сегодняшние слоты, которые уже начались, не предлагаем
		if isToday && !slot.After(cutoff) {
			continue
		}
		if !IsAvailableAt(windows, slot) {
			continue
		}
		slots = append(slots, domain.SlotState{
			Time:                 slot,
			IsWithinAvailability: true,
			IsBooked:             blocked[slot],
		})
	}

	return slots
}

// MaxContiguousDuration returns how many consecutive bookable slots are
// reachable from start, counting start itself. Counting stops at the first
// booked slot, at a gap in the grid (next slot not exactly 30 minutes
// later) or at the end of the list. Used to cap the duration selector so a
// client cannot pick a duration spanning a gap or an occupied slot.
//
// Returns 0 when start is not present in slots.
func MaxContiguousDuration(start domain.TimeOfDay, slots []domain.SlotState) int {
	idx := indexOfSlot(start, slots)
	if idx < 0 {
		return 0
	}

	count := 1
	for i := idx + 1; i < len(slots); i++ {
		if slots[i].IsBooked {
			break
		}
		if !domain.AreConsecutive(slots[i-1].Time, slots[i].Time) {
			break
		}
		count++
	}

	return count
}

// CanFitDuration reports whether an appointment of durationSlots slots can
// start at start. On top of the contiguous-duration cap every covered slot
// is re-checked for a booking, including start itself.
func CanFitDuration(start domain.TimeOfDay, slots []domain.SlotState, durationSlots int) bool {
	if durationSlots < 1 {
		return false
	}
	if durationSlots > MaxContiguousDuration(start, slots) {
		return false
	}

	// Контрольная проверка: ни один из покрываемых слотов не занят
	idx := indexOfSlot(start, slots)
	for i := idx; i < idx+durationSlots; i++ {
		if slots[i].IsBooked {
			return false
		}
	}

	return true
}

// FindSlot returns the state of the given slot, if present.
func FindSlot(start domain.TimeOfDay, slots []domain.SlotState) (domain.SlotState, bool) {
	idx := indexOfSlot(start, slots)
	if idx < 0 {
		return domain.SlotState{}, false
	}
	return slots[idx], true
}

func indexOfSlot(start domain.TimeOfDay, slots []domain.SlotState) int {
	for i, s := range slots {
		if s.Time == start {
			return i
		}
	}
	return -1
}
