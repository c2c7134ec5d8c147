package scheduling

import "github.com/salonix/booking-service/internal/domain"

// BlockedSlots computes which canonical slots are already occupied by the
// given booked intervals. Cancelled and no-show intervals are skipped here
// even if the caller pre-filtered them. O(slots × intervals).
func BlockedSlots(intervals []domain.BookedInterval) map[domain.TimeOfDay]bool {
	blocked := make(map[domain.TimeOfDay]bool, len(intervals)*2)

	for slot := range domain.SlotsOfDay() {
		for _, in := range intervals {
			if !in.IsActive() {
				continue
			}
			if slotOverlapsInterval(slot, in) {
				blocked[slot] = true
				break
			}
		}
	}

	return blocked
}

// slotOverlapsInterval проверяет пересечение слота [slot, slot+30)
// с интервалом записи. Тройная проверка избыточна относительно
// классического полуоткрытого сравнения, но безопасно покрывает
// интервалы, не выровненные по 30-минутной сетке:
//   - слот начинается внутри интервала
//   - слот заканчивается внутри интервала
//   - слот целиком содержит интервал
func slotOverlapsInterval(slot domain.TimeOfDay, in domain.BookedInterval) bool {
	slotEnd := slot.AddMinutes(domain.SlotStepMinutes)

	startsInside := !slot.Before(in.StartTime) && slot.Before(in.EndTime)
	endsInside := slotEnd.After(in.StartTime) && !slotEnd.After(in.EndTime)
	contains := !in.StartTime.Before(slot) && !slotEnd.Before(in.EndTime)

	return startsInside || endsInside || contains
}
