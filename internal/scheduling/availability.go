// Package scheduling содержит чистое ядро планирования слотов:
// разрешение доступности мастера, поиск конфликтов с существующими
// записями и построение сетки доступных слотов. Никакого I/O —
// все данные передаются снимками, результат детерминирован.
package scheduling

import "github.com/salonix/booking-service/internal/domain"

// IsAvailableAt reports whether the staff member is open for work at the
// given slot, based on their declared availability windows for the date.
//
// Fallback policy: a staff member with zero recorded windows is treated as
// available for the whole canonical grid, so staff who never configured a
// schedule remain bookable. If windows exist, they fully override the
// default: a slot covered by no window is unavailable.
func IsAvailableAt(windows []domain.AvailabilityWindow, slot domain.TimeOfDay) bool {
	if len(windows) == 0 {
		return true
	}
	for _, w := range windows {
		if w.Covers(slot) {
			return true
		}
	}
	return false
}
