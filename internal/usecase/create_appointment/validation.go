package create_appointment

import (
	"fmt"
	"time"

	"github.com/salonix/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Порядок проверок фиксирован: сначала обязательные поля, затем дата,
// затем время — клиент получает первую применимую ошибку.
func validateRequest(req *Request, now time.Time) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId is required", ErrMissingField)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingField)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrMissingField)
	}

	if req.DurationSlots < domain.MinDurationSlots {
		return fmt.Errorf("%w: durationSlots must be at least %d", ErrInvalidInput, domain.MinDurationSlots)
	}

	if req.DurationSlots > domain.MaxDurationSlots {
		return fmt.Errorf("%w: durationSlots must not exceed %d", ErrInvalidInput, domain.MaxDurationSlots)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Date.IsPast(now) {
		return ErrPastDate
	}

	// Для записи на сегодня время начала должно быть строго в будущем
	if req.Date.IsToday(now) {
		nowTime := domain.TimeOfDayOf(now)
		if !req.StartTime.After(nowTime) {
			return ErrPastTime
		}
	}

	return nil
}

// appointmentDuration вычисляет итоговую длительность записи в минутах:
// суммарная длительность выбранных услуг, но не меньше запрошенного
// количества слотов.
func appointmentDuration(durationSlots int, services []domain.SalonService) int {
	slotMinutes := durationSlots * domain.SlotStepMinutes

	serviceMinutes := 0
	for _, s := range services {
		serviceMinutes += s.DurationMinutes
	}

	if serviceMinutes > slotMinutes {
		return serviceMinutes
	}
	return slotMinutes
}
