package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/booking-service/internal/domain"
)

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	parsed, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return parsed
}

func mustDate(t *testing.T, s string) domain.CalendarDate {
	t.Helper()
	parsed, err := domain.ParseCalendarDate(s)
	require.NoError(t, err)
	return parsed
}

func window(t *testing.T, start, end string, available bool) domain.AvailabilityWindow {
	t.Helper()
	return domain.AvailabilityWindow{
		StaffID:     1,
		Date:        mustDate(t, "2024-06-10"),
		StartTime:   mustTime(t, start),
		EndTime:     mustTime(t, end),
		IsAvailable: available,
	}
}

func TestIsAvailableAt_DefaultOpenFallback(t *testing.T) {
	// Мастер без настроенного расписания доступен на всей сетке
	for slot := range domain.SlotsOfDay() {
		assert.True(t, IsAvailableAt(nil, slot), "slot %s must be available with no windows", slot)
	}
}

func TestIsAvailableAt_ExplicitWindowsOverrideDefault(t *testing.T) {
	windows := []domain.AvailabilityWindow{window(t, "09:00", "12:00", true)}

	assert.True(t, IsAvailableAt(windows, mustTime(t, "09:00")))
	assert.True(t, IsAvailableAt(windows, mustTime(t, "11:30")))
	assert.False(t, IsAvailableAt(windows, mustTime(t, "12:00")), "window end is exclusive")
	assert.False(t, IsAvailableAt(windows, mustTime(t, "15:00")))
}

func TestIsAvailableAt_SplitShifts(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		window(t, "09:00", "12:00", true),
		window(t, "14:00", "18:00", true),
	}

	assert.True(t, IsAvailableAt(windows, mustTime(t, "10:00")))
	assert.False(t, IsAvailableAt(windows, mustTime(t, "13:00")), "lunch gap")
	assert.True(t, IsAvailableAt(windows, mustTime(t, "14:00")))
	assert.False(t, IsAvailableAt(windows, mustTime(t, "18:00")))
}

func TestIsAvailableAt_UnavailableWindowDoesNotOpenSlots(t *testing.T) {
	windows := []domain.AvailabilityWindow{window(t, "09:00", "12:00", false)}

	// Окно с isAvailable=false присутствует, значит fallback не действует,
	// а само окно слоты не открывает
	assert.False(t, IsAvailableAt(windows, mustTime(t, "10:00")))
	assert.False(t, IsAvailableAt(windows, mustTime(t, "15:00")))
}
