package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/booking-service/internal/domain"
)

// noon on a day strictly before the test dates below
var futureNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestAvailableSlots_DefaultOpenFallbackEmitsWholeGrid(t *testing.T) {
	slots := AvailableSlots(nil, nil, mustDate(t, "2024-06-10"), futureNow)

	require.Len(t, slots, domain.SlotsPerDay)
	assert.Equal(t, "09:00", slots[0].Time.String())
	assert.Equal(t, "23:30", slots[len(slots)-1].Time.String())
	for _, s := range slots {
		assert.True(t, s.IsWithinAvailability)
		assert.False(t, s.IsBooked)
	}
}

func TestAvailableSlots_ExplicitWindowLimitsGrid(t *testing.T) {
	windows := []domain.AvailabilityWindow{window(t, "09:00", "12:00", true)}

	slots := AvailableSlots(windows, nil, mustDate(t, "2024-06-10"), futureNow)

	require.Len(t, slots, 6) // 09:00 .. 11:30
	assert.Equal(t, "09:00", slots[0].Time.String())
	assert.Equal(t, "11:30", slots[len(slots)-1].Time.String())
}

func TestAvailableSlots_PastDateIsEmpty(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 30, 0, 0, time.UTC)

	slots := AvailableSlots(nil, nil, mustDate(t, "2024-06-09"), now)

	assert.Empty(t, slots)
}

func TestAvailableSlots_TodayDropsStartedSlots(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	slots := AvailableSlots(nil, nil, mustDate(t, "2024-06-10"), now)

	// 14:00 уже начался (slot <= now), первый доступный — 14:30
	require.NotEmpty(t, slots)
	assert.Equal(t, "14:30", slots[0].Time.String())

	now = time.Date(2024, 6, 10, 14, 1, 0, 0, time.UTC)
	slots = AvailableSlots(nil, nil, mustDate(t, "2024-06-10"), now)
	assert.Equal(t, "14:30", slots[0].Time.String())
}

func TestAvailableSlots_BookedSlotsIncludedAndFlagged(t *testing.T) {
	windows := []domain.AvailabilityWindow{window(t, "09:00", "13:00", true)}
	intervals := []domain.BookedInterval{interval(t, "10:00", "11:00", domain.StatusConfirmed)}

	slots := AvailableSlots(windows, intervals, mustDate(t, "2024-06-10"), futureNow)

	require.Len(t, slots, 8) // 09:00 .. 12:30
	byTime := map[string]domain.SlotState{}
	for _, s := range slots {
		byTime[s.Time.String()] = s
	}

	assert.True(t, byTime["10:00"].IsBooked)
	assert.True(t, byTime["10:30"].IsBooked)
	assert.False(t, byTime["09:30"].IsBooked)
	assert.False(t, byTime["11:00"].IsBooked)
	assert.False(t, byTime["10:00"].IsSelectable())
	assert.True(t, byTime["11:00"].IsSelectable())
}

func TestAvailableSlots_ChronologicalAndIdempotent(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		window(t, "14:00", "18:00", true),
		window(t, "09:00", "12:00", true), // намеренно не по порядку
	}
	intervals := []domain.BookedInterval{interval(t, "15:00", "16:00", domain.StatusPending)}
	date := mustDate(t, "2024-06-10")

	first := AvailableSlots(windows, intervals, date, futureNow)
	second := AvailableSlots(windows, intervals, date, futureNow)

	assert.Equal(t, first, second, "identical snapshots must produce identical output")
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Time.Before(first[i].Time), "output must be chronological")
	}
}

func TestMaxContiguousDuration_CappedByBookedSlot(t *testing.T) {
	// Открытые 10:00, 10:30, 11:00 и занятый 11:30
	slots := []domain.SlotState{
		{Time: mustTime(t, "10:00"), IsWithinAvailability: true},
		{Time: mustTime(t, "10:30"), IsWithinAvailability: true},
		{Time: mustTime(t, "11:00"), IsWithinAvailability: true},
		{Time: mustTime(t, "11:30"), IsWithinAvailability: true, IsBooked: true},
	}

	assert.Equal(t, 3, MaxContiguousDuration(mustTime(t, "10:00"), slots))
	assert.False(t, CanFitDuration(mustTime(t, "10:00"), slots, 4))
	assert.True(t, CanFitDuration(mustTime(t, "10:00"), slots, 3))
}

func TestMaxContiguousDuration_CappedByGap(t *testing.T) {
	// Разрыв между 10:30 и 12:00 (конец смены / перерыв)
	slots := []domain.SlotState{
		{Time: mustTime(t, "10:00"), IsWithinAvailability: true},
		{Time: mustTime(t, "10:30"), IsWithinAvailability: true},
		{Time: mustTime(t, "12:00"), IsWithinAvailability: true},
	}

	assert.Equal(t, 2, MaxContiguousDuration(mustTime(t, "10:00"), slots))
	assert.False(t, CanFitDuration(mustTime(t, "10:00"), slots, 3))
}

func TestMaxContiguousDuration_UnknownStart(t *testing.T) {
	slots := []domain.SlotState{
		{Time: mustTime(t, "10:00"), IsWithinAvailability: true},
	}

	assert.Equal(t, 0, MaxContiguousDuration(mustTime(t, "09:00"), slots))
	assert.False(t, CanFitDuration(mustTime(t, "09:00"), slots, 1))
}

func TestCanFitDuration_BookedStartSlot(t *testing.T) {
	slots := []domain.SlotState{
		{Time: mustTime(t, "10:00"), IsWithinAvailability: true, IsBooked: true},
		{Time: mustTime(t, "10:30"), IsWithinAvailability: true},
	}

	// MaxContiguousDuration всегда >= 1 для найденного слота,
	// но занятый стартовый слот отсекает контрольная проверка
	assert.Equal(t, 2, MaxContiguousDuration(mustTime(t, "10:00"), slots))
	assert.False(t, CanFitDuration(mustTime(t, "10:00"), slots, 1))
}

func TestCanFitDuration_ZeroDuration(t *testing.T) {
	slots := []domain.SlotState{
		{Time: mustTime(t, "10:00"), IsWithinAvailability: true},
	}

	assert.False(t, CanFitDuration(mustTime(t, "10:00"), slots, 0))
}
