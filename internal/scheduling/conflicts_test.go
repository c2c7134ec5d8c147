package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonix/booking-service/internal/domain"
)

func interval(t *testing.T, start, end string, status domain.AppointmentStatus) domain.BookedInterval {
	t.Helper()
	return domain.BookedInterval{
		StaffID:   1,
		Date:      mustDate(t, "2024-06-10"),
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
		Status:    status,
	}
}

func TestBlockedSlots_BlocksExactlyTheSpan(t *testing.T) {
	blocked := BlockedSlots([]domain.BookedInterval{
		interval(t, "14:00", "15:00", domain.StatusConfirmed),
	})

	assert.True(t, blocked[mustTime(t, "14:00")])
	assert.True(t, blocked[mustTime(t, "14:30")])
	assert.False(t, blocked[mustTime(t, "13:30")], "slot ending at interval start stays open")
	assert.False(t, blocked[mustTime(t, "15:00")], "slot starting at interval end stays open")
}

func TestBlockedSlots_CancelledFreesSlots(t *testing.T) {
	for _, status := range domain.InactiveStatuses {
		blocked := BlockedSlots([]domain.BookedInterval{
			interval(t, "14:00", "15:00", status),
		})
		assert.Empty(t, blocked, "status %s must not block slots", status)
	}
}

func TestBlockedSlots_UnalignedInterval(t *testing.T) {
	// Запись 10:15–10:45 не выровнена по сетке, но занимает оба слота,
	// которые пересекает
	blocked := BlockedSlots([]domain.BookedInterval{
		interval(t, "10:15", "10:45", domain.StatusPending),
	})

	assert.True(t, blocked[mustTime(t, "10:00")])
	assert.True(t, blocked[mustTime(t, "10:30")])
	assert.False(t, blocked[mustTime(t, "09:30")])
	assert.False(t, blocked[mustTime(t, "11:00")])
}

func TestBlockedSlots_IntervalInsideSlot(t *testing.T) {
	// Короткая запись целиком внутри одного слота блокирует только его
	blocked := BlockedSlots([]domain.BookedInterval{
		interval(t, "11:05", "11:25", domain.StatusConfirmed),
	})

	assert.True(t, blocked[mustTime(t, "11:00")])
	assert.False(t, blocked[mustTime(t, "10:30")])
	assert.False(t, blocked[mustTime(t, "11:30")])
}

func TestBlockedSlots_MultipleIntervals(t *testing.T) {
	blocked := BlockedSlots([]domain.BookedInterval{
		interval(t, "09:00", "09:30", domain.StatusConfirmed),
		interval(t, "12:00", "13:30", domain.StatusInProgress),
		interval(t, "12:30", "13:00", domain.StatusPending), // пересекается со второй
	})

	assert.True(t, blocked[mustTime(t, "09:00")])
	assert.False(t, blocked[mustTime(t, "09:30")])
	assert.True(t, blocked[mustTime(t, "12:00")])
	assert.True(t, blocked[mustTime(t, "12:30")])
	assert.True(t, blocked[mustTime(t, "13:00")])
	assert.False(t, blocked[mustTime(t, "13:30")])
}
