package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/booking-service/internal/domain"
)

type fakeAppointmentRepo struct {
	intervals []domain.BookedInterval
}

func (f *fakeAppointmentRepo) GetBookedIntervals(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.BookedInterval, error) {
	return f.intervals, nil
}

type fakeAvailabilityRepo struct {
	windows []domain.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) GetByStaffAndDate(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.AvailabilityWindow, error) {
	return f.windows, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	tod, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustDate(t *testing.T, s string) domain.CalendarDate {
	t.Helper()
	d, err := domain.ParseCalendarDate(s)
	require.NoError(t, err)
	return d
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(appts *fakeAppointmentRepo, avail *fakeAvailabilityRepo) *UseCase {
	uc := NewUseCase(appts, avail, nopLogger{})
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{})

	_, err := uc.Execute(context.Background(), &Request{StaffID: 0, Date: mustDate(t, "2024-06-10")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StaffID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DefaultOpenDay(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{})

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: mustDate(t, "2024-06-10")})

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, mustTime(t, "09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, mustTime(t, "23:30"), resp.Slots[len(resp.Slots)-1].StartTime)
	for _, s := range resp.Slots {
		assert.False(t, s.IsBooked)
		assert.Equal(t, domain.SlotStepMinutes, s.DurationMinutes)
		assert.Positive(t, s.MaxDurationSlots)
	}
	// С первого слота свободен весь день
	assert.Equal(t, domain.SlotsPerDay, resp.Slots[0].MaxDurationSlots)
}

func TestExecute_BookedSlotsAndContiguousRuns(t *testing.T) {
	date := mustDate(t, "2024-06-10")
	windows := []domain.AvailabilityWindow{{
		StaffID:     7,
		Date:        date,
		StartTime:   mustTime(t, "09:00"),
		EndTime:     mustTime(t, "12:00"),
		IsAvailable: true,
	}}
	intervals := []domain.BookedInterval{{
		StaffID:   7,
		Date:      date,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "11:00"),
		Status:    domain.StatusConfirmed,
	}}

	uc := newTestUseCase(&fakeAppointmentRepo{intervals: intervals}, &fakeAvailabilityRepo{windows: windows})

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: date})

	require.NoError(t, err)
	// Окно 09:00-12:00 даёт 6 слотов
	require.Len(t, resp.Slots, 6)

	byTime := make(map[domain.TimeOfDay]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.StartTime] = s
	}

	assert.True(t, byTime[mustTime(t, "10:00")].IsBooked)
	assert.True(t, byTime[mustTime(t, "10:30")].IsBooked)
	assert.Zero(t, byTime[mustTime(t, "10:00")].MaxDurationSlots)

	// До занятого интервала свободны 2 слота подряд, после него — 2
	assert.Equal(t, 2, byTime[mustTime(t, "09:00")].MaxDurationSlots)
	assert.Equal(t, 1, byTime[mustTime(t, "09:30")].MaxDurationSlots)
	assert.Equal(t, 2, byTime[mustTime(t, "11:00")].MaxDurationSlots)
	assert.Equal(t, 1, byTime[mustTime(t, "11:30")].MaxDurationSlots)
}

func TestExecute_PastDateReturnsNoSlots(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{})

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: mustDate(t, "2024-05-31")})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayDropsElapsedSlots(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{})

	// Сейчас 12:00 — слоты 09:00..12:00 включительно уже не предлагаются
	resp, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: mustDate(t, "2024-06-01")})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, mustTime(t, "12:30"), resp.Slots[0].StartTime)
}
