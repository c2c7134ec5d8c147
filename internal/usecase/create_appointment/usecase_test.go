package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/booking-service/internal/domain"
	apptRepo "github.com/salonix/booking-service/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	intervals []domain.BookedInterval
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = 42
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	return appt, nil
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

type fakeServiceRepo struct {
	services []domain.SalonService
	err      error
}

func (f *fakeServiceRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.SalonService, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLocker struct {
	denied bool
}

func (f *fakeLocker) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return !f.denied, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key string) error { return nil }

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

func newTestUseCase(appts *fakeAppointmentRepo, avail *fakeAvailabilityRepo, services *fakeServiceRepo, now time.Time) *UseCase {
	uc := NewUseCase(appts, avail, services, fakeTxManager{}, &fakeLocker{}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

// Полдень 1 июня 2024, все тестовые записи — на будущие даты
var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestExecute_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "invalid client id",
			req:     &Request{ClientID: 0, StaffID: 1, Date: domain.CalendarDate{Year: 2024, Month: 6, Day: 10}, StartTime: domain.TimeOfDayFromMinutes(10 * 60), DurationSlots: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing staff id",
			req:     &Request{ClientID: 1, Date: domain.CalendarDate{Year: 2024, Month: 6, Day: 10}, StartTime: domain.TimeOfDayFromMinutes(10 * 60), DurationSlots: 1},
			wantErr: ErrMissingField,
		},
		{
			name:    "missing date",
			req:     &Request{ClientID: 1, StaffID: 1, StartTime: domain.TimeOfDayFromMinutes(10 * 60), DurationSlots: 1},
			wantErr: ErrMissingField,
		},
		{
			name:    "missing start time",
			req:     &Request{ClientID: 1, StaffID: 1, Date: domain.CalendarDate{Year: 2024, Month: 6, Day: 10}, DurationSlots: 1},
			wantErr: ErrMissingField,
		},
		{
			name:    "zero duration slots",
			req:     &Request{ClientID: 1, StaffID: 1, Date: domain.CalendarDate{Year: 2024, Month: 6, Day: 10}, StartTime: domain.TimeOfDayFromMinutes(10 * 60), DurationSlots: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			req:     &Request{ClientID: 1, StaffID: 1, Date: domain.CalendarDate{Year: 2024, Month: 5, Day: 31}, StartTime: domain.TimeOfDayFromMinutes(10 * 60), DurationSlots: 1},
			wantErr: ErrPastDate,
		},
		{
			name:    "past time today",
			req:     &Request{ClientID: 1, StaffID: 1, Date: domain.CalendarDate{Year: 2024, Month: 6, Day: 1}, StartTime: domain.TimeOfDayFromMinutes(11 * 60), DurationSlots: 1},
			wantErr: ErrPastTime,
		},
		{
			name:    "current slot today is also past",
			req:     &Request{ClientID: 1, StaffID: 1, Date: domain.CalendarDate{Year: 2024, Month: 6, Day: 1}, StartTime: domain.TimeOfDayFromMinutes(12 * 60), DurationSlots: 1},
			wantErr: ErrPastTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeServiceRepo{}, testNow)

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_BookingFlow(t *testing.T) {
	date := mustDate(t, "2024-06-10")
	window := domain.AvailabilityWindow{
		StaffID:     7,
		Date:        date,
		StartTime:   mustTime(t, "09:00"),
		EndTime:     mustTime(t, "13:00"),
		IsAvailable: true,
	}
	booked := domain.BookedInterval{
		StaffID:   7,
		Date:      date,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "10:30"),
		Status:    domain.StatusConfirmed,
	}

	t.Run("two slots after booked interval succeed", func(t *testing.T) {
		appts := &fakeAppointmentRepo{intervals: []domain.BookedInterval{booked}}
		uc := newTestUseCase(appts, &fakeAvailabilityRepo{windows: []domain.AvailabilityWindow{window}}, &fakeServiceRepo{}, testNow)

		resp, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "10:30"),
			DurationSlots: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, mustTime(t, "10:30"), resp.StartTime)
		assert.Equal(t, mustTime(t, "11:30"), resp.EndTime)
		assert.Equal(t, 60, resp.DurationMinutes)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.NotEmpty(t, resp.Reference)
	})

	t.Run("booked slot is rejected", func(t *testing.T) {
		appts := &fakeAppointmentRepo{intervals: []domain.BookedInterval{booked}}
		uc := newTestUseCase(appts, &fakeAvailabilityRepo{windows: []domain.AvailabilityWindow{window}}, &fakeServiceRepo{}, testNow)

		_, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			DurationSlots: 1,
		})

		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("slot outside availability window is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{windows: []domain.AvailabilityWindow{window}}, &fakeServiceRepo{}, testNow)

		_, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "14:00"),
			DurationSlots: 1,
		})

		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("duration exceeding contiguous run is rejected", func(t *testing.T) {
		appts := &fakeAppointmentRepo{intervals: []domain.BookedInterval{booked}}
		uc := newTestUseCase(appts, &fakeAvailabilityRepo{windows: []domain.AvailabilityWindow{window}}, &fakeServiceRepo{}, testNow)

		// Свободны только 09:00 и 09:30, дальше занято с 10:00
		_, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "09:00"),
			DurationSlots: 3,
		})

		assert.ErrorIs(t, err, ErrInsufficientContiguousAvailability)
	})

	t.Run("no windows means whole grid is open", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeServiceRepo{}, testNow)

		resp, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "23:30"),
			DurationSlots: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, mustTime(t, "23:30"), resp.StartTime)
	})

	t.Run("cancelled interval frees its slot", func(t *testing.T) {
		cancelled := booked
		cancelled.Status = domain.StatusCancelledByClient
		appts := &fakeAppointmentRepo{intervals: []domain.BookedInterval{cancelled}}
		uc := newTestUseCase(appts, &fakeAvailabilityRepo{windows: []domain.AvailabilityWindow{window}}, &fakeServiceRepo{}, testNow)

		resp, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			DurationSlots: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, mustTime(t, "10:30"), resp.EndTime)
	})
}

func TestExecute_ServiceDurations(t *testing.T) {
	date := mustDate(t, "2024-06-10")

	t.Run("service duration stretches end time beyond slots", func(t *testing.T) {
		services := &fakeServiceRepo{services: []domain.SalonService{
			{ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 1500, Active: true},
		}}
		appts := &fakeAppointmentRepo{}
		uc := newTestUseCase(appts, &fakeAvailabilityRepo{}, services, testNow)

		resp, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			DurationSlots: 1,
			ServiceIDs:    []int64{1},
		})

		require.NoError(t, err)
		assert.Equal(t, 45, resp.DurationMinutes)
		assert.Equal(t, mustTime(t, "10:45"), resp.EndTime)
		assert.Equal(t, []string{"Стрижка"}, resp.ServiceNames)
		assert.Equal(t, 1500.0, resp.TotalPrice)
	})

	t.Run("requested slots win over shorter services", func(t *testing.T) {
		services := &fakeServiceRepo{services: []domain.SalonService{
			{ID: 1, Name: "Укладка", DurationMinutes: 20, Price: 800, Active: true},
		}}
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, services, testNow)

		resp, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			DurationSlots: 2,
			ServiceIDs:    []int64{1},
		})

		require.NoError(t, err)
		assert.Equal(t, 60, resp.DurationMinutes)
		assert.Equal(t, mustTime(t, "11:00"), resp.EndTime)
	})
}

func TestExecute_Conflicts(t *testing.T) {
	date := mustDate(t, "2024-06-10")

	t.Run("storage conflict maps to ErrTimeConflict", func(t *testing.T) {
		appts := &fakeAppointmentRepo{createErr: apptRepo.ErrTimeConflict}
		uc := newTestUseCase(appts, &fakeAvailabilityRepo{}, &fakeServiceRepo{}, testNow)

		_, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			DurationSlots: 1,
		})

		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("held lock rejects booking", func(t *testing.T) {
		uc := NewUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, &fakeServiceRepo{}, fakeTxManager{}, &fakeLocker{denied: true}, nopLogger{})
		uc.timeProvider = fixedTime{t: testNow}

		_, err := uc.Execute(context.Background(), &Request{
			ClientID:      1,
			StaffID:       7,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			DurationSlots: 1,
		})

		assert.ErrorIs(t, err, ErrLockNotAcquired)
	})
}
