package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/booking-service/internal/domain"
	"github.com/salonix/booking-service/internal/service/appointments/models"
)

type fakeRepo struct {
	appointment *domain.Appointment

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string

	updatedStatus domain.AppointmentStatus
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return f.appointment, nil
}

func (f *fakeRepo) GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeRepo) GetByStaffWithFilter(ctx context.Context, filter domain.StaffAppointmentsFilter) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	f.updatedStatus = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:       10,
		ClientID: 1,
		StaffID:  7,
		Status:   domain.StatusPending,
	}
}

func TestCancel_RoleDeterminesStatus(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		isStaff    bool
		wantStatus domain.AppointmentStatus
		wantErr    error
	}{
		{
			name:       "client cancels own appointment",
			userID:     1,
			wantStatus: domain.StatusCancelledByClient,
		},
		{
			name:       "staff cancels appointment to them",
			userID:     7,
			isStaff:    true,
			wantStatus: domain.StatusCancelledBySalon,
		},
		{
			name:    "stranger is rejected",
			userID:  99,
			wantErr: ErrAccessDenied,
		},
		{
			name:    "staff id without staff flag is rejected",
			userID:  7,
			wantErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{appointment: pendingAppointment()}
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
				UserID:             tt.userID,
				IsStaff:            tt.isStaff,
				CancellationReason: "не смогу прийти",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(10), repo.cancelledID)
			assert.Equal(t, tt.wantStatus, repo.cancelledStatus)
			assert.Equal(t, "не смогу прийти", repo.cancelledReason)
		})
	}
}

func TestCancel_CompletedAppointmentRejected(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusCompleted
	repo := &fakeRepo{appointment: appt}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{UserID: 1})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_OnlyStaff(t *testing.T) {
	repo := &fakeRepo{appointment: pendingAppointment()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 1, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 7, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{appointment: pendingAppointment()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: 7, Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
