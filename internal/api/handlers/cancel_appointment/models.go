package cancel_appointment

import (
	"github.com/salonix/booking-service/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	IsStaff            bool   `json:"isStaff,omitempty"`
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(userID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		UserID:             userID,
		IsStaff:            r.IsStaff,
		CancellationReason: r.CancellationReason,
	}
}
