package replace_schedule

import (
	"github.com/salonix/booking-service/internal/service/schedule/models"
)

// WindowInput окно доступности во входном запросе
type WindowInput struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// ReplaceScheduleRequest HTTP request model
type ReplaceScheduleRequest struct {
	Date    string        `json:"date"` // "2025-10-15"
	Windows []WindowInput `json:"windows"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ReplaceScheduleRequest) ToServiceRequest(staffID int64) *models.ReplaceScheduleRequest {
	windows := make([]models.WindowInput, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, models.WindowInput{
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsAvailable: w.IsAvailable,
		})
	}

	return &models.ReplaceScheduleRequest{
		StaffID: staffID,
		Date:    r.Date,
		Windows: windows,
	}
}
