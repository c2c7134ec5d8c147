package models

import (
	"github.com/salonix/booking-service/internal/domain"
)

// Request модели

// WindowInput окно доступности во входном запросе
type WindowInput struct {
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "13:00"
	IsAvailable bool   `json:"isAvailable"`
}

// ReplaceScheduleRequest запрос на замену расписания мастера на дату
type ReplaceScheduleRequest struct {
	StaffID int64         `json:"staffId"`
	Date    string        `json:"date"` // "2025-10-15"
	Windows []WindowInput `json:"windows"`
}

// Response модели

// WindowResponse окно доступности в ответе
type WindowResponse struct {
	ID          int64  `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// ScheduleResponse расписание мастера на дату
type ScheduleResponse struct {
	StaffID int64            `json:"staffId"`
	Date    string           `json:"date"`
	Windows []WindowResponse `json:"windows"`
}

// FromDomainWindows конвертирует domain окна в DTO
func FromDomainWindows(staffID int64, date domain.CalendarDate, windows []domain.AvailabilityWindow) *ScheduleResponse {
	resp := &ScheduleResponse{
		StaffID: staffID,
		Date:    date.String(),
		Windows: make([]WindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		resp.Windows = append(resp.Windows, WindowResponse{
			ID:          w.ID,
			StartTime:   w.StartTime.String(),
			EndTime:     w.EndTime.String(),
			IsAvailable: w.IsAvailable,
		})
	}
	return resp
}
