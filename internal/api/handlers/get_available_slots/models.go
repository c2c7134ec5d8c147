package get_available_slots

import (
	getAvailableSlots "github.com/salonix/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime        string `json:"startTime"` // "10:00"
	DurationMinutes  int    `json:"durationMinutes"`
	IsBooked         bool   `json:"isBooked"`
	MaxDurationSlots int    `json:"maxDurationSlots"`
}

// SlotsResponse HTTP модель ответа со слотами
type SlotsResponse struct {
	StaffID int64          `json:"staffId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		StaffID: resp.StaffID,
		Date:    resp.Date.String(),
		Slots:   make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:        s.StartTime.String(),
			DurationMinutes:  s.DurationMinutes,
			IsBooked:         s.IsBooked,
			MaxDurationSlots: s.MaxDurationSlots,
		})
	}

	return out
}
