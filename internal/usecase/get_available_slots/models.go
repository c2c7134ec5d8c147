package get_available_slots

import (
	"github.com/salonix/booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StaffID int64               // ID мастера
	Date    domain.CalendarDate // Дата, на которую запрашиваются слоты
}

// Response модель ответа со списком доступных слотов
type Response struct {
	StaffID int64               // ID мастера
	Date    domain.CalendarDate // Дата, на которую запрашивались слоты
	Slots   []Slot              // Слоты рабочего дня в хронологическом порядке
}

// Slot модель слота сетки рабочего дня
type Slot struct {
	StartTime        domain.TimeOfDay // Время начала слота (например, "10:00")
	DurationMinutes  int              // Длительность слота в минутах (всегда 30)
	IsBooked         bool             // Слот занят активной записью
	MaxDurationSlots int              // Максимум подряд идущих свободных слотов, начиная с этого (0, если занят)
}
