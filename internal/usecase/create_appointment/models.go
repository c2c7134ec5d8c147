package create_appointment

import (
	"time"

	"github.com/salonix/booking-service/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID      int64               // ID клиента
	StaffID       int64               // ID мастера
	Date          domain.CalendarDate // Дата записи
	StartTime     domain.TimeOfDay    // Время начала (слот сетки)
	DurationSlots int                 // Запрошенное количество слотов по 30 минут
	ServiceIDs    []int64             // Услуги из каталога (опционально)
	Notes         *string             // Заметки клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	Reference       string
	ClientID        int64
	StaffID         int64
	Date            domain.CalendarDate
	StartTime       domain.TimeOfDay
	EndTime         domain.TimeOfDay
	DurationMinutes int
	Status          string
	ServiceNames    []string
	TotalPrice      float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
