package get_available_slots

import (
	"context"
	"time"

	"github.com/salonix/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedIntervals получает занятые интервалы мастера на дату (только активные записи)
	GetBookedIntervals(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.BookedInterval, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	// GetByStaffAndDate получает окна доступности мастера на дату
	GetByStaffAndDate(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.AvailabilityWindow, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
