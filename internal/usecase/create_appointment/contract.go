package create_appointment

import (
	"context"
	"time"

	"github.com/salonix/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// Create сохраняет новую запись и возвращает её с заполненными ID и таймстемпами
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetBookedIntervals получает занятые интервалы мастера на дату (только активные записи)
	GetBookedIntervals(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.BookedInterval, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	// GetByStaffAndDate получает окна доступности мастера на дату
	GetByStaffAndDate(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.AvailabilityWindow, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	// GetByIDs получает активные услуги по списку ID
	GetByIDs(ctx context.Context, ids []int64) ([]domain.SalonService, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker интерфейс распределённой блокировки
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
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
