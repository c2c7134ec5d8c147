package schedule

import (
	"context"

	"github.com/salonix/booking-service/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByStaffAndDate(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.AvailabilityWindow, error)
	ReplaceForDate(ctx context.Context, staffID int64, date domain.CalendarDate, windows []domain.AvailabilityWindow) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// Do выполняет функцию в транзакции с уровнем изоляции по умолчанию
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
