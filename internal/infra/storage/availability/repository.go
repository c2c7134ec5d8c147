package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonix/booking-service/internal/domain"
	"github.com/salonix/booking-service/pkg/dbmetrics"
	"github.com/salonix/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий окон доступности мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaffAndDate получает окна доступности мастера на дату.
// Пустой результат — это не ошибка: ядро планирования трактует
// отсутствие окон как "доступен весь день" (default-open).
func (r *Repository) GetByStaffAndDate(ctx context.Context, staffID int64, date domain.CalendarDate) ([]domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"work_date",
		"start_time",
		"end_time",
		"is_available",
	).
		From("staff_availability").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"work_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var windows []domain.AvailabilityWindow
	for rows.Next() {
		var w domain.AvailabilityWindow
		if err := rows.Scan(&w.ID, &w.StaffID, &w.Date, &w.StartTime, &w.EndTime, &w.IsAvailable); err != nil {
			return nil, fmt.Errorf("%w: GetByStaffAndDate - scan window: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - rows error: %v", ErrExecQuery, err)
	}

	return windows, nil
}

// ReplaceForDate заменяет все окна мастера на дату новым набором.
// Вызывается внутри транзакции (delete + insert должны быть атомарны).
func (r *Repository) ReplaceForDate(ctx context.Context, staffID int64, date domain.CalendarDate, windows []domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("staff_availability").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"work_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDate - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("staff_availability").
		Columns("staff_id", "work_date", "start_time", "end_time", "is_available")
	for _, w := range windows {
		insertBuilder = insertBuilder.Values(staffID, date, w.StartTime, w.EndTime, w.IsAvailable)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForDate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
