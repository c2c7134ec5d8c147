package service

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonix/booking-service/internal/domain"
	"github.com/salonix/booking-service/pkg/dbmetrics"
	"github.com/salonix/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг салона (read-only для ядра бронирования)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs получает услуги по списку ID. Если хотя бы одна услуга
// не найдена или неактивна, возвращает ErrServiceNotFound.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]domain.SalonService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
		"active",
	).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []domain.SalonService
	for rows.Next() {
		var s domain.SalonService
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan service: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrExecQuery, err)
	}

	if len(services) != len(ids) {
		return nil, ErrServiceNotFound
	}

	return services, nil
}

// GetAll получает все активные услуги каталога
func (r *Repository) GetAll(ctx context.Context) ([]domain.SalonService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
		"active",
	).
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []domain.SalonService
	for rows.Next() {
		var s domain.SalonService
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan service: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrExecQuery, err)
	}

	return services, nil
}
