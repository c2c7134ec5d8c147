package schedule

import (
	"context"
	"fmt"

	"github.com/salonix/booking-service/internal/domain"
	"github.com/salonix/booking-service/internal/service/schedule/models"
)

// Service сервис управления расписанием мастеров
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(availabilityRepo AvailabilityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetSchedule получает расписание мастера на дату.
// Пустой список окон означает, что мастер доступен весь рабочий день.
func (s *Service) GetSchedule(ctx context.Context, staffID int64, dateStr string) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for staff=%d, date=%s", staffID, dateStr)

	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	date, err := domain.ParseCalendarDate(dateStr)
	if err != nil {
		s.logger.Warn("GetSchedule: invalid date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: fetched %d windows for staff=%d, date=%s", len(windows), staffID, date)
	return models.FromDomainWindows(staffID, date, windows), nil
}

// ReplaceSchedule заменяет расписание мастера на дату новым набором окон.
// Замена атомарна: старые окна удаляются и новые вставляются в одной транзакции.
func (s *Service) ReplaceSchedule(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceSchedule: replacing schedule for staff=%d, date=%s, windows=%d",
		req.StaffID, req.Date, len(req.Windows))

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	date, err := domain.ParseCalendarDate(req.Date)
	if err != nil {
		s.logger.Warn("ReplaceSchedule: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	windows := make([]domain.AvailabilityWindow, 0, len(req.Windows))
	for _, in := range req.Windows {
		start, err := domain.ParseTimeOfDay(in.StartTime)
		if err != nil {
			s.logger.Warn("ReplaceSchedule: invalid startTime=%s: %v", in.StartTime, err)
			return nil, fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, in.StartTime)
		}
		end, err := domain.ParseTimeOfDay(in.EndTime)
		if err != nil {
			s.logger.Warn("ReplaceSchedule: invalid endTime=%s: %v", in.EndTime, err)
			return nil, fmt.Errorf("%w: invalid endTime %q", ErrInvalidInput, in.EndTime)
		}

		window := domain.AvailabilityWindow{
			StaffID:     req.StaffID,
			Date:        date,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: in.IsAvailable,
		}
		if !window.IsValid() {
			s.logger.Warn("ReplaceSchedule: window %s-%s is invalid", in.StartTime, in.EndTime)
			return nil, fmt.Errorf("%w: %s-%s", ErrInvalidWindow, in.StartTime, in.EndTime)
		}

		windows = append(windows, window)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.ReplaceForDate(txCtx, req.StaffID, date, windows)
	})
	if err != nil {
		s.logger.Error("ReplaceSchedule: failed to replace schedule for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: ReplaceSchedule - repository error: %v", ErrInternal, err)
	}

	// Перечитываем сохранённые окна, чтобы вернуть их с присвоенными ID
	saved, err := s.availabilityRepo.GetByStaffAndDate(ctx, req.StaffID, date)
	if err != nil {
		s.logger.Error("ReplaceSchedule: failed to reread schedule for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: ReplaceSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceSchedule: successfully replaced schedule for staff=%d, date=%s", req.StaffID, date)
	return models.FromDomainWindows(req.StaffID, date, saved), nil
}
