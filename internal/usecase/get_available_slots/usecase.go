package get_available_slots

import (
	"context"
	"fmt"

	"github.com/salonix/booking-service/internal/domain"
	"github.com/salonix/booking-service/internal/scheduling"
)

// UseCase use case для получения доступных слотов мастера на дату
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, date=%s", req.StaffID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем окна доступности мастера.
	// Пустой набор окон означает "доступен весь день".
	windows, err := uc.availabilityRepo.GetByStaffAndDate(ctx, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	// 4. Получаем занятые интервалы (только активные записи)
	intervals, err := uc.appointmentRepo.GetBookedIntervals(ctx, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
	}

	// 5. Строим слоты рабочего дня
	states := scheduling.AvailableSlots(windows, intervals, req.Date, now)

	// 6. Для каждого свободного слота считаем максимум подряд идущих свободных
	slots := make([]Slot, 0, len(states))
	for _, st := range states {
		slot := Slot{
			StartTime:       st.Time,
			DurationMinutes: domain.SlotStepMinutes,
			IsBooked:        st.IsBooked,
		}
		if st.IsSelectable() {
			slot.MaxDurationSlots = scheduling.MaxContiguousDuration(st.Time, states)
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: staff=%d, date=%s, slots=%d", req.StaffID, req.Date, len(slots))

	return &Response{
		StaffID: req.StaffID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
