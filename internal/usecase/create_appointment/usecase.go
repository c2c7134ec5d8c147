package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonix/booking-service/internal/domain"
	apptRepo "github.com/salonix/booking-service/internal/infra/storage/appointment"
	serviceRepo "github.com/salonix/booking-service/internal/infra/storage/service"
	"github.com/salonix/booking-service/internal/scheduling"
)

// lockTTL время жизни блокировки расписания мастера на дату
const lockTTL = 5 * time.Second

// UseCase use case для создания записи клиента к мастеру
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	txManager        TransactionManager
	locker           Locker
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	locker Locker,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		txManager:        txManager,
		locker:           locker,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// а пересечения по времени дополнительно отклоняются exclusion constraint'ом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, staff=%d, date=%s, time=%s, slots=%d",
		req.ClientID, req.StaffID, req.Date, req.StartTime, req.DurationSlots)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем выбранные услуги из каталога
	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 4. Захватываем блокировку расписания мастера на дату,
	// чтобы конкурирующие бронирования не пересекались между инстансами
	lockKey := fmt.Sprintf("staff:%d:date:%s", req.StaffID, req.Date)
	acquired, err := uc.locker.Lock(ctx, lockKey, lockTTL)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to acquire lock %s: %v", lockKey, err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("CreateAppointment: lock %s is held by another booking", lockKey)
		return nil, ErrLockNotAcquired
	}
	defer func() {
		if err := uc.locker.Unlock(context.WithoutCancel(ctx), lockKey); err != nil {
			uc.logger.Error("CreateAppointment: failed to release lock %s: %v", lockKey, err)
		}
	}()

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем проверку доступности и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем окна доступности мастера
		windows, err := uc.availabilityRepo.GetByStaffAndDate(txCtx, req.StaffID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}

		// 5.2. Получаем занятые интервалы (только активные записи)
		intervals, err := uc.appointmentRepo.GetBookedIntervals(txCtx, req.StaffID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booked intervals: %v", err)
			return fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
		}

		// 5.3. Строим слоты рабочего дня и проверяем запрошенный слот
		states := scheduling.AvailableSlots(windows, intervals, req.Date, now)

		slot, found := scheduling.FindSlot(req.StartTime, states)
		if !found || slot.IsBooked {
			uc.logger.Warn("CreateAppointment: slot %s is not available for staff=%d on %s",
				req.StartTime, req.StaffID, req.Date)
			return ErrSlotUnavailable
		}

		// 5.4. Проверяем, что запрошенная длительность умещается в подряд
		// идущие свободные слоты
		if !scheduling.CanFitDuration(req.StartTime, states, req.DurationSlots) {
			uc.logger.Warn("CreateAppointment: %d slots do not fit from %s for staff=%d on %s",
				req.DurationSlots, req.StartTime, req.StaffID, req.Date)
			return ErrInsufficientContiguousAvailability
		}

		// 5.5. Вычисляем длительность и время окончания.
		// Услуги могут требовать больше времени, чем запрошенные слоты.
		durationMinutes := appointmentDuration(req.DurationSlots, services)
		endTime := req.StartTime.AddMinutes(durationMinutes)

		// 5.6. Создаем запись с денормализацией данных услуг
		serviceNames := make([]string, 0, len(services))
		totalPrice := 0.0
		for _, s := range services {
			serviceNames = append(serviceNames, s.Name)
			totalPrice += s.Price
		}

		appointment := &domain.Appointment{
			Reference:       uuid.NewString(),
			ClientID:        req.ClientID,
			StaffID:         req.StaffID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusPending,
			ServiceNames:    serviceNames,
			TotalPrice:      totalPrice,
			Notes:           req.Notes,
		}

		// 5.7. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, apptRepo.ErrTimeConflict) {
				uc.logger.Warn("CreateAppointment: time conflict for staff=%d on %s at %s",
					req.StaffID, req.Date, req.StartTime)
				return ErrTimeConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, reference=%s",
		result.ID, result.Reference)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		ClientID:        result.ClientID,
		StaffID:         result.StaffID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceNames:    result.ServiceNames,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
