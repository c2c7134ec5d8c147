package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMissingField возвращается, когда не заполнено обязательное поле
	ErrMissingField = errors.New("missing required field")

	// ErrPastDate возвращается при попытке записаться на прошедшую дату
	ErrPastDate = errors.New("date is in the past")

	// ErrPastTime возвращается при попытке записаться на прошедшее время сегодня
	ErrPastTime = errors.New("time is in the past")

	// ErrSlotUnavailable возвращается, когда запрошенный слот занят или вне доступности
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrInsufficientContiguousAvailability возвращается, когда запрошенная
	// длительность не умещается в подряд идущие свободные слоты
	ErrInsufficientContiguousAvailability = errors.New("not enough contiguous available slots")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrTimeConflict возвращается, когда база отклонила запись из-за пересечения
	// с другой записью, созданной конкурентно
	ErrTimeConflict = errors.New("time conflict with another appointment")

	// ErrLockNotAcquired возвращается, когда не удалось захватить блокировку
	// расписания мастера (идёт конкурирующее бронирование)
	ErrLockNotAcquired = errors.New("staff schedule is locked, try again")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
