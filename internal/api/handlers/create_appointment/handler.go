package create_appointment

import (
	"errors"
	"net/http"

	"github.com/salonix/booking-service/internal/api/handlers"
	"github.com/salonix/booking-service/internal/api/middleware"
	createAppointment "github.com/salonix/booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingField       = "не заполнено обязательное поле"
	msgPastDate           = "дата записи уже прошла"
	msgPastTime           = "время записи уже прошло"
	msgSlotUnavailable    = "выбранный слот недоступен"
	msgNotEnoughSlots     = "недостаточно свободных слотов подряд для выбранной длительности"
	msgServiceNotFound    = "услуга не найдена"
	msgTimeConflict       = "время уже занято другой записью, выберите слот заново"
	msgScheduleLocked     = "расписание мастера занято другим бронированием, повторите попытку"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMissingField):
			h.logger.Warn("POST /appointments - Missing field: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: client_id=%d, staff_id=%d", clientID, req.StaffID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrPastTime):
			h.logger.Warn("POST /appointments - Past time: client_id=%d, staff_id=%d", clientID, req.StaffID)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: client_id=%d, staff_id=%d, time=%s",
				clientID, req.StaffID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createAppointment.ErrInsufficientContiguousAvailability):
			h.logger.Warn("POST /appointments - Not enough contiguous slots: client_id=%d, staff_id=%d, slots=%d",
				clientID, req.StaffID, req.DurationSlots)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughSlots)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: client_id=%d, services=%v", clientID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: client_id=%d, staff_id=%d, time=%s",
				clientID, req.StaffID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrLockNotAcquired):
			h.logger.Warn("POST /appointments - Schedule locked: client_id=%d, staff_id=%d", clientID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleLocked)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, staff_id=%d, error=%v",
				clientID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, staff_id=%d",
		result.ID, clientID, req.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
