package get_staff_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonix/booking-service/internal/api/handlers"
	"github.com/salonix/booking-service/internal/api/middleware"
	"github.com/salonix/booking-service/internal/service/appointments"
	"github.com/salonix/booking-service/internal/service/appointments/models"
	"github.com/salonix/booking-service/pkg/ptr"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgInvalidFilter  = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/appointments?date=YYYY-MM-DD&status=confirmed&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffIDStr := vars["staffId"]

	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/appointments - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /staff/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Мастер может смотреть только свои записи
	if staffID != userID {
		h.logger.Warn("GET /staff/{id}/appointments - Access denied: staff_id=%d, user_id=%d", staffID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetStaffAppointmentsRequest{StaffID: staffID}

	query := r.URL.Query()
	if date := query.Get("date"); date != "" {
		req.Date = ptr.Ptr(date)
	}
	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}
	if includeInactive := query.Get("includeInactive"); includeInactive != "" {
		req.IncludeInactive, _ = strconv.ParseBool(includeInactive)
	}

	result, err := h.service.GetStaffAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/appointments - Invalid filter: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /staff/{id}/appointments - Failed to get appointments: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/appointments - Retrieved %d appointments for staff_id=%d",
		len(result.Appointments), staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
