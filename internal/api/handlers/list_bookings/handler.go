package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
)

const (
	msgMissingUser     = "пользователь не определён"
	msgInvalidBarberID = "некорректный ID мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput    = "некорректные параметры фильтра"
	msgTenantNotFound  = "барбершоп не найден"
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

// Handle GET /api/v1/appointments
// Клиент получает только свои записи, сотрудник все записи барбершопа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	serviceReq, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid filter: %v", err)
		if errors.Is(err, errInvalidBarberID) {
			handlers.RespondBadRequest(w, msgInvalidBarberID)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.List(r.Context(), actor, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrTenantNotFound):
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: user_id=%s, count=%d", actor.UserID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
