package create_blocked_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный интервал блокировки"
	msgForbidden          = "нельзя блокировать время другого мастера"
	msgBarberNotFound     = "мастер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlockedTime(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /blocked-times - Access denied: user_id=%s, barber_id=%s", actor.UserID, req.BarberID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-times - Failed to create blocked time: barber_id=%s, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-times - Blocked time created: id=%s, barber_id=%s, date=%s",
		result.ID, result.BarberID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
