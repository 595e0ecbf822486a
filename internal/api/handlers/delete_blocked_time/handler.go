package delete_blocked_time

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
)

const (
	msgMissingUser = "пользователь не определён"
	msgInvalidID   = "некорректный ID блокировки"
	msgNotFound    = "блокировка не найдена"
	msgForbidden   = "доступ запрещен"
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

// Handle DELETE /api/v1/blocked-times/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("DELETE /blocked-times/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.DeleteBlockedTime(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedTimeNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /blocked-times/{id} - Access denied: user_id=%s, id=%s", actor.UserID, id)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /blocked-times/{id} - Failed to delete blocked time: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-times/{id} - Blocked time deleted: id=%s, user_id=%s", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
