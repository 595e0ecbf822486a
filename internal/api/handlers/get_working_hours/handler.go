package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
)

const (
	msgMissingUser    = "пользователь не определён"
	msgTenantNotFound = "барбершоп не найден"
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

// Handle GET /api/v1/working-hours
// Часы работы барбершопа пользователя по дням недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.ListWorkingHours(r.Context(), actor)
	if err != nil {
		if errors.Is(err, schedule.ErrTenantNotFound) {
			h.logger.Warn("GET /working-hours - User without tenant: user_id=%s", actor.UserID)
			handlers.RespondBadRequest(w, msgTenantNotFound)
			return
		}

		h.logger.Error("GET /working-hours - Failed to list working hours: tenant_id=%s, error=%v", actor.TenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
