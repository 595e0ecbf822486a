package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidDayOfWeek   = "некорректный день недели, ожидается число от 0 до 6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректные часы работы"
	msgForbidden          = "изменять часы работы может только владелец"
	msgTenantNotFound     = "барбершоп не найден"
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

// Handle PUT /api/v1/working-hours/{dayOfWeek}
// dayOfWeek: 0 - воскресенье, 6 - суббота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil || dayOfWeek < 0 || dayOfWeek > 6 {
		h.logger.Warn("PUT /working-hours/{day} - Invalid day of week: %q", mux.Vars(r)["dayOfWeek"])
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertWorkingHours(r.Context(), actor, req.ToServiceRequest(dayOfWeek))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /working-hours/{day} - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrTenantNotFound):
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /working-hours/{day} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /working-hours/{day} - Failed to update working hours: tenant_id=%s, error=%v", actor.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours/{day} - Working hours updated: tenant_id=%s, day=%d, open=%t",
		actor.TenantID, dayOfWeek, result.IsOpen)
	handlers.RespondJSON(w, http.StatusOK, result)
}
