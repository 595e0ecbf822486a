package list_blocked_times

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

const (
	msgMissingUser     = "пользователь не определён"
	msgInvalidBarberID = "некорректный или отсутствующий параметр barberId"
	msgInvalidDate     = "некорректный или отсутствующий параметр date, ожидается YYYY-MM-DD"
	msgForbidden       = "доступ запрещен"
	msgBarberNotFound  = "мастер не найден"
)

// BlockedTimeListResponse блокировки мастера на дату
type BlockedTimeListResponse struct {
	BlockedTimes []*models.BlockedTimeResponse `json:"blockedTimes"`
}

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

// Handle GET /api/v1/blocked-times?barberId=&date=
// Только для персонала барбершопа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := uuid.Parse(r.URL.Query().Get("barberId"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	items, err := h.service.ListBlockedTimes(r.Context(), actor, barberID, date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /blocked-times - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /blocked-times - Failed to list blocked times: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BlockedTimeListResponse{BlockedTimes: items})
}
