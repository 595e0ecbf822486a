package broadcast_notification

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMessage     = "некорректный заголовок, текст или тип уведомления"
	msgForbidden          = "рассылка доступна только владельцу"
	msgTenantNotFound     = "барбершоп не найден"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications/broadcast
// Рассылка всем клиентам барбершопа, клиенты с отключенными уведомлениями пропускаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req BroadcastRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/broadcast - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Broadcast(r.Context(), actor, req.ToMessage())
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrAccessDenied):
			h.logger.Warn("POST /notifications/broadcast - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, notifications.ErrTenantNotFound):
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, notifications.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /notifications/broadcast - Failed to broadcast: tenant_id=%s, error=%v", actor.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/broadcast - Broadcast finished: tenant_id=%s, recipients=%d, sent=%d",
		actor.TenantID, result.Recipients, result.Sent)
	handlers.RespondJSON(w, http.StatusOK, FromFanOutResult(result))
}
