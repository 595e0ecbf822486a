package send_notification

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingRecipient   = "не указан user_id получателя"
	msgInvalidMessage     = "некорректный заголовок, текст или тип уведомления"
	msgForbidden          = "нельзя отправить уведомление этому пользователю"
	msgTenantNotFound     = "барбершоп не найден"
)

// SendNotificationRequest тело запроса функции
type SendNotificationRequest struct {
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	RelatedID *uuid.UUID `json:"related_id,omitempty"`
}

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

// Handle POST /functions/v1/send-notification
// Отключенные пользователем уведомления не ошибка: success=true, sent=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondFunctionError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	var req SendNotificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /functions/v1/send-notification - Invalid request body: %v", err)
		handlers.RespondFunctionError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}
	if req.UserID == uuid.Nil {
		handlers.RespondFunctionError(w, http.StatusBadRequest, msgMissingRecipient)
		return
	}

	outcome, err := h.service.SendAsActor(r.Context(), actor, req.UserID, notifications.Message{
		Title:     req.Title,
		Message:   req.Message,
		Type:      domain.NotificationType(req.Type),
		RelatedID: req.RelatedID,
	})
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			handlers.RespondFunctionError(w, http.StatusBadRequest, msgInvalidMessage)

		case errors.Is(err, notifications.ErrAccessDenied):
			h.logger.Warn("POST /functions/v1/send-notification - Access denied: user_id=%s, recipient=%s", actor.UserID, req.UserID)
			handlers.RespondFunctionError(w, http.StatusForbidden, msgForbidden)

		case errors.Is(err, notifications.ErrTenantNotFound):
			handlers.RespondFunctionError(w, http.StatusBadRequest, msgTenantNotFound)

		default:
			h.logger.Error("POST /functions/v1/send-notification - Failed to send: recipient=%s, error=%v", req.UserID, err)
			handlers.RespondFunctionInternalError(w)
		}
		return
	}

	h.logger.Info("POST /functions/v1/send-notification - Notification processed: recipient=%s, type=%s, outcome=%s",
		req.UserID, req.Type, outcome)
	handlers.RespondFunctionSuccess(w, map[string]interface{}{
		"sent":    outcome == notifications.OutcomeSent,
		"outcome": outcome,
	})
}
