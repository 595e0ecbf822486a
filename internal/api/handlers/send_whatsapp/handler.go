package send_whatsapp

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	sendWhatsApp "github.com/m04kA/SMC-BarberService/internal/usecase/send_whatsapp"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotConfigured      = "WhatsApp не настроен"
	msgInvalidInput       = "некорректный номер получателя или пустое сообщение"
	msgForbidden          = "доступ запрещен"
	msgProvider           = "не удалось отправить сообщение WhatsApp"
)

// SendWhatsAppRequest тело запроса функции
type SendWhatsAppRequest struct {
	To      string     `json:"to"`
	Message string     `json:"message"`
	UserID  *uuid.UUID `json:"userId,omitempty"`
}

type Handler struct {
	useCase SendWhatsAppUseCase
	logger  Logger
}

func NewHandler(useCase SendWhatsAppUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /functions/v1/send-whatsapp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondFunctionError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	var req SendWhatsAppRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /functions/v1/send-whatsapp - Invalid request body: %v", err)
		handlers.RespondFunctionError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sendWhatsApp.Request{
		Actor:   actor,
		To:      req.To,
		Message: req.Message,
		UserID:  req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sendWhatsApp.ErrNotConfigured):
			handlers.RespondFunctionError(w, http.StatusBadRequest, msgNotConfigured)

		case errors.Is(err, sendWhatsApp.ErrInvalidInput):
			handlers.RespondFunctionError(w, http.StatusBadRequest, msgInvalidInput)

		case errors.Is(err, sendWhatsApp.ErrAccessDenied):
			h.logger.Warn("POST /functions/v1/send-whatsapp - Access denied: user_id=%s", actor.UserID)
			handlers.RespondFunctionError(w, http.StatusForbidden, msgForbidden)

		case errors.Is(err, sendWhatsApp.ErrProvider):
			h.logger.Warn("POST /functions/v1/send-whatsapp - Provider error: %v", err)
			handlers.RespondFunctionError(w, http.StatusBadGateway, msgProvider)

		default:
			h.logger.Error("POST /functions/v1/send-whatsapp - Failed to send: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondFunctionInternalError(w)
		}
		return
	}

	h.logger.Info("POST /functions/v1/send-whatsapp - Message sent: sid=%s", result.MessageSID)
	handlers.RespondFunctionSuccess(w, map[string]interface{}{
		"messageSid": result.MessageSID,
	})
}
