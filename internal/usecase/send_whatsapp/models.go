package send_whatsapp

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request отправка сообщения, UserID == nil означает учётные данные вызывающего
type Request struct {
	Actor   domain.Actor
	To      string
	Message string
	UserID  *uuid.UUID
}

// Response идентификатор сообщения у провайдера
type Response struct {
	MessageSID string `json:"messageSid"`
}

const (
	outcomeSent          = "sent"
	outcomeNotConfigured = "not_configured"
	outcomeFailed        = "failed"
)
