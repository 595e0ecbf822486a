package send_notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

type NotificationService interface {
	SendAsActor(ctx context.Context, actor domain.Actor, userID uuid.UUID, msg notifications.Message) (notifications.Outcome, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
