package broadcast_notification

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

type NotificationService interface {
	Broadcast(ctx context.Context, actor domain.Actor, msg notifications.Message) (*notifications.FanOutResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
