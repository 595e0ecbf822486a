package delete_blocked_time

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

type ScheduleService interface {
	DeleteBlockedTime(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
