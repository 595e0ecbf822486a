package list_blocked_times

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedTimes(ctx context.Context, actor domain.Actor, barberID uuid.UUID, date time.Time) ([]*models.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
