package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListWorkingHours(ctx context.Context, actor domain.Actor) (*models.WorkingHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
