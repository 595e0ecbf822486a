package check_reminders

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	checkReminders "github.com/m04kA/SMC-BarberService/internal/usecase/check_reminders"
)

type CheckRemindersUseCase interface {
	ExecuteAsActor(ctx context.Context, actor domain.Actor) (*checkReminders.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
