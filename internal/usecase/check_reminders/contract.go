package check_reminders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

// AppointmentRepository активные записи за период
type AppointmentRepository interface {
	ListActiveInDateRange(ctx context.Context, tenantID *uuid.UUID, from, to time.Time) ([]*domain.Appointment, error)
}

// NotificationRepository проверка уже отправленного напоминания
type NotificationRepository interface {
	ExistsByTypeAndRelated(ctx context.Context, notificationType domain.NotificationType, relatedID uuid.UUID) (bool, error)
}

// CustomerNotifier доставка уведомления клиенту с учётом его настроек
type CustomerNotifier interface {
	SendToCustomer(ctx context.Context, customerID uuid.UUID, msg notifications.Message) (notifications.Outcome, error)
}

// Clock часы в часовом поясе барбершопа
type Clock interface {
	Now() time.Time
	At(date time.Time, hhmm string) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
