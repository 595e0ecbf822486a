package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// NotificationRepository хранилище уведомлений и настроек
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (domain.NotificationPreferences, error)
	GetCustomerNotificationsFlag(ctx context.Context, userID uuid.UUID) (bool, error)
}

// DirectoryRepository наборы получателей
type DirectoryRepository interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	IsTenantMember(ctx context.Context, tenantID, userID uuid.UUID) (bool, error)
	ListStaffUserIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error)
	ListActiveBarberUserIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error)
	ListBroadcastCustomerUserIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error)
}

// MetricsRecorder счётчики исходов доставки
type MetricsRecorder interface {
	NotificationOutcome(notificationType, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
