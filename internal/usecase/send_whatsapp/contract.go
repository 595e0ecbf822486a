package send_whatsapp

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// SettingsRepository учётные данные WhatsApp пользователя
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.WhatsAppSettings, error)
}

// MembershipChecker принадлежность пользователя барбершопу
type MembershipChecker interface {
	IsTenantMember(ctx context.Context, tenantID, userID uuid.UUID) (bool, error)
}

// MessageSender отправка через провайдера
type MessageSender interface {
	Send(ctx context.Context, settings *domain.WhatsAppSettings, to, message string) (string, error)
}

// MetricsRecorder исходы отправки
type MetricsRecorder interface {
	WhatsAppOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
