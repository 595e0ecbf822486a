package update_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListByBarberAndDate(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ScheduleRepository блокировки времени мастеров
type ScheduleRepository interface {
	ListBlockedTimes(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.BlockedTime, error)
}

// LoyaltyCreditor начисление балла за завершённую запись
type LoyaltyCreditor interface {
	CreditCompletedService(ctx context.Context, tenantID, customerID, appointmentID uuid.UUID) (*loyalty.LedgerEntry, error)
}

// StaffNotifier уведомления сотрудникам барбершопа
type StaffNotifier interface {
	NotifyStaff(ctx context.Context, tenantID uuid.UUID, msg notifications.Message) (*notifications.FanOutResult, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчики записей
type MetricsRecorder interface {
	BookingConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
