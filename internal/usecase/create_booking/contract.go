package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListByBarberAndDate(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository блокировки времени мастеров
type ScheduleRepository interface {
	ListBlockedTimes(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.BlockedTime, error)
}

// DirectoryRepository справочник барбершопа
type DirectoryRepository interface {
	GetBarber(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// StaffNotifier уведомления сотрудникам барбершопа
type StaffNotifier interface {
	NotifyStaff(ctx context.Context, tenantID uuid.UUID, msg notifications.Message) (*notifications.FanOutResult, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock часы в часовом поясе барбершопа
type Clock interface {
	Today() string
	CurrentTimeShort() string
}

// MetricsRecorder счётчики записей
type MetricsRecorder interface {
	BookingCreated()
	BookingConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
