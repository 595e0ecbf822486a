package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByBarberAndDate неотменённые записи мастера на дату
	ListByBarberAndDate(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository часы работы и блокировки
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context, tenantID uuid.UUID, dayOfWeek int) (*domain.WorkingHours, error)
	ListBlockedTimes(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.BlockedTime, error)
}

// DirectoryRepository справочник мастеров и услуг
type DirectoryRepository interface {
	GetBarber(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// Clock часы в часовом поясе барбершопа
type Clock interface {
	Today() string
	CurrentTimeShort() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
