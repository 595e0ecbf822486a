package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// ScheduleRepository часы работы и блокировки
type ScheduleRepository interface {
	ListWorkingHours(ctx context.Context, tenantID uuid.UUID) ([]*domain.WorkingHours, error)
	UpsertWorkingHours(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	ListBlockedTimes(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.BlockedTime, error)
	GetBlockedTime(ctx context.Context, id uuid.UUID) (*domain.BlockedTime, error)
	CreateBlockedTime(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error)
	DeleteBlockedTime(ctx context.Context, id uuid.UUID) error
}

// DirectoryRepository справочник мастеров
type DirectoryRepository interface {
	GetBarber(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
