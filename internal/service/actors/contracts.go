package actors

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// DirectoryRepository справочник ролей и карточек пользователей
type DirectoryRepository interface {
	GetRoles(ctx context.Context, userID uuid.UUID) ([]domain.RoleBinding, error)
	GetTenantByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Tenant, error)
	GetBarberByUserID(ctx context.Context, userID uuid.UUID) (*domain.Barber, error)
	GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
