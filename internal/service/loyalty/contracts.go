package loyalty

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// LoyaltyRepository баллы, журнал и купоны
type LoyaltyRepository interface {
	GetPoints(ctx context.Context, customerID uuid.UUID) (int, error)
	SetPoints(ctx context.Context, customerID uuid.UUID, points int) error
	InsertHistory(ctx context.Context, h *domain.LoyaltyHistory) (*domain.LoyaltyHistory, error)
	CreateCoupon(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	MarkCouponRedeemed(ctx context.Context, couponID uuid.UUID, appointmentID *uuid.UUID, at time.Time) error
}

// DirectoryRepository справочник клиентов
type DirectoryRepository interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// AppointmentRepository нужен для проверки записи при погашении купона
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder счётчики купонов
type MetricsRecorder interface {
	CouponMinted()
	CouponRedeemed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
