package loyalty

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AdjustRequest ручное изменение баллов сотрудником
type AdjustRequest struct {
	CustomerID  uuid.UUID
	Action      domain.LoyaltyAction // add, remove или set
	Points      int
	Description *string
}

// LedgerEntry результат операции с баллами
type LedgerEntry struct {
	CustomerID    uuid.UUID
	PointsChange  int
	PointsBalance int
	Action        domain.LoyaltyAction
}

// MintedCoupon выпущенный купон и остаток баллов
type MintedCoupon struct {
	Coupon          *domain.Coupon
	RemainingPoints int
}

// RedeemedCoupon погашенный купон
type RedeemedCoupon struct {
	Code          string
	CustomerID    uuid.UUID
	AppointmentID *uuid.UUID
	RedeemedAt    time.Time
}
