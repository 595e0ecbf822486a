package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAction вид операции с баллами
type LoyaltyAction string

const (
	LoyaltyAdd              LoyaltyAction = "add"
	LoyaltyRemove           LoyaltyAction = "remove"
	LoyaltySet              LoyaltyAction = "set"
	LoyaltyCouponGenerated  LoyaltyAction = "coupon_generated"
	LoyaltyServiceCompleted LoyaltyAction = "service_completed"
)

// IsManual true для ручных операций сотрудников
func (a LoyaltyAction) IsManual() bool {
	return a == LoyaltyAdd || a == LoyaltyRemove || a == LoyaltySet
}

// LoyaltyHistory строка журнала баллов, только добавление
type LoyaltyHistory struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	CustomerID    uuid.UUID
	PointsChange  int
	PointsBalance int
	Action        LoyaltyAction
	Description   *string
	CreatedAt     time.Time
}

// Coupon купон на скидку, погашается один раз
type Coupon struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	CustomerID    uuid.UUID
	Code          string
	IsRedeemed    bool
	RedeemedAt    *time.Time
	ExpiresAt     *time.Time
	AppointmentID *uuid.UUID
	CreatedAt     time.Time
}

// IsExpired купон просрочен, если срок строго раньше now
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
