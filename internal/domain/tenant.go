package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant барбершоп, единица изоляции данных
type Tenant struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	OwnerID   uuid.UUID
	IsActive  bool
	CreatedAt time.Time
}

// Barber сотрудник барбершопа
type Barber struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	UserID         *uuid.UUID
	Name           string
	IsActive       bool
	CommissionRate decimal.Decimal // доля от 0 до 1
}

// Customer клиент барбершопа
type Customer struct {
	ID                   uuid.UUID
	TenantID             uuid.UUID
	UserID               *uuid.UUID // nil - клиент без аккаунта
	Name                 string
	Phone                *string
	LoyaltyPoints        int
	NotificationsEnabled bool
}

// HasAccount true, если клиент привязан к аккаунту и может получать уведомления
func (c *Customer) HasAccount() bool {
	return c.UserID != nil
}

// Service услуга барбершопа
type Service struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	Name            string
	Price           decimal.Decimal
	DurationMinutes int
	IsActive        bool
}

// Duration длительность услуги, по умолчанию 30 минут
func (s *Service) Duration() int {
	if s == nil || s.DurationMinutes <= 0 {
		return DefaultServiceDuration
	}
	return s.DurationMinutes
}
