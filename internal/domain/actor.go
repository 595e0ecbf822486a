package domain

import "github.com/google/uuid"

// Role роль пользователя в барбершопе
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleBarber   Role = "barber"
	RoleCustomer Role = "customer"
)

// Capability право на класс операций
type Capability uint8

const (
	CapBook Capability = 1 << iota
	CapManageStaff
	CapViewAllTenantData
)

// CapabilitiesFor набор прав роли
func CapabilitiesFor(role Role) Capability {
	switch role {
	case RoleAdmin:
		return CapBook | CapManageStaff | CapViewAllTenantData
	case RoleBarber:
		return CapBook | CapViewAllTenantData
	case RoleCustomer:
		return CapBook
	default:
		return 0
	}
}

// Actor вызывающий пользователь, определяется один раз на запрос
// и явно передаётся в каждую операцию
type Actor struct {
	UserID     uuid.UUID
	TenantID   uuid.UUID // uuid.Nil, если барбершоп не определён
	Role       Role
	CustomerID *uuid.UUID
	BarberID   *uuid.UUID
	caps       Capability
}

// NewActor создаёт актора с правами, вычисленными по роли
func NewActor(userID, tenantID uuid.UUID, role Role, customerID, barberID *uuid.UUID) Actor {
	return Actor{
		UserID:     userID,
		TenantID:   tenantID,
		Role:       role,
		CustomerID: customerID,
		BarberID:   barberID,
		caps:       CapabilitiesFor(role),
	}
}

func (a Actor) Can(c Capability) bool {
	return a.caps&c == c
}

func (a Actor) HasTenant() bool {
	return a.TenantID != uuid.Nil
}

// IsStaff сотрудник или владелец
func (a Actor) IsStaff() bool {
	return a.Can(CapViewAllTenantData)
}

// OwnsCustomer true, если актор и есть этот клиент
func (a Actor) OwnsCustomer(customerID uuid.UUID) bool {
	return a.CustomerID != nil && *a.CustomerID == customerID
}

// RoleBinding строка user_roles: роль пользователя, возможно привязанная к барбершопу
type RoleBinding struct {
	Role     Role
	TenantID *uuid.UUID
}
