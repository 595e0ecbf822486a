package actors

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
)

// rolePriority порядок выбора роли, если у пользователя их несколько
var rolePriority = []domain.Role{domain.RoleAdmin, domain.RoleBarber, domain.RoleCustomer}

// Service определяет вызывающего пользователя: роль, барбершоп и карточку
type Service struct {
	directory DirectoryRepository
	logger    Logger
}

func NewService(directory DirectoryRepository, logger Logger) *Service {
	return &Service{
		directory: directory,
		logger:    logger,
	}
}

// Resolve строит Actor по ID аккаунта
// Отсутствие барбершопа не ошибка: TenantID остаётся uuid.Nil, операции сами решают, что с этим делать
func (s *Service) Resolve(ctx context.Context, userID uuid.UUID) (domain.Actor, error) {
	bindings, err := s.directory.GetRoles(ctx, userID)
	if err != nil {
		s.logger.Error("Resolve: failed to get roles for user=%s: %v", userID, err)
		return domain.Actor{}, fmt.Errorf("%w: failed to get roles: %v", ErrInternal, err)
	}

	role, bindingTenant := pickRole(bindings)

	var (
		tenantID   = uuid.Nil
		customerID *uuid.UUID
		barberID   *uuid.UUID
	)

	switch role {
	case domain.RoleAdmin:
		tenant, err := s.directory.GetTenantByOwner(ctx, userID)
		switch {
		case err == nil:
			tenantID = tenant.ID
		case errors.Is(err, tenantRepo.ErrTenantNotFound):
		default:
			s.logger.Error("Resolve: failed to get tenant by owner=%s: %v", userID, err)
			return domain.Actor{}, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
		}

	case domain.RoleBarber:
		barber, err := s.directory.GetBarberByUserID(ctx, userID)
		switch {
		case err == nil:
			tenantID = barber.TenantID
			barberID = &barber.ID
		case errors.Is(err, tenantRepo.ErrBarberNotFound):
		default:
			s.logger.Error("Resolve: failed to get barber for user=%s: %v", userID, err)
			return domain.Actor{}, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
		}

	default:
		customer, err := s.directory.GetCustomerByUserID(ctx, userID)
		switch {
		case err == nil:
			role = domain.RoleCustomer
			tenantID = customer.TenantID
			customerID = &customer.ID
		case errors.Is(err, tenantRepo.ErrCustomerNotFound):
		default:
			s.logger.Error("Resolve: failed to get customer for user=%s: %v", userID, err)
			return domain.Actor{}, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
	}

	if tenantID == uuid.Nil && bindingTenant != nil && role != domain.RoleCustomer {
		tenantID = *bindingTenant
	}

	if tenantID == uuid.Nil {
		s.logger.Warn("Resolve: no tenant for user=%s, role=%q", userID, role)
	}

	return domain.NewActor(userID, tenantID, role, customerID, barberID), nil
}

func pickRole(bindings []domain.RoleBinding) (domain.Role, *uuid.UUID) {
	for _, want := range rolePriority {
		for _, b := range bindings {
			if b.Role == want {
				return b.Role, b.TenantID
			}
		}
	}
	return "", nil
}
