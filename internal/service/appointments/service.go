package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

// Service чтение записей с учётом прав актора
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свою запись, сотрудник любую запись своего барбершопа
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetAppointment: fetching appointment id=%s for user=%s", id, actor.UserID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetAppointment: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetAppointment: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := CheckAccess(actor, appt); err != nil {
		s.logger.Warn("GetAppointment: access denied for user=%s to appointment id=%s", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// List записи барбершопа актора. Для клиента список ограничен его записями
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListAppointments: user=%s, tenant=%s", actor.UserID, actor.TenantID)

	if !actor.HasTenant() {
		s.logger.Warn("ListAppointments: user=%s has no tenant", actor.UserID)
		return nil, ErrTenantNotFound
	}

	filter := domain.AppointmentFilter{
		TenantID: actor.TenantID,
		BarberID: req.BarberID,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}

	if req.Status != nil {
		status, err := domain.ParseAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	if req.DateFrom != nil && req.DateTo != nil && req.DateTo.Before(*req.DateFrom) {
		return nil, fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}

	if !actor.Can(domain.CapViewAllTenantData) {
		if actor.CustomerID == nil {
			return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
		}
		filter.CustomerID = actor.CustomerID
	}

	items, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAppointments: repository error for tenant=%s: %v", actor.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAppointments: fetched %d appointments for tenant=%s", len(items), actor.TenantID)
	return models.FromDomainAppointmentList(items), nil
}

// CheckAccess клиент-владелец или сотрудник того же барбершопа
// Запись чужого барбершопа неотличима от отсутствующей
func CheckAccess(actor domain.Actor, appt *domain.Appointment) error {
	if appt.TenantID != actor.TenantID {
		return ErrAppointmentNotFound
	}
	if actor.IsStaff() || actor.OwnsCustomer(appt.CustomerID) {
		return nil
	}
	return ErrAccessDenied
}
