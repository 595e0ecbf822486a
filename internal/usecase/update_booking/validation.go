package update_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest проверяет формат полей, статус возвращается распарсенным
func validateRequest(req *Request) (*domain.AppointmentStatus, error) {
	if req.AppointmentID == uuid.Nil {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	if req.isEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is empty", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Notes != nil && len(strings.TrimSpace(*req.Notes)) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Status == nil {
		return nil, nil
	}
	status, err := domain.ParseAppointmentStatus(*req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}
	return &status, nil
}

// checkAccess сотрудник меняет что угодно в своём барбершопе,
// клиент только свою запись и из статусов может выставить лишь cancelled
func checkAccess(actor domain.Actor, appt *domain.Appointment, status *domain.AppointmentStatus) error {
	if appt.TenantID != actor.TenantID {
		return ErrAppointmentNotFound
	}
	if actor.IsStaff() {
		return nil
	}
	if !actor.OwnsCustomer(appt.CustomerID) {
		return ErrAccessDenied
	}
	if status != nil && *status != domain.StatusCancelled {
		return ErrAccessDenied
	}
	return nil
}
