package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// ListRequest фильтры списка записей
type ListRequest struct {
	BarberID *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
	Status   *string
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenantId"`
	CustomerID      uuid.UUID `json:"customerId"`
	BarberID        uuid.UUID `json:"barberId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	Date            string    `json:"appointmentDate"` // "2025-10-15"
	StartTime       string    `json:"appointmentTime"` // "10:00"
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		TenantID:        a.TenantID,
		CustomerID:      a.CustomerID,
		BarberID:        a.BarberID,
		ServiceID:       a.ServiceID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.Duration(),
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(items []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(items)),
	}
	for _, a := range items {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}
