package create_booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid appointmentDate")
	errInvalidTime = errors.New("invalid appointmentTime")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID      *uuid.UUID `json:"customerId,omitempty"` // только для сотрудников
	BarberID        uuid.UUID  `json:"barberId"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	AppointmentDate string     `json:"appointmentDate"` // "2025-10-15"
	AppointmentTime string     `json:"appointmentTime"` // "10:00"
	Notes           *string    `json:"notes,omitempty"`
}

// CreateBookingResponse запись и число уведомлённых сотрудников
type CreateBookingResponse struct {
	*models.AppointmentResponse
	NotifiedStaff int `json:"notifiedStaff"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		Actor:      actor,
		CustomerID: r.CustomerID,
		BarberID:   r.BarberID,
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment),
		NotifiedStaff:       resp.Notified,
	}
}
