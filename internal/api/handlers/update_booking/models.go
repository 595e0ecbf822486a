package update_booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	updateBooking "github.com/m04kA/SMC-BarberService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid appointmentDate")
	errInvalidTime = errors.New("invalid appointmentTime")
)

// UpdateBookingRequest HTTP request model, отсутствующие поля не меняются
type UpdateBookingRequest struct {
	Status          *string `json:"status,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	AppointmentTime *string `json:"appointmentTime,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// UpdateBookingResponse запись после изменения
type UpdateBookingResponse struct {
	*models.AppointmentResponse
	LoyaltyCredited bool `json:"loyaltyCredited"`
	NotifiedStaff   int  `json:"notifiedStaff"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, appointmentID uuid.UUID) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		Actor:         actor,
		AppointmentID: appointmentID,
		Status:        r.Status,
		Notes:         r.Notes,
	}

	if r.AppointmentDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.AppointmentDate)
		if err != nil {
			return nil, errInvalidDate
		}
		req.Date = &date
	}

	if r.AppointmentTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.AppointmentTime)
		if err != nil {
			return nil, errInvalidTime
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment),
		LoyaltyCredited:     resp.Credited,
		NotifiedStaff:       resp.Notified,
	}
}
