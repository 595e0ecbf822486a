package update_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request изменение записи, nil-поля не меняются
type Request struct {
	Actor         domain.Actor
	AppointmentID uuid.UUID
	Status        *string
	Date          *time.Time
	StartTime     *types.TimeString
	Notes         *string
}

// Response результат изменения
type Response struct {
	Appointment *domain.Appointment
	Credited    bool
	Notified    int
}

func (r *Request) reschedules() bool {
	return r.Date != nil || r.StartTime != nil
}

func (r *Request) isEmpty() bool {
	return r.Status == nil && !r.reschedules() && r.Notes == nil
}
