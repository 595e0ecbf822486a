package get_available_slots

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type paramError struct {
	msg string
}

func (e *paramError) Error() string {
	return e.msg
}

// ToUseCaseRequest собирает запрос use case из пути и query параметров
// date обязателен, длительность задаётся serviceId или durationMinutes
func ToUseCaseRequest(actor domain.Actor, barberIDStr string, query url.Values) (*getAvailableSlots.Request, error) {
	barberID, err := uuid.Parse(barberIDStr)
	if err != nil {
		return nil, &paramError{msgInvalidBarberID}
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		return nil, &paramError{msgMissingDate}
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, &paramError{msgInvalidDate}
	}

	req := &getAvailableSlots.Request{
		Actor:    actor,
		BarberID: barberID,
		Date:     date,
	}

	if s := query.Get("serviceId"); s != "" {
		serviceID, err := uuid.Parse(s)
		if err != nil {
			return nil, &paramError{msgInvalidServiceID}
		}
		req.ServiceID = &serviceID
	}

	if s := query.Get("durationMinutes"); s != "" {
		duration, err := strconv.Atoi(s)
		if err != nil {
			return nil, &paramError{msgInvalidDuration}
		}
		req.DurationMinutes = ptr.Ptr(duration)
	}

	return req, nil
}
