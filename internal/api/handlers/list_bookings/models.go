package list_bookings

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

var (
	errInvalidBarberID = errors.New("invalid barberId")
	errInvalidDate     = errors.New("invalid date")
)

// ToServiceRequest фильтры из query: barberId, date или dateFrom/dateTo, status
func ToServiceRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if s := query.Get("barberId"); s != "" {
		barberID, err := uuid.Parse(s)
		if err != nil {
			return nil, errInvalidBarberID
		}
		req.BarberID = &barberID
	}

	// date задаёт один день
	if s := query.Get("date"); s != "" {
		date, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, errInvalidDate
		}
		req.DateFrom = &date
		req.DateTo = &date
	}

	if s := query.Get("dateFrom"); s != "" {
		from, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, errInvalidDate
		}
		req.DateFrom = &from
	}

	if s := query.Get("dateTo"); s != "" {
		to, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, errInvalidDate
		}
		req.DateTo = &to
	}

	if s := query.Get("status"); s != "" {
		req.Status = &s
	}

	return req, nil
}
