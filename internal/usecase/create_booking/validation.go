package create_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(strings.TrimSpace(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotPast запись в прошлое или на уже начавшийся сегодня слот запрещена
func validateNotPast(date string, start types.TimeString, today string, now types.TimeString) error {
	if date < today {
		return ErrInvalidDate
	}
	if date == today && !start.IsAfter(now) {
		return ErrInvalidDate
	}
	return nil
}
