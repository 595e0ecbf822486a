package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 || *req.DurationMinutes > domain.MaxServiceDuration {
			return fmt.Errorf("%w: durationMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxServiceDuration)
		}
	}

	return nil
}
