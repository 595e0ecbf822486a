package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модель запроса на получение свободного времени мастера
type Request struct {
	Actor           domain.Actor
	BarberID        uuid.UUID
	Date            time.Time  // Дата без времени
	ServiceID       *uuid.UUID // Длительность берётся из услуги
	DurationMinutes *int       // Используется, если услуга не указана
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            string   `json:"date"`
	BarberID        string   `json:"barberId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // "HH:MM" по возрастанию
}
