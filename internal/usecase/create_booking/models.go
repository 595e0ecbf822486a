package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Actor      domain.Actor
	CustomerID *uuid.UUID // Обязателен для сотрудника, клиент записывает себя
	BarberID   uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала (например, "10:00")
	Notes      *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
	Notified    int // Сколько сотрудников получили уведомление
}
