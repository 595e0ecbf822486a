package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// AppointmentStatus статус записи
// Переходы между статусами не ограничены
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

var ErrInvalidStatus = errors.New("invalid appointment status")

// ParseAppointmentStatus проверяет, что строка является известным статусом
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch st := AppointmentStatus(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	CustomerID uuid.UUID
	BarberID   uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time
	StartTime  types.TimeString
	Status     AppointmentStatus
	Notes      *string

	// ServiceDuration длительность услуги из справочника (0 - неизвестна)
	ServiceDuration int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration длительность записи с учётом значения по умолчанию
func (a *Appointment) Duration() int {
	if a.ServiceDuration <= 0 {
		return DefaultServiceDuration
	}
	return a.ServiceDuration
}

// EndMinutes конец записи в минутах от полуночи
func (a *Appointment) EndMinutes() int {
	return a.StartTime.Minutes() + a.Duration()
}

// IsCancelled отменённые записи не занимают время мастера
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Overlaps проверка пересечения полуоткрытых интервалов [start, end) в минутах
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// AppointmentFilter фильтр списка записей
type AppointmentFilter struct {
	TenantID   uuid.UUID  // Обязательный параметр
	CustomerID *uuid.UUID // Клиент видит только свои записи
	BarberID   *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     *AppointmentStatus
}
