package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// WorkingHours часы работы барбершопа на день недели
// DayOfWeek: 0 - воскресенье ... 6 - суббота (как time.Weekday)
type WorkingHours struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	DayOfWeek int
	IsOpen    bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsClosed true, если в этот день нет приёма
func (w *WorkingHours) IsClosed() bool {
	return w == nil || !w.IsOpen || !w.StartTime.IsBefore(w.EndTime)
}

// BlockedTime окно недоступности мастера
type BlockedTime struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	BarberID  uuid.UUID
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string
	CreatedAt time.Time
}

// Slot свободное время начала записи
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// HasConflict пересекается ли [start, end) с неотменённой записью или блокировкой
// Запись с ID exclude не учитывается (перенос самой себя)
func HasConflict(start, end int, appointments []*Appointment, blocked []*BlockedTime, exclude uuid.UUID) bool {
	for _, a := range appointments {
		if a.IsCancelled() || (exclude != uuid.Nil && a.ID == exclude) {
			continue
		}
		if Overlaps(start, end, a.StartTime.Minutes(), a.EndMinutes()) {
			return true
		}
	}

	for _, b := range blocked {
		if Overlaps(start, end, b.StartTime.Minutes(), b.EndTime.Minutes()) {
			return true
		}
	}

	return false
}
