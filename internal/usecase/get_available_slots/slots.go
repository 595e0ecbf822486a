package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CalculateSlots свободные времена начала для услуги длительностью duration
//
// Сетка строится от открытия с шагом 30 минут до закрытия (не включая) и не зависит от
// длительности услуги. Слот отбрасывается, если [start, start+duration) пересекается с
// неотменённой записью или блокировкой. Если дата сегодняшняя, отбрасываются слоты,
// начинающиеся не позже текущего времени now
//
// Примеры (duration = 30):
// - Запись 10:00-10:45, слот 10:30 занят (пересечение 10:30-10:45)
// - Запись 10:00-10:30, слот 10:30 свободен (интервалы граничат)
func CalculateSlots(
	hours *domain.WorkingHours,
	appointments []*domain.Appointment,
	blocked []*domain.BlockedTime,
	duration int,
	isToday bool,
	now types.TimeString,
) []types.TimeString {
	result := make([]types.TimeString, 0)

	if hours.IsClosed() {
		return result
	}
	if duration <= 0 {
		duration = domain.DefaultServiceDuration
	}

	nowMinutes := now.Minutes()

	for start := hours.StartTime.Minutes(); start < hours.EndTime.Minutes(); start += domain.SlotStepMinutes {
		if isToday && start <= nowMinutes {
			continue
		}

		if domain.HasConflict(start, start+duration, appointments, blocked, uuid.Nil) {
			continue
		}

		slot, err := types.FromMinutes(start)
		if err != nil {
			continue
		}
		result = append(result, slot)
	}

	return result
}
