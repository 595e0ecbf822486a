package update_working_hours

import (
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

// UpdateWorkingHoursRequest HTTP request model, день недели берётся из URL
type UpdateWorkingHoursRequest struct {
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest(dayOfWeek int) *models.UpsertWorkingHoursRequest {
	return &models.UpsertWorkingHoursRequest{
		DayOfWeek: dayOfWeek,
		IsOpen:    r.IsOpen,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
