package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// UpsertWorkingHoursRequest часы работы на день недели
type UpsertWorkingHoursRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// CreateBlockedTimeRequest запрос на блокировку времени мастера
type CreateBlockedTimeRequest struct {
	BarberID  uuid.UUID `json:"barberId"`
	Date      string    `json:"date"` // "2025-10-15"
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
}

// WorkingHoursResponse часы работы
type WorkingHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WorkingHoursListResponse неделя барбершопа
type WorkingHoursListResponse struct {
	WorkingHours []WorkingHoursResponse `json:"workingHours"`
}

// BlockedTimeResponse блокировка времени
type BlockedTimeResponse struct {
	ID        uuid.UUID `json:"id"`
	BarberID  uuid.UUID `json:"barberId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomainWorkingHours(wh *domain.WorkingHours) WorkingHoursResponse {
	return WorkingHoursResponse{
		DayOfWeek: wh.DayOfWeek,
		IsOpen:    wh.IsOpen,
		StartTime: wh.StartTime.String(),
		EndTime:   wh.EndTime.String(),
	}
}

func FromDomainBlockedTime(bt *domain.BlockedTime) *BlockedTimeResponse {
	return &BlockedTimeResponse{
		ID:        bt.ID,
		BarberID:  bt.BarberID,
		Date:      bt.Date.Format(domain.DateFormat),
		StartTime: bt.StartTime.String(),
		EndTime:   bt.EndTime.String(),
		Reason:    bt.Reason,
		CreatedAt: bt.CreatedAt,
	}
}
