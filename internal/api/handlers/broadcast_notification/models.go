package broadcast_notification

import (
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

// BroadcastRequest HTTP request model, тип по умолчанию marketing
type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// BroadcastResponse итог рассылки
type BroadcastResponse struct {
	Recipients int `json:"recipients"`
	Sent       int `json:"sent"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

func (r *BroadcastRequest) ToMessage() notifications.Message {
	msgType := domain.NotificationType(r.Type)
	if r.Type == "" {
		msgType = domain.NotificationMarketing
	}
	return notifications.Message{
		Title:   r.Title,
		Message: r.Message,
		Type:    msgType,
	}
}

func FromFanOutResult(res *notifications.FanOutResult) *BroadcastResponse {
	return &BroadcastResponse{
		Recipients: res.Recipients,
		Sent:       res.Sent,
		Skipped:    res.Skipped,
		Failed:     res.Failed,
	}
}
