package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// NotificationType категория уведомления
type NotificationType string

const (
	NotificationBooking      NotificationType = "booking"
	NotificationReminder     NotificationType = "reminder"
	NotificationConfirmation NotificationType = "confirmation"
	NotificationCancellation NotificationType = "cancellation"
	NotificationReschedule   NotificationType = "reschedule"
	NotificationMarketing    NotificationType = "marketing"
	NotificationSystem       NotificationType = "system"
)

var ErrInvalidNotificationType = errors.New("invalid notification type")

func ParseNotificationType(s string) (NotificationType, error) {
	switch t := NotificationType(s); t {
	case NotificationBooking, NotificationReminder, NotificationConfirmation,
		NotificationCancellation, NotificationReschedule, NotificationMarketing, NotificationSystem:
		return t, nil
	}
	return "", ErrInvalidNotificationType
}

// Notification уведомление пользователю
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	RelatedID *uuid.UUID
	CreatedAt time.Time
}

// NotificationPreferences настройки категорий уведомлений пользователя
type NotificationPreferences struct {
	UserID        uuid.UUID
	Reminders     bool
	Confirmations bool
	Cancellations bool
	Reschedules   bool
	Marketing     bool
}

// DefaultNotificationPreferences всё включено, если пользователь ничего не настраивал
func DefaultNotificationPreferences(userID uuid.UUID) NotificationPreferences {
	return NotificationPreferences{
		UserID:        userID,
		Reminders:     true,
		Confirmations: true,
		Cancellations: true,
		Reschedules:   true,
		Marketing:     true,
	}
}

// Allows проверяет флаг категории. booking и system флагами не отключаются
func (p NotificationPreferences) Allows(t NotificationType) bool {
	switch t {
	case NotificationReminder:
		return p.Reminders
	case NotificationConfirmation:
		return p.Confirmations
	case NotificationCancellation:
		return p.Cancellations
	case NotificationReschedule:
		return p.Reschedules
	case NotificationMarketing:
		return p.Marketing
	default:
		return true
	}
}
