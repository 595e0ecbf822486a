package domain

import "github.com/google/uuid"

// WhatsAppSettings учётные данные провайдера WhatsApp, сохранённые пользователем
type WhatsAppSettings struct {
	UserID     uuid.UUID
	AccountSID string
	AuthToken  string
	FromNumber string
	IsEnabled  bool
}

// IsConfigured true, если отправка возможна
func (s *WhatsAppSettings) IsConfigured() bool {
	return s != nil && s.IsEnabled && s.AccountSID != "" && s.AuthToken != "" && s.FromNumber != ""
}
