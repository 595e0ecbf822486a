package notifications

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Outcome итог доставки одному получателю
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Message содержимое уведомления без получателя
type Message struct {
	Title     string
	Message   string
	Type      domain.NotificationType
	RelatedID *uuid.UUID
}

func (m Message) validate() error {
	title := strings.TrimSpace(m.Title)
	body := strings.TrimSpace(m.Message)
	if title == "" || len(title) > domain.MaxTitleLength {
		return ErrInvalidInput
	}
	if body == "" || len(body) > domain.MaxMessageLength {
		return ErrInvalidInput
	}
	if _, err := domain.ParseNotificationType(string(m.Type)); err != nil {
		return ErrInvalidInput
	}
	return nil
}

// FanOutResult итог рассылки нескольким получателям
type FanOutResult struct {
	Recipients int
	Sent       int
	Skipped    int
	Failed     int
}

func (r *FanOutResult) add(o Outcome) {
	switch o {
	case OutcomeSent:
		r.Sent++
	case OutcomeSkipped:
		r.Skipped++
	default:
		r.Failed++
	}
}
