package whatsapp

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

const channelPrefix = "whatsapp:"

// SenderFactory создаёт отправителя под учётные данные конкретного пользователя
type SenderFactory func(settings domain.WhatsAppSettings, timeout time.Duration) MessageSender

// TwilioSenderFactory отправитель поверх Twilio REST клиента
func TwilioSenderFactory(settings domain.WhatsAppSettings, timeout time.Duration) MessageSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: settings.AccountSID,
		Password: settings.AuthToken,
	})
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client.Api
}

// Client отправка сообщений WhatsApp с учётными данными пользователя
// Исходящий поток ограничен общим лимитером на процесс
type Client struct {
	limiter   *rate.Limiter
	newSender SenderFactory
	timeout   time.Duration
	log       Logger
}

// NewClient создает клиент с Twilio отправителем
func NewClient(ratePerSecond float64, burst int, timeout time.Duration, log Logger) *Client {
	return NewClientWithFactory(ratePerSecond, burst, timeout, TwilioSenderFactory, log)
}

// NewClientWithFactory создает клиент с произвольным отправителем
func NewClientWithFactory(ratePerSecond float64, burst int, timeout time.Duration, factory SenderFactory, log Logger) *Client {
	if burst < 1 {
		burst = 1
	}
	return &Client{
		limiter:   rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		newSender: factory,
		timeout:   timeout,
		log:       log,
	}
}

// Send отправляет сообщение и возвращает SID провайдера
func (c *Client) Send(ctx context.Context, settings *domain.WhatsAppSettings, to, message string) (string, error) {
	if !settings.IsConfigured() {
		return "", ErrNotConfigured
	}

	recipient, err := normalizeRecipient(to)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(withChannelPrefix(settings.FromNumber))
	params.SetBody(message)

	resp, err := c.newSender(*settings, c.timeout).CreateMessage(params)
	if err != nil {
		c.log.Error("WhatsApp send failed for user_id=%s: %v", settings.UserID, err)
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}

	c.log.Info("WhatsApp message sent for user_id=%s, sid=%s", settings.UserID, sid)
	return sid, nil
}

// normalizeRecipient проверяет номер E.164 и добавляет префикс канала
func normalizeRecipient(to string) (string, error) {
	number := strings.TrimPrefix(strings.TrimSpace(to), channelPrefix)
	if len(number) < 8 || len(number) > 16 || number[0] != '+' {
		return "", ErrInvalidRecipient
	}
	for _, r := range number[1:] {
		if !unicode.IsDigit(r) {
			return "", ErrInvalidRecipient
		}
	}
	return channelPrefix + number, nil
}

func withChannelPrefix(number string) string {
	if strings.HasPrefix(number, channelPrefix) {
		return number
	}
	return channelPrefix + number
}
