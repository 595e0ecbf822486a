package whatsapp

import twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MessageSender часть Twilio REST API, которой пользуется клиент
type MessageSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}
