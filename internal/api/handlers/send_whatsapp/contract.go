package send_whatsapp

import (
	"context"

	sendWhatsApp "github.com/m04kA/SMC-BarberService/internal/usecase/send_whatsapp"
)

type SendWhatsAppUseCase interface {
	Execute(ctx context.Context, req *sendWhatsApp.Request) (*sendWhatsApp.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
