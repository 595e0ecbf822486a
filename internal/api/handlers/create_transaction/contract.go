package create_transaction

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister/models"
)

type CashRegisterService interface {
	Create(ctx context.Context, actor domain.Actor, req *models.CreateTransactionRequest) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
