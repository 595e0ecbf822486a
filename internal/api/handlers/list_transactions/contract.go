package list_transactions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister/models"
)

type CashRegisterService interface {
	List(ctx context.Context, actor domain.Actor, from, to time.Time) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
