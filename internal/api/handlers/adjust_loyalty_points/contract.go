package adjust_loyalty_points

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
)

type LoyaltyService interface {
	Adjust(ctx context.Context, actor domain.Actor, req loyalty.AdjustRequest) (*loyalty.LedgerEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
