package mint_coupon

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
)

type LoyaltyService interface {
	MintCoupon(ctx context.Context, actor domain.Actor, customerID *uuid.UUID) (*loyalty.MintedCoupon, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
