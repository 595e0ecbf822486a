package mint_coupon

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInsufficientPoints = "недостаточно баллов для купона, нужно 10"
	msgCustomerNotFound   = "клиент не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные запроса"
)

// MintCouponRequest customer_id необязателен, по умолчанию клиент-актор
type MintCouponRequest struct {
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
}

type Handler struct {
	service LoyaltyService
	logger  Logger
}

func NewHandler(service LoyaltyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /functions/v1/mint-coupon
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondFunctionError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	var req MintCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /functions/v1/mint-coupon - Invalid request body: %v", err)
		handlers.RespondFunctionError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.service.MintCoupon(r.Context(), actor, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrInsufficientPoints):
			h.logger.Warn("POST /functions/v1/mint-coupon - Insufficient points: user_id=%s", actor.UserID)
			handlers.RespondFunctionError(w, http.StatusBadRequest, msgInsufficientPoints)

		case errors.Is(err, loyalty.ErrCustomerNotFound):
			handlers.RespondFunctionError(w, http.StatusNotFound, msgCustomerNotFound)

		case errors.Is(err, loyalty.ErrAccessDenied):
			handlers.RespondFunctionError(w, http.StatusForbidden, msgForbidden)

		case errors.Is(err, loyalty.ErrInvalidInput):
			handlers.RespondFunctionError(w, http.StatusBadRequest, msgInvalidInput)

		default:
			h.logger.Error("POST /functions/v1/mint-coupon - Failed to mint coupon: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondFunctionInternalError(w)
		}
		return
	}

	h.logger.Info("POST /functions/v1/mint-coupon - Coupon minted: code=%s, customer_id=%s",
		result.Coupon.Code, result.Coupon.CustomerID)
	handlers.RespondFunctionSuccess(w, map[string]interface{}{
		"code":             result.Coupon.Code,
		"expires_at":       result.Coupon.ExpiresAt,
		"remaining_points": result.RemainingPoints,
	})
}
