package redeem_coupon

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
)

const (
	msgMissingUser         = "пользователь не определён"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCode         = "некорректный код купона"
	msgCouponNotFound      = "купон не найден"
	msgCouponNotOwned      = "купон принадлежит другому клиенту"
	msgAlreadyRedeemed     = "купон уже использован"
	msgExpired             = "срок действия купона истёк"
	msgAppointmentNotFound = "запись не найдена"
)

// RedeemCouponRequest тело запроса функции
type RedeemCouponRequest struct {
	Code          string     `json:"code"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
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

// Handle POST /functions/v1/redeem-coupon
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondFunctionError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	var req RedeemCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /functions/v1/redeem-coupon - Invalid request body: %v", err)
		handlers.RespondFunctionError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RedeemCoupon(r.Context(), actor, req.Code, req.AppointmentID)
	if err != nil {
		status, msg := http.StatusBadRequest, ""
		switch {
		case errors.Is(err, loyalty.ErrInvalidInput):
			msg = msgInvalidCode
		case errors.Is(err, loyalty.ErrCouponNotFound):
			status, msg = http.StatusNotFound, msgCouponNotFound
		case errors.Is(err, loyalty.ErrCouponNotOwned):
			status, msg = http.StatusForbidden, msgCouponNotOwned
		case errors.Is(err, loyalty.ErrCouponAlreadyRedeemed):
			msg = msgAlreadyRedeemed
		case errors.Is(err, loyalty.ErrCouponExpired):
			msg = msgExpired
		case errors.Is(err, loyalty.ErrAppointmentNotFound):
			status, msg = http.StatusNotFound, msgAppointmentNotFound
		default:
			h.logger.Error("POST /functions/v1/redeem-coupon - Failed to redeem coupon: user_id=%s, error=%v", actor.UserID, err)
			handlers.RespondFunctionInternalError(w)
			return
		}

		h.logger.Warn("POST /functions/v1/redeem-coupon - Rejected: user_id=%s, reason=%v", actor.UserID, err)
		handlers.RespondFunctionError(w, status, msg)
		return
	}

	h.logger.Info("POST /functions/v1/redeem-coupon - Coupon redeemed: code=%s, customer_id=%s",
		result.Code, result.CustomerID)
	handlers.RespondFunctionSuccess(w, map[string]interface{}{
		"code":           result.Code,
		"customer_id":    result.CustomerID,
		"appointment_id": result.AppointmentID,
		"redeemed_at":    result.RedeemedAt,
	})
}
