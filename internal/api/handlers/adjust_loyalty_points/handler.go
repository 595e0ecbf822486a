package adjust_loyalty_points

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректная операция с баллами"
	msgForbidden          = "изменять баллы может только персонал барбершопа"
	msgCustomerNotFound   = "клиент не найден"
)

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

// Handle POST /api/v1/customers/{customerId}/loyalty-points
// action: add, remove или set. Баланс не опускается ниже нуля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(mux.Vars(r)["customerId"])
	if err != nil {
		h.logger.Warn("POST /customers/{id}/loyalty-points - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req AdjustPointsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/{id}/loyalty-points - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := h.service.Adjust(r.Context(), actor, req.ToServiceRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrAccessDenied):
			h.logger.Warn("POST /customers/{id}/loyalty-points - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, loyalty.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, loyalty.ErrInvalidInput):
			h.logger.Warn("POST /customers/{id}/loyalty-points - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /customers/{id}/loyalty-points - Failed to adjust points: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers/{id}/loyalty-points - Points adjusted: customer_id=%s, action=%s, balance=%d",
		customerID, entry.Action, entry.PointsBalance)
	handlers.RespondJSON(w, http.StatusOK, FromLedgerEntry(entry))
}
