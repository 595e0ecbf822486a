package create_transaction

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister/models"
)

const (
	msgMissingUser         = "пользователь не определён"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные операции"
	msgForbidden           = "касса доступна только персоналу"
	msgTenantNotFound      = "барбершоп не найден"
	msgAppointmentNotFound = "связанная запись не найдена"
)

type Handler struct {
	service CashRegisterService
	logger  Logger
}

func NewHandler(service CashRegisterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateTransactionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /transactions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, cashregister.ErrAccessDenied):
			h.logger.Warn("POST /transactions - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cashregister.ErrTenantNotFound):
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, cashregister.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, cashregister.ErrInvalidInput):
			h.logger.Warn("POST /transactions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /transactions - Failed to create transaction: tenant_id=%s, error=%v", actor.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /transactions - Transaction created: id=%s, type=%s, amount=%s",
		result.ID, result.Type, result.Amount.String())
	handlers.RespondJSON(w, http.StatusCreated, result)
}
