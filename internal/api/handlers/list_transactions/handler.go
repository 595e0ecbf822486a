package list_transactions

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister"
)

const (
	msgMissingUser    = "пользователь не определён"
	msgInvalidPeriod  = "некорректный период, ожидаются параметры from и to в формате YYYY-MM-DD"
	msgForbidden      = "касса доступна только персоналу"
	msgTenantNotFound = "барбершоп не найден"
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

// Handle GET /api/v1/transactions?from=2025-10-01&to=2025-10-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, errFrom := time.Parse(domain.DateFormat, query.Get("from"))
	to, errTo := time.Parse(domain.DateFormat, query.Get("to"))
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /transactions - Invalid period: from=%q, to=%q", query.Get("from"), query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.List(r.Context(), actor, from, to)
	if err != nil {
		switch {
		case errors.Is(err, cashregister.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cashregister.ErrTenantNotFound):
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, cashregister.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /transactions - Failed to list transactions: tenant_id=%s, error=%v", actor.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
