package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
)

const (
	msgMissingUser      = "пользователь не определён"
	msgInvalidBarberID  = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDuration  = "некорректная длительность"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBarberNotFound   = "мастер не найден"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceId или durationMinutes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	useCaseReq, err := ToUseCaseRequest(actor, mux.Vars(r)["barberId"], r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/available-slots - Invalid params: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/available-slots - Barber not found: barber_id=%s", useCaseReq.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /barbers/{id}/available-slots - Service not found: barber_id=%s", useCaseReq.BarberID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /barbers/{id}/available-slots - Failed to get slots: barber_id=%s, error=%v",
				useCaseReq.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/available-slots - Slots retrieved: barber_id=%s, date=%s, slots_count=%d",
		useCaseReq.BarberID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
