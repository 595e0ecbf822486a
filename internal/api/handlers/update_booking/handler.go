package update_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	updateBooking "github.com/m04kA/SMC-BarberService/internal/usecase/update_booking"
)

const (
	msgMissingUser          = "пользователь не определён"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgSlotNotAvailable     = "выбранное время недоступно"
	msgTenantNotFound       = "барбершоп не найден"
	msgInvalidInput         = "некорректные данные записи"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}
// Перенос, смена статуса, заметки. Клиент может только перенести или отменить свою запись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%s, user_id=%s", appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id} - Slot not available: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, updateBooking.ErrTenantNotFound):
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated: appointment_id=%s, status=%s, user_id=%s",
		appointmentID, result.Appointment.Status, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
