package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	updateBooking "github.com/m04kA/SMC-BarberService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

const (
	msgMissingUser          = "пользователь не определён"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgCannotCancel         = "запись не может быть отменена"
	msgTenantNotFound       = "барбершоп не найден"
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

// Handle PATCH /api/v1/appointments/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateBooking.Request{
		Actor:         actor,
		AppointmentID: appointmentID,
		Status:        ptr.Ptr(string(domain.StatusCancelled)),
	})
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%s, user_id=%s", appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrTenantNotFound):
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: appointment_id=%s, user_id=%s, notified=%d",
		appointmentID, actor.UserID, result.Notified)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result.Appointment))
}
