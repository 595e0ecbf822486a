package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
)

const (
	msgMissingUser        = "пользователь не определён"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgSlotNotAvailable   = "выбранное время недоступно"
	msgTenantNotFound     = "барбершоп не найден"
	msgCustomerNotFound   = "клиент не найден"
	msgBarberNotFound     = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidBookingDate = "нельзя записаться на прошедшее время"
	msgInvalidInput       = "некорректные данные записи"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
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
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: barber_id=%s, date=%s, time=%s",
				req.BarberID, req.AppointmentDate, req.AppointmentTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTenantNotFound):
			h.logger.Warn("POST /appointments - Tenant not found: user_id=%s", actor.UserID)
			handlers.RespondBadRequest(w, msgTenantNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /appointments - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, barber_id=%s, error=%v",
				actor.UserID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, user_id=%s",
		result.Appointment.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
