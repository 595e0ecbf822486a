package check_reminders

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	checkReminders "github.com/m04kA/SMC-BarberService/internal/usecase/check_reminders"
)

const (
	msgMissingUser    = "пользователь не определён"
	msgForbidden      = "запуск напоминаний доступен только владельцу"
	msgTenantNotFound = "барбершоп не найден"
)

type Handler struct {
	useCase CheckRemindersUseCase
	logger  Logger
}

func NewHandler(useCase CheckRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /functions/v1/check-reminders
// Ручной запуск для барбершопа вызывающего, по расписанию работает cmd/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondFunctionError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	result, err := h.useCase.ExecuteAsActor(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, checkReminders.ErrAccessDenied):
			h.logger.Warn("POST /functions/v1/check-reminders - Access denied: user_id=%s", actor.UserID)
			handlers.RespondFunctionError(w, http.StatusForbidden, msgForbidden)

		case errors.Is(err, checkReminders.ErrTenantNotFound):
			handlers.RespondFunctionError(w, http.StatusBadRequest, msgTenantNotFound)

		default:
			h.logger.Error("POST /functions/v1/check-reminders - Failed: tenant_id=%s, error=%v", actor.TenantID, err)
			handlers.RespondFunctionInternalError(w)
		}
		return
	}

	h.logger.Info("POST /functions/v1/check-reminders - Done: tenant_id=%s, checked=%d, sent=%d, skipped=%d, failed=%d",
		actor.TenantID, result.Checked, result.Sent, result.Skipped, result.Failed)
	handlers.RespondFunctionSuccess(w, map[string]interface{}{
		"checked": result.Checked,
		"sent":    result.Sent,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	})
}
