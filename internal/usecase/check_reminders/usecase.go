package check_reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

const (
	reminderTitle   = "Lembrete de agendamento"
	reminderMessage = "Seu agendamento é hoje às %s. Não se atrase!"
)

// UseCase рассылка напоминаний о записях, до которых осталось около часа
type UseCase struct {
	appointmentRepo  AppointmentRepository
	notificationRepo NotificationRepository
	notifier         CustomerNotifier
	clock            Clock
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	notificationRepo NotificationRepository,
	notifier CustomerNotifier,
	clock Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		clock:            clock,
		logger:           logger,
	}
}

// ExecuteAsActor проверка по барбершопу актора, запуск вручную владельцем
func (uc *UseCase) ExecuteAsActor(ctx context.Context, actor domain.Actor) (*Response, error) {
	if !actor.HasTenant() {
		return nil, ErrTenantNotFound
	}
	if !actor.Can(domain.CapManageStaff) {
		uc.logger.Warn("CheckReminders: user=%s is not allowed to trigger reminders", actor.UserID)
		return nil, ErrAccessDenied
	}
	tenantID := actor.TenantID
	return uc.Execute(ctx, &Request{TenantID: &tenantID})
}

// Execute находит активные записи с началом через 0.9-1.1 часа
// и отправляет по каждой не более одного напоминания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.clock.Now()
	from := now.Add(domain.ReminderWindowFrom)
	to := now.Add(domain.ReminderWindowTo)

	uc.logger.Info("CheckReminders: window %s - %s", from.Format(time.RFC3339), to.Format(time.RFC3339))

	appointments, err := uc.appointmentRepo.ListActiveInDateRange(ctx, req.TenantID, startOfDay(from), startOfDay(to))
	if err != nil {
		uc.logger.Error("CheckReminders: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	resp := &Response{}
	for _, appt := range appointments {
		at, err := uc.clock.At(appt.Date, appt.StartTime.String())
		if err != nil {
			uc.logger.Warn("CheckReminders: appointment id=%s has bad time %q: %v", appt.ID, appt.StartTime, err)
			continue
		}
		if at.Before(from) || at.After(to) {
			continue
		}

		resp.Checked++
		switch uc.remind(ctx, appt) {
		case notifications.OutcomeSent:
			resp.Sent++
		case notifications.OutcomeSkipped:
			resp.Skipped++
		default:
			resp.Failed++
		}
	}

	uc.logger.Info("CheckReminders: checked=%d, sent=%d, skipped=%d, failed=%d",
		resp.Checked, resp.Sent, resp.Skipped, resp.Failed)
	return resp, nil
}

func (uc *UseCase) remind(ctx context.Context, appt *domain.Appointment) notifications.Outcome {
	exists, err := uc.notificationRepo.ExistsByTypeAndRelated(ctx, domain.NotificationReminder, appt.ID)
	if err != nil {
		uc.logger.Error("CheckReminders: failed to check reminder for appointment id=%s: %v", appt.ID, err)
		return notifications.OutcomeFailed
	}
	if exists {
		return notifications.OutcomeSkipped
	}

	outcome, err := uc.notifier.SendToCustomer(ctx, appt.CustomerID, notifications.Message{
		Title:     reminderTitle,
		Message:   fmt.Sprintf(reminderMessage, appt.StartTime),
		Type:      domain.NotificationReminder,
		RelatedID: &appt.ID,
	})
	if err != nil {
		// параллельный запуск успел вставить напоминание
		if errors.Is(err, notificationRepo.ErrDuplicate) {
			return notifications.OutcomeSkipped
		}
		uc.logger.Warn("CheckReminders: failed to remind about appointment id=%s: %v", appt.ID, err)
		return notifications.OutcomeFailed
	}
	return outcome
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
