package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
)

// UseCase use case изменения записи: перенос, смена статуса, заметки
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	loyalty         LoyaltyCreditor
	notifier        StaffNotifier
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	loyalty LoyaltyCreditor,
	notifier StaffNotifier,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		loyalty:         loyalty,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute применяет изменения к записи в одной сериализуемой транзакции
// Перенос заново проверяет пересечения, переход в completed начисляет балл
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%s, appointment=%s", req.Actor.UserID, req.AppointmentID)

	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	if !req.Actor.HasTenant() {
		uc.logger.Warn("UpdateBooking: user=%s has no tenant", req.Actor.UserID)
		return nil, ErrTenantNotFound
	}

	var (
		result   *domain.Appointment
		previous domain.AppointmentStatus
		credited bool
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Запись с блокировкой строки
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateBooking: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if err := checkAccess(req.Actor, appt, status); err != nil {
			uc.logger.Warn("UpdateBooking: user=%s cannot update appointment id=%s: %v", req.Actor.UserID, appt.ID, err)
			return err
		}

		previous = appt.Status

		// 2. Применяем изменения
		if req.Date != nil {
			appt.Date = *req.Date
		}
		if req.StartTime != nil {
			appt.StartTime = *req.StartTime
		}
		if req.Notes != nil {
			notes := strings.TrimSpace(*req.Notes)
			appt.Notes = &notes
		}
		if status != nil {
			appt.Status = *status
		}

		// 3. Перенос: пересечения без учёта самой записи
		if req.reschedules() && !appt.IsCancelled() {
			if err := uc.checkConflict(txCtx, appt); err != nil {
				return err
			}
		}

		updated, err := uc.appointmentRepo.Update(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("UpdateBooking: slot taken concurrently for appointment id=%s: %v", appt.ID, err)
				return ErrSlotNotAvailable
			}
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update appointment id=%s: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		// 4. Балл за завершённую запись в той же транзакции
		if updated.Status == domain.StatusCompleted && previous != domain.StatusCompleted {
			if _, err := uc.loyalty.CreditCompletedService(txCtx, updated.TenantID, updated.CustomerID, updated.ID); err != nil {
				uc.logger.Error("UpdateBooking: failed to credit loyalty for appointment id=%s: %v", updated.ID, err)
				return fmt.Errorf("%w: failed to credit loyalty: %v", ErrInternal, err)
			}
			credited = true
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.BookingConflict()
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: appointment id=%s updated, status %s -> %s", result.ID, previous, result.Status)

	resp := &Response{Appointment: result, Credited: credited}

	// 5. Изменения клиента уведомляют сотрудников, изменения сотрудников никого
	if !req.Actor.IsStaff() {
		resp.Notified = uc.notifyStaff(ctx, result, req.reschedules() || req.Notes != nil)
	}

	return resp, nil
}

func (uc *UseCase) checkConflict(ctx context.Context, appt *domain.Appointment) error {
	existing, err := uc.appointmentRepo.ListByBarberAndDate(ctx, appt.BarberID, appt.Date)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get appointments: %v", err)
		return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocked, err := uc.scheduleRepo.ListBlockedTimes(ctx, appt.BarberID, appt.Date)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get blocked times: %v", err)
		return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	start := appt.StartTime.Minutes()
	if domain.HasConflict(start, start+appt.Duration(), existing, blocked, appt.ID) {
		uc.logger.Warn("UpdateBooking: slot %s %s is taken for barber=%s",
			appt.Date.Format(domain.DateFormat), appt.StartTime, appt.BarberID)
		return ErrSlotNotAvailable
	}
	return nil
}

func (uc *UseCase) notifyStaff(ctx context.Context, appt *domain.Appointment, edited bool) int {
	date := appt.Date.Format("02/01/2006")

	var msg notifications.Message
	switch {
	case appt.IsCancelled():
		msg = notifications.Message{
			Title:   "Agendamento cancelado",
			Message: fmt.Sprintf("O cliente cancelou o agendamento de %s às %s", date, appt.StartTime),
			Type:    domain.NotificationCancellation,
		}
	case edited:
		msg = notifications.Message{
			Title:   "Agendamento alterado",
			Message: fmt.Sprintf("O cliente alterou o agendamento para %s às %s", date, appt.StartTime),
			Type:    domain.NotificationReschedule,
		}
	default:
		return 0
	}
	msg.RelatedID = &appt.ID

	result, err := uc.notifier.NotifyStaff(ctx, appt.TenantID, msg)
	if err != nil {
		uc.logger.Warn("UpdateBooking: failed to notify staff about appointment id=%s: %v", appt.ID, err)
		return 0
	}
	return result.Sent
}
