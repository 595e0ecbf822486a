package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	directory       DirectoryRepository
	notifier        StaffNotifier
	txManager       TransactionManager
	clock           Clock
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	directory DirectoryRepository,
	notifier StaffNotifier,
	txManager TransactionManager,
	clock Clock,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		directory:       directory,
		notifier:        notifier,
		txManager:       txManager,
		clock:           clock,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка пересечений и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateBooking: user=%s, tenant=%s, barber=%s, service=%s, date=%s, time=%s",
		req.Actor.UserID, req.Actor.TenantID, req.BarberID, req.ServiceID, date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Барбершоп актора
	if !req.Actor.HasTenant() {
		uc.logger.Warn("CreateBooking: user=%s has no tenant", req.Actor.UserID)
		return nil, ErrTenantNotFound
	}
	if !req.Actor.Can(domain.CapBook) {
		return nil, ErrAccessDenied
	}

	// 3. Время записи не в прошлом
	if err := validateNotPast(date, req.StartTime, uc.clock.Today(), types.TimeString(uc.clock.CurrentTimeShort())); err != nil {
		uc.logger.Warn("CreateBooking: %s %s is in the past", date, req.StartTime)
		return nil, err
	}

	// 4. Клиент, мастер и услуга из того же барбершопа
	customerID, err := uc.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	barber, err := uc.directory.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if barber.TenantID != req.Actor.TenantID || !barber.IsActive {
		uc.logger.Warn("CreateBooking: barber id=%s is not bookable in tenant=%s", req.BarberID, req.Actor.TenantID)
		return nil, ErrBarberNotFound
	}

	service, err := uc.directory.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.TenantID != req.Actor.TenantID || !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%s is not bookable in tenant=%s", req.ServiceID, req.Actor.TenantID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Appointment

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Записи мастера на дату с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.ListByBarberAndDate(txCtx, barber.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		blocked, err := uc.scheduleRepo.ListBlockedTimes(txCtx, barber.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked times: %v", err)
			return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}

		// 5.2. Пересечение полуоткрытых интервалов
		start := req.StartTime.Minutes()
		if domain.HasConflict(start, start+service.Duration(), existing, blocked, uuid.Nil) {
			uc.logger.Warn("CreateBooking: slot %s %s is taken for barber=%s", date, req.StartTime, barber.ID)
			return ErrSlotNotAvailable
		}

		// 5.3. Вставка, длительность фиксируется на момент записи
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			TenantID:        req.Actor.TenantID,
			CustomerID:      customerID,
			BarberID:        barber.ID,
			ServiceID:       service.ID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
			ServiceDuration: service.Duration(),
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot taken concurrently for barber=%s: %v", barber.ID, err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.BookingConflict()
		}
		return nil, err
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created appointment id=%s", result.ID)

	// 6. Уведомление сотрудникам, ошибки не влияют на запись
	notified := uc.notifyStaff(ctx, result, barber)

	return &Response{Appointment: result, Notified: notified}, nil
}

// resolveCustomer клиент записывает себя, сотрудник указывает клиента явно
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (uuid.UUID, error) {
	if !req.Actor.IsStaff() {
		if req.Actor.CustomerID == nil {
			uc.logger.Warn("CreateBooking: user=%s has no customer profile", req.Actor.UserID)
			return uuid.Nil, ErrCustomerNotFound
		}
		if req.CustomerID != nil && *req.CustomerID != *req.Actor.CustomerID {
			uc.logger.Warn("CreateBooking: user=%s cannot book for customer=%s", req.Actor.UserID, *req.CustomerID)
			return uuid.Nil, ErrAccessDenied
		}
		return *req.Actor.CustomerID, nil
	}

	if req.CustomerID == nil {
		return uuid.Nil, fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}

	customer, err := uc.directory.GetCustomer(ctx, *req.CustomerID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrCustomerNotFound) {
			return uuid.Nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%s: %v", *req.CustomerID, err)
		return uuid.Nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	if customer.TenantID != req.Actor.TenantID {
		return uuid.Nil, ErrCustomerNotFound
	}
	return customer.ID, nil
}

func (uc *UseCase) notifyStaff(ctx context.Context, appt *domain.Appointment, barber *domain.Barber) int {
	msg := notifications.Message{
		Title: "Novo agendamento",
		Message: fmt.Sprintf("Novo agendamento com %s em %s às %s",
			barber.Name, appt.Date.Format("02/01/2006"), appt.StartTime),
		Type:      domain.NotificationBooking,
		RelatedID: &appt.ID,
	}

	result, err := uc.notifier.NotifyStaff(ctx, appt.TenantID, msg)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to notify staff about appointment id=%s: %v", appt.ID, err)
		return 0
	}
	if result.Failed > 0 {
		uc.logger.Warn("CreateBooking: %d of %d staff notifications failed for appointment id=%s",
			result.Failed, result.Recipients, appt.ID)
	}
	return result.Sent
}
