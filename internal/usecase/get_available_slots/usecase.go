package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/schedule"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для получения свободного времени мастера
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	directory       DirectoryRepository
	clock           Clock
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	directory DirectoryRepository,
	clock Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		directory:       directory,
		clock:           clock,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Отсутствие часов работы на день недели означает выходной, это не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: user=%s, barber=%s, date=%s", req.Actor.UserID, req.BarberID, date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Мастер должен быть из барбершопа актора
	barber, err := uc.directory.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if barber.TenantID != req.Actor.TenantID {
		uc.logger.Warn("GetAvailableSlots: barber id=%s is outside tenant=%s", req.BarberID, req.Actor.TenantID)
		return nil, ErrBarberNotFound
	}

	// 3. Длительность: услуга, затем явное значение, затем 30 минут
	duration, err := uc.resolveDuration(ctx, req, barber)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Date:            date,
		BarberID:        req.BarberID.String(),
		DurationMinutes: duration,
		Slots:           []string{},
	}

	// 4. Часы работы на день недели
	hours, err := uc.scheduleRepo.GetWorkingHours(ctx, barber.TenantID, int(req.Date.Weekday()))
	if err != nil && !errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}
	if hours.IsClosed() {
		uc.logger.Info("GetAvailableSlots: tenant=%s is closed on %s", barber.TenantID, date)
		return resp, nil
	}

	// 5. Занятость мастера
	appointments, err := uc.appointmentRepo.ListByBarberAndDate(ctx, barber.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocked, err := uc.scheduleRepo.ListBlockedTimes(ctx, barber.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	// 6. Расчёт сетки
	isToday := date == uc.clock.Today()
	now := types.TimeString(uc.clock.CurrentTimeShort())

	for _, slot := range CalculateSlots(hours, appointments, blocked, duration, isToday, now) {
		resp.Slots = append(resp.Slots, slot.String())
	}

	uc.logger.Info("GetAvailableSlots: %d slots for barber=%s, date=%s, duration=%d",
		len(resp.Slots), barber.ID, date, duration)
	return resp, nil
}

func (uc *UseCase) resolveDuration(ctx context.Context, req *Request, barber *domain.Barber) (int, error) {
	if req.ServiceID != nil {
		service, err := uc.directory.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, tenantRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%s not found", *req.ServiceID)
				return 0, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", *req.ServiceID, err)
			return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.TenantID != barber.TenantID {
			return 0, ErrServiceNotFound
		}
		return service.Duration(), nil
	}

	if req.DurationMinutes != nil {
		return *req.DurationMinutes, nil
	}
	return domain.DefaultServiceDuration, nil
}
