package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/schedule"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Service управление часами работы и блокировками времени мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	directory    DirectoryRepository
	logger       Logger
}

func NewService(scheduleRepo ScheduleRepository, directory DirectoryRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		directory:    directory,
		logger:       logger,
	}
}

// ListWorkingHours часы работы барбершопа актора, доступно любому участнику
func (s *Service) ListWorkingHours(ctx context.Context, actor domain.Actor) (*models.WorkingHoursListResponse, error) {
	if !actor.HasTenant() {
		return nil, ErrTenantNotFound
	}

	items, err := s.scheduleRepo.ListWorkingHours(ctx, actor.TenantID)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error for tenant=%s: %v", actor.TenantID, err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}

	resp := &models.WorkingHoursListResponse{WorkingHours: make([]models.WorkingHoursResponse, 0, len(items))}
	for _, wh := range items {
		resp.WorkingHours = append(resp.WorkingHours, models.FromDomainWorkingHours(wh))
	}
	return resp, nil
}

// UpsertWorkingHours задаёт часы работы на день недели. Только владелец
func (s *Service) UpsertWorkingHours(ctx context.Context, actor domain.Actor, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpsertWorkingHours: user=%s, tenant=%s, day=%d, open=%t",
		actor.UserID, actor.TenantID, req.DayOfWeek, req.IsOpen)

	if !actor.Can(domain.CapManageStaff) {
		s.logger.Warn("UpsertWorkingHours: access denied for user=%s", actor.UserID)
		return nil, ErrAccessDenied
	}
	if !actor.HasTenant() {
		return nil, ErrTenantNotFound
	}

	wh, err := buildWorkingHours(actor.TenantID, req)
	if err != nil {
		s.logger.Warn("UpsertWorkingHours: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.scheduleRepo.UpsertWorkingHours(ctx, wh)
	if err != nil {
		s.logger.Error("UpsertWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpsertWorkingHours - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainWorkingHours(saved)
	return &resp, nil
}

// ListBlockedTimes блокировки мастера на дату
func (s *Service) ListBlockedTimes(ctx context.Context, actor domain.Actor, barberID uuid.UUID, date time.Time) ([]*models.BlockedTimeResponse, error) {
	if !actor.IsStaff() {
		return nil, ErrAccessDenied
	}
	if _, err := s.tenantBarber(ctx, actor.TenantID, barberID); err != nil {
		return nil, err
	}

	items, err := s.scheduleRepo.ListBlockedTimes(ctx, barberID, date)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListBlockedTimes - repository error: %v", ErrInternal, err)
	}

	resp := make([]*models.BlockedTimeResponse, 0, len(items))
	for _, bt := range items {
		resp = append(resp, models.FromDomainBlockedTime(bt))
	}
	return resp, nil
}

// CreateBlockedTime блокирует окно мастера
// Мастер блокирует только своё время, владелец время любого мастера
func (s *Service) CreateBlockedTime(ctx context.Context, actor domain.Actor, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: user=%s, barber=%s, date=%s, %s-%s",
		actor.UserID, req.BarberID, req.Date, req.StartTime, req.EndTime)

	if err := checkBarberAccess(actor, req.BarberID); err != nil {
		s.logger.Warn("CreateBlockedTime: access denied for user=%s to barber=%s", actor.UserID, req.BarberID)
		return nil, err
	}

	bt, err := buildBlockedTime(req)
	if err != nil {
		s.logger.Warn("CreateBlockedTime: validation failed: %v", err)
		return nil, err
	}

	barber, err := s.tenantBarber(ctx, actor.TenantID, req.BarberID)
	if err != nil {
		return nil, err
	}
	bt.TenantID = barber.TenantID

	created, err := s.scheduleRepo.CreateBlockedTime(ctx, bt)
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: created blocked time id=%s", created.ID)
	return models.FromDomainBlockedTime(created), nil
}

func (s *Service) DeleteBlockedTime(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	s.logger.Info("DeleteBlockedTime: user=%s, id=%s", actor.UserID, id)

	bt, err := s.scheduleRepo.GetBlockedTime(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedTimeNotFound) {
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: GetBlockedTime - repository error: %v", ErrInternal, err)
	}
	if bt.TenantID != actor.TenantID {
		return ErrBlockedTimeNotFound
	}
	if err := checkBarberAccess(actor, bt.BarberID); err != nil {
		s.logger.Warn("DeleteBlockedTime: access denied for user=%s to id=%s", actor.UserID, id)
		return err
	}

	if err := s.scheduleRepo.DeleteBlockedTime(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedTimeNotFound) {
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedTime - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) tenantBarber(ctx context.Context, tenantID, barberID uuid.UUID) (*domain.Barber, error) {
	barber, err := s.directory.GetBarber(ctx, barberID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("Schedule: failed to get barber id=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if barber.TenantID != tenantID {
		return nil, ErrBarberNotFound
	}
	return barber, nil
}

func checkBarberAccess(actor domain.Actor, barberID uuid.UUID) error {
	if actor.Can(domain.CapManageStaff) {
		return nil
	}
	if actor.IsStaff() && actor.BarberID != nil && *actor.BarberID == barberID {
		return nil
	}
	return ErrAccessDenied
}

func buildWorkingHours(tenantID uuid.UUID, req *models.UpsertWorkingHoursRequest) (*domain.WorkingHours, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	wh := &domain.WorkingHours{TenantID: tenantID, DayOfWeek: req.DayOfWeek, IsOpen: req.IsOpen}
	if !req.IsOpen {
		return wh, nil
	}

	start, end, err := parseRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	wh.StartTime, wh.EndTime = start, end
	return wh, nil
}

func buildBlockedTime(req *models.CreateBlockedTimeRequest) (*domain.BlockedTime, error) {
	if req.BarberID == uuid.Nil {
		return nil, fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	start, end, err := parseRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if len(reason) > domain.MaxBlockReasonLength {
			return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
		}
		req.Reason = &reason
	}

	return &domain.BlockedTime{
		BarberID:  req.BarberID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
	}, nil
}

func parseRange(from, to string) (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(from)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(to)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return start, end, nil
}
