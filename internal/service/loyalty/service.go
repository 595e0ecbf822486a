package loyalty

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	loyaltyRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/loyalty"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

const completionDescription = "Serviço concluído"

// Service журнал баллов лояльности и купоны
type Service struct {
	loyalty      LoyaltyRepository
	directory    DirectoryRepository
	appointments AppointmentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
	newCode      func() string
}

func NewService(
	loyalty LoyaltyRepository,
	directory DirectoryRepository,
	appointments AppointmentRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		loyalty:      loyalty,
		directory:    directory,
		appointments: appointments,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		newCode:      newCouponCode,
	}
}

func (s *Service) Add(ctx context.Context, actor domain.Actor, customerID uuid.UUID, points int, description *string) (*LedgerEntry, error) {
	return s.Adjust(ctx, actor, AdjustRequest{CustomerID: customerID, Action: domain.LoyaltyAdd, Points: points, Description: description})
}

// Remove списывает баллы, баланс не опускается ниже нуля
func (s *Service) Remove(ctx context.Context, actor domain.Actor, customerID uuid.UUID, points int, description *string) (*LedgerEntry, error) {
	return s.Adjust(ctx, actor, AdjustRequest{CustomerID: customerID, Action: domain.LoyaltyRemove, Points: points, Description: description})
}

func (s *Service) Set(ctx context.Context, actor domain.Actor, customerID uuid.UUID, points int, description *string) (*LedgerEntry, error) {
	return s.Adjust(ctx, actor, AdjustRequest{CustomerID: customerID, Action: domain.LoyaltySet, Points: points, Description: description})
}

// Adjust ручная операция с баллами. Обновление баланса и запись в журнал в одной транзакции
func (s *Service) Adjust(ctx context.Context, actor domain.Actor, req AdjustRequest) (*LedgerEntry, error) {
	s.logger.Info("AdjustPoints: user=%s, customer=%s, action=%s, points=%d",
		actor.UserID, req.CustomerID, req.Action, req.Points)

	if !actor.IsStaff() {
		s.logger.Warn("AdjustPoints: access denied for user=%s", actor.UserID)
		return nil, ErrAccessDenied
	}
	if err := validateAdjust(req); err != nil {
		s.logger.Warn("AdjustPoints: validation failed: %v", err)
		return nil, err
	}

	customer, err := s.tenantCustomer(ctx, actor.TenantID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	var entry *LedgerEntry
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.loyalty.GetPoints(txCtx, customer.ID)
		if err != nil {
			return s.wrapRepoError("AdjustPoints", err)
		}

		next := applyAction(req.Action, current, req.Points)
		entry, err = s.writeLedger(txCtx, customer, current, next, req.Action, req.Description)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AdjustPoints: customer=%s balance %d (%+d)", customer.ID, entry.PointsBalance, entry.PointsChange)
	return entry, nil
}

// CreditCompletedService начисляет балл за завершённую запись
// Вызывается внутри транзакции смены статуса, вложенный Do переиспользует её
func (s *Service) CreditCompletedService(ctx context.Context, tenantID, customerID, appointmentID uuid.UUID) (*LedgerEntry, error) {
	customer := &domain.Customer{ID: customerID, TenantID: tenantID}
	description := fmt.Sprintf("%s (%s)", completionDescription, appointmentID)

	var entry *LedgerEntry
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.loyalty.GetPoints(txCtx, customerID)
		if err != nil {
			return s.wrapRepoError("CreditCompletedService", err)
		}

		next := clampPoints(current + domain.CompletionCredit)
		entry, err = s.writeLedger(txCtx, customer, current, next, domain.LoyaltyServiceCompleted, &description)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CreditCompletedService: customer=%s, appointment=%s, balance=%d",
		customerID, appointmentID, entry.PointsBalance)
	return entry, nil
}

// MintCoupon обменивает 10 баллов на купон
// Без customerID купон выпускается самому клиенту-актору
func (s *Service) MintCoupon(ctx context.Context, actor domain.Actor, customerID *uuid.UUID) (*MintedCoupon, error) {
	s.logger.Info("MintCoupon: user=%s, tenant=%s", actor.UserID, actor.TenantID)

	targetID, err := s.mintTarget(actor, customerID)
	if err != nil {
		return nil, err
	}

	customer, err := s.tenantCustomer(ctx, actor.TenantID, targetID)
	if err != nil {
		return nil, err
	}

	var result *MintedCoupon
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.loyalty.GetPoints(txCtx, customer.ID)
		if err != nil {
			return s.wrapRepoError("MintCoupon", err)
		}
		if current < domain.CouponThreshold {
			s.logger.Warn("MintCoupon: customer=%s has %d points, need %d", customer.ID, current, domain.CouponThreshold)
			return fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, current, domain.CouponThreshold)
		}

		now := s.timeProvider.Now()
		coupon, err := s.loyalty.CreateCoupon(txCtx, &domain.Coupon{
			TenantID:   customer.TenantID,
			CustomerID: customer.ID,
			Code:       s.newCode(),
			ExpiresAt:  ptr.Ptr(now.Add(domain.CouponValidity)),
		})
		if err != nil {
			return s.wrapRepoError("MintCoupon", err)
		}

		description := fmt.Sprintf("Cupom %s gerado", coupon.Code)
		entry, err := s.writeLedger(txCtx, customer, current, current-domain.CouponThreshold,
			domain.LoyaltyCouponGenerated, &description)
		if err != nil {
			return err
		}

		result = &MintedCoupon{Coupon: coupon, RemainingPoints: entry.PointsBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CouponMinted()
	s.logger.Info("MintCoupon: coupon=%s minted for customer=%s, remaining=%d",
		result.Coupon.Code, customer.ID, result.RemainingPoints)
	return result, nil
}

// RedeemCoupon погашает купон. Проверки: существует, принадлежит клиенту, не погашен, не просрочен
func (s *Service) RedeemCoupon(ctx context.Context, actor domain.Actor, code string, appointmentID *uuid.UUID) (*RedeemedCoupon, error) {
	code = normalizeCode(code)
	s.logger.Info("RedeemCoupon: user=%s, code=%s", actor.UserID, code)

	if code == "" || !strings.HasPrefix(code, domain.CouponPrefix) {
		s.logger.Warn("RedeemCoupon: malformed code %q", code)
		return nil, fmt.Errorf("%w: malformed coupon code", ErrInvalidInput)
	}

	var result *RedeemedCoupon
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		coupon, err := s.loyalty.GetCouponByCode(txCtx, code)
		if err != nil {
			return s.wrapRepoError("RedeemCoupon", err)
		}
		if coupon.TenantID != actor.TenantID {
			s.logger.Warn("RedeemCoupon: coupon %s is outside tenant=%s", code, actor.TenantID)
			return ErrCouponNotFound
		}
		if !actor.IsStaff() && !actor.OwnsCustomer(coupon.CustomerID) {
			s.logger.Warn("RedeemCoupon: user=%s does not own coupon %s", actor.UserID, code)
			return ErrCouponNotOwned
		}
		if coupon.IsRedeemed {
			return ErrCouponAlreadyRedeemed
		}

		now := s.timeProvider.Now()
		if coupon.IsExpired(now) {
			s.logger.Warn("RedeemCoupon: coupon %s expired at %s", code, *coupon.ExpiresAt)
			return ErrCouponExpired
		}

		if appointmentID != nil {
			if err := s.checkAppointment(txCtx, coupon, *appointmentID); err != nil {
				return err
			}
		}

		if err := s.loyalty.MarkCouponRedeemed(txCtx, coupon.ID, appointmentID, now); err != nil {
			return s.wrapRepoError("RedeemCoupon", err)
		}

		result = &RedeemedCoupon{
			Code:          coupon.Code,
			CustomerID:    coupon.CustomerID,
			AppointmentID: appointmentID,
			RedeemedAt:    now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CouponRedeemed()
	s.logger.Info("RedeemCoupon: coupon=%s redeemed by user=%s", code, actor.UserID)
	return result, nil
}

func (s *Service) mintTarget(actor domain.Actor, customerID *uuid.UUID) (uuid.UUID, error) {
	if customerID == nil {
		if actor.CustomerID == nil {
			s.logger.Warn("MintCoupon: user=%s has no customer profile", actor.UserID)
			return uuid.Nil, fmt.Errorf("%w: customerId is required", ErrInvalidInput)
		}
		return *actor.CustomerID, nil
	}

	if !actor.OwnsCustomer(*customerID) && !actor.IsStaff() {
		s.logger.Warn("MintCoupon: user=%s cannot mint for customer=%s", actor.UserID, *customerID)
		return uuid.Nil, ErrAccessDenied
	}
	return *customerID, nil
}

func (s *Service) checkAppointment(ctx context.Context, coupon *domain.Coupon, appointmentID uuid.UUID) error {
	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("RedeemCoupon: failed to get appointment id=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if appt.TenantID != coupon.TenantID {
		return ErrAppointmentNotFound
	}
	if appt.CustomerID != coupon.CustomerID {
		s.logger.Warn("RedeemCoupon: appointment=%s belongs to another customer", appointmentID)
		return fmt.Errorf("%w: appointment belongs to another customer", ErrInvalidInput)
	}
	return nil
}

// tenantCustomer клиент из барбершопа актора, чужой клиент неотличим от отсутствующего
func (s *Service) tenantCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.Customer, error) {
	customer, err := s.directory.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrCustomerNotFound) {
			s.logger.Warn("Loyalty: customer id=%s not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Loyalty: failed to get customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	if customer.TenantID != tenantID {
		s.logger.Warn("Loyalty: customer id=%s is outside tenant=%s", customerID, tenantID)
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *Service) writeLedger(
	ctx context.Context,
	customer *domain.Customer,
	current, next int,
	action domain.LoyaltyAction,
	description *string,
) (*LedgerEntry, error) {
	if err := s.loyalty.SetPoints(ctx, customer.ID, next); err != nil {
		return nil, s.wrapRepoError("WriteLedger", err)
	}

	_, err := s.loyalty.InsertHistory(ctx, &domain.LoyaltyHistory{
		TenantID:      customer.TenantID,
		CustomerID:    customer.ID,
		PointsChange:  next - current,
		PointsBalance: next,
		Action:        action,
		Description:   description,
	})
	if err != nil {
		return nil, s.wrapRepoError("WriteLedger", err)
	}

	return &LedgerEntry{
		CustomerID:    customer.ID,
		PointsChange:  next - current,
		PointsBalance: next,
		Action:        action,
	}, nil
}

func (s *Service) wrapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, loyaltyRepo.ErrCustomerNotFound):
		return ErrCustomerNotFound
	case errors.Is(err, loyaltyRepo.ErrCouponNotFound):
		return ErrCouponNotFound
	case errors.Is(err, loyaltyRepo.ErrCouponAlreadyRedeemed):
		return ErrCouponAlreadyRedeemed
	}
	s.logger.Error("%s: repository failure: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func validateAdjust(req AdjustRequest) error {
	if req.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	if !req.Action.IsManual() {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}
	if req.Points < 0 || req.Points > domain.MaxLoyaltyPoints {
		return fmt.Errorf("%w: points must be between 0 and %d", ErrInvalidInput, domain.MaxLoyaltyPoints)
	}
	if req.Action != domain.LoyaltySet && req.Points == 0 {
		return fmt.Errorf("%w: points must be positive", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	return nil
}

func applyAction(action domain.LoyaltyAction, current, points int) int {
	switch action {
	case domain.LoyaltyAdd:
		return clampPoints(current + points)
	case domain.LoyaltyRemove:
		return clampPoints(current - points)
	default:
		return clampPoints(points)
	}
}

func clampPoints(p int) int {
	if p < 0 {
		return 0
	}
	if p > domain.MaxLoyaltyPoints {
		return domain.MaxLoyaltyPoints
	}
	return p
}
