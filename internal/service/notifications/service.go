package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
)

// Service доставка уведомлений с учётом настроек получателей
type Service struct {
	notifications NotificationRepository
	directory     DirectoryRepository
	metrics       MetricsRecorder
	logger        Logger
}

func NewService(
	notifications NotificationRepository,
	directory DirectoryRepository,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		notifications: notifications,
		directory:     directory,
		metrics:       metrics,
		logger:        logger,
	}
}

// Send доставляет уведомление одному аккаунту
// Выключенный флаг клиента запрещает всё, флаг категории запрещает свою категорию
func (s *Service) Send(ctx context.Context, userID uuid.UUID, msg Message) (Outcome, error) {
	if err := msg.validate(); err != nil {
		return OutcomeFailed, err
	}

	outcome, err := s.deliver(ctx, userID, msg)
	s.metrics.NotificationOutcome(string(msg.Type), string(outcome))
	return outcome, err
}

// SendAsActor отправка от имени пользователя
// Себе может отправить любой, другому аккаунту своего барбершопа только сотрудник
func (s *Service) SendAsActor(ctx context.Context, actor domain.Actor, userID uuid.UUID, msg Message) (Outcome, error) {
	if userID != actor.UserID {
		if !actor.IsStaff() {
			s.logger.Warn("SendAsActor: user=%s is not allowed to notify user=%s", actor.UserID, userID)
			return OutcomeFailed, ErrAccessDenied
		}
		if !actor.HasTenant() {
			return OutcomeFailed, ErrTenantNotFound
		}

		member, err := s.directory.IsTenantMember(ctx, actor.TenantID, userID)
		if err != nil {
			s.logger.Error("SendAsActor: membership check failed for user=%s: %v", userID, err)
			return OutcomeFailed, fmt.Errorf("%w: membership check: %v", ErrInternal, err)
		}
		if !member {
			s.logger.Warn("SendAsActor: user=%s is not a member of tenant=%s", userID, actor.TenantID)
			return OutcomeFailed, ErrAccessDenied
		}
	}

	return s.Send(ctx, userID, msg)
}

// SendToCustomer доставляет уведомление клиенту
// Клиент без аккаунта недостижим, это не ошибка
func (s *Service) SendToCustomer(ctx context.Context, customerID uuid.UUID, msg Message) (Outcome, error) {
	customer, err := s.directory.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrCustomerNotFound) {
			return OutcomeFailed, ErrCustomerNotFound
		}
		s.logger.Error("SendToCustomer: failed to get customer id=%s: %v", customerID, err)
		return OutcomeFailed, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	if !customer.HasAccount() {
		s.logger.Info("SendToCustomer: customer id=%s has no account, skipping", customerID)
		s.metrics.NotificationOutcome(string(msg.Type), string(OutcomeSkipped))
		return OutcomeSkipped, nil
	}

	return s.Send(ctx, *customer.UserID, msg)
}

// Broadcast рассылка всем клиентам барбершопа с аккаунтом и ролью customer
// Ошибка по одному получателю считается и не прерывает рассылку
func (s *Service) Broadcast(ctx context.Context, actor domain.Actor, msg Message) (*FanOutResult, error) {
	s.logger.Info("Broadcast: user=%s, tenant=%s, type=%s", actor.UserID, actor.TenantID, msg.Type)

	if !actor.Can(domain.CapManageStaff) {
		s.logger.Warn("Broadcast: access denied for user=%s", actor.UserID)
		return nil, ErrAccessDenied
	}
	if !actor.HasTenant() {
		return nil, ErrTenantNotFound
	}
	if err := msg.validate(); err != nil {
		return nil, err
	}

	recipients, err := s.directory.ListBroadcastCustomerUserIDs(ctx, actor.TenantID)
	if err != nil {
		s.logger.Error("Broadcast: failed to list recipients for tenant=%s: %v", actor.TenantID, err)
		return nil, fmt.Errorf("%w: failed to list recipients: %v", ErrInternal, err)
	}

	result := s.fanOut(ctx, recipients, msg)
	s.logger.Info("Broadcast: tenant=%s, recipients=%d, sent=%d, skipped=%d, failed=%d",
		actor.TenantID, result.Recipients, result.Sent, result.Skipped, result.Failed)
	return result, nil
}

// NotifyStaff уведомляет сотрудников барбершопа
// Если ролей сотрудников нет, получателями становятся активные мастера
func (s *Service) NotifyStaff(ctx context.Context, tenantID uuid.UUID, msg Message) (*FanOutResult, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	recipients, err := s.directory.ListStaffUserIDs(ctx, tenantID)
	if err != nil {
		s.logger.Error("NotifyStaff: failed to list staff for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	if len(recipients) == 0 {
		recipients, err = s.directory.ListActiveBarberUserIDs(ctx, tenantID)
		if err != nil {
			s.logger.Error("NotifyStaff: failed to list barbers for tenant=%s: %v", tenantID, err)
			return nil, fmt.Errorf("%w: failed to list barbers: %v", ErrInternal, err)
		}
	}

	return s.fanOut(ctx, recipients, msg), nil
}

func (s *Service) fanOut(ctx context.Context, recipients []uuid.UUID, msg Message) *FanOutResult {
	result := &FanOutResult{Recipients: len(recipients)}
	for _, userID := range recipients {
		outcome, err := s.Send(ctx, userID, msg)
		if err != nil {
			s.logger.Warn("fanOut: delivery to user=%s failed: %v", userID, err)
		}
		result.add(outcome)
	}
	return result
}

func (s *Service) deliver(ctx context.Context, userID uuid.UUID, msg Message) (Outcome, error) {
	enabled, err := s.notifications.GetCustomerNotificationsFlag(ctx, userID)
	if err != nil {
		s.logger.Error("Send: failed to read notifications flag for user=%s: %v", userID, err)
		return OutcomeFailed, fmt.Errorf("%w: failed to read flag: %v", ErrInternal, err)
	}
	if !enabled {
		s.logger.Info("Send: notifications disabled for user=%s, skipping %s", userID, msg.Type)
		return OutcomeSkipped, nil
	}

	prefs, err := s.notifications.GetPreferences(ctx, userID)
	if err != nil {
		s.logger.Error("Send: failed to read preferences for user=%s: %v", userID, err)
		return OutcomeFailed, fmt.Errorf("%w: failed to read preferences: %v", ErrInternal, err)
	}
	if !prefs.Allows(msg.Type) {
		s.logger.Info("Send: category %s disabled for user=%s, skipping", msg.Type, userID)
		return OutcomeSkipped, nil
	}

	_, err = s.notifications.Create(ctx, &domain.Notification{
		UserID:    userID,
		Title:     msg.Title,
		Message:   msg.Message,
		Type:      msg.Type,
		RelatedID: msg.RelatedID,
	})
	if err != nil {
		s.logger.Error("Send: failed to store notification for user=%s: %v", userID, err)
		return OutcomeFailed, fmt.Errorf("%w: failed to store notification: %w", ErrInternal, err)
	}

	return OutcomeSent, nil
}
