package send_whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	whatsappRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/whatsapp"
	"github.com/m04kA/SMC-BarberService/internal/integrations/whatsapp"
)

// UseCase отправка WhatsApp сообщения с сохранёнными учётными данными пользователя
type UseCase struct {
	settingsRepo SettingsRepository
	membership   MembershipChecker
	sender       MessageSender
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	membership MembershipChecker,
	sender MessageSender,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		membership:   membership,
		sender:       sender,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute без настроенных учётных данных отправка не выполняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.To) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: to and message are required", ErrInvalidInput)
	}

	ownerID, err := uc.resolveOwner(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SendWhatsApp: user=%s sends with settings of user=%s", req.Actor.UserID, ownerID)

	settings, err := uc.settingsRepo.GetSettings(ctx, ownerID)
	if err != nil {
		if errors.Is(err, whatsappRepo.ErrSettingsNotFound) {
			uc.metrics.WhatsAppOutcome(outcomeNotConfigured)
			return nil, ErrNotConfigured
		}
		uc.logger.Error("SendWhatsApp: failed to get settings for user=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	sid, err := uc.sender.Send(ctx, settings, req.To, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, whatsapp.ErrNotConfigured):
			uc.metrics.WhatsAppOutcome(outcomeNotConfigured)
			return nil, ErrNotConfigured
		case errors.Is(err, whatsapp.ErrInvalidRecipient), errors.Is(err, whatsapp.ErrEmptyMessage):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.metrics.WhatsAppOutcome(outcomeFailed)
		uc.logger.Warn("SendWhatsApp: provider failed for user=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	uc.metrics.WhatsAppOutcome(outcomeSent)
	return &Response{MessageSID: sid}, nil
}

// resolveOwner чужими учётными данными может пользоваться только владелец барбершопа
// и только для пользователей своего барбершопа
func (uc *UseCase) resolveOwner(ctx context.Context, req *Request) (uuid.UUID, error) {
	if req.UserID == nil || *req.UserID == req.Actor.UserID {
		return req.Actor.UserID, nil
	}

	if !req.Actor.HasTenant() || !req.Actor.Can(domain.CapManageStaff) {
		uc.logger.Warn("SendWhatsApp: user=%s cannot send as user=%s", req.Actor.UserID, *req.UserID)
		return uuid.Nil, ErrAccessDenied
	}

	member, err := uc.membership.IsTenantMember(ctx, req.Actor.TenantID, *req.UserID)
	if err != nil {
		uc.logger.Error("SendWhatsApp: failed to check membership of user=%s: %v", *req.UserID, err)
		return uuid.Nil, fmt.Errorf("%w: failed to check membership: %v", ErrInternal, err)
	}
	if !member {
		return uuid.Nil, ErrAccessDenied
	}
	return *req.UserID, nil
}
