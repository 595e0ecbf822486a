package cashregister

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister/models"
)

// moneyPlaces знаков после запятой в денежных суммах
const moneyPlaces = 2

// Service касса барбершопа
type Service struct {
	transactionRepo TransactionRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

func NewService(transactionRepo TransactionRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create добавляет приход или расход. Только сотрудники
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateTransactionRequest) (*models.TransactionResponse, error) {
	s.logger.Info("CreateTransaction: user=%s, tenant=%s, type=%s, amount=%s",
		actor.UserID, actor.TenantID, req.Type, req.Amount.String())

	if err := checkStaff(actor); err != nil {
		s.logger.Warn("CreateTransaction: access denied for user=%s", actor.UserID)
		return nil, err
	}

	tx, err := buildTransaction(req)
	if err != nil {
		s.logger.Warn("CreateTransaction: validation failed: %v", err)
		return nil, err
	}
	tx.TenantID = actor.TenantID
	tx.CreatedBy = actor.UserID

	if tx.AppointmentID != nil {
		appt, err := s.appointmentRepo.GetByID(ctx, *tx.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return nil, ErrAppointmentNotFound
			}
			s.logger.Error("CreateTransaction: failed to get appointment id=%s: %v", *tx.AppointmentID, err)
			return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		if appt.TenantID != actor.TenantID {
			return nil, ErrAppointmentNotFound
		}
	}

	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		s.logger.Error("CreateTransaction: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainTransaction(created)
	return &resp, nil
}

// List записи кассы за период [from, to] с итогами
func (s *Service) List(ctx context.Context, actor domain.Actor, from, to time.Time) (*models.TransactionListResponse, error) {
	s.logger.Info("ListTransactions: user=%s, tenant=%s, period=%s to %s",
		actor.UserID, actor.TenantID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if err := checkStaff(actor); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	items, err := s.transactionRepo.ListByPeriod(ctx, actor.TenantID, from, to)
	if err != nil {
		s.logger.Error("ListTransactions: repository error for tenant=%s: %v", actor.TenantID, err)
		return nil, fmt.Errorf("%w: ListByPeriod - repository error: %v", ErrInternal, err)
	}

	summary := domain.Summarize(items)
	resp := &models.TransactionListResponse{
		From:         from.Format(domain.DateFormat),
		To:           to.Format(domain.DateFormat),
		Transactions: make([]models.TransactionResponse, 0, len(items)),
		Income:       summary.Income,
		Expense:      summary.Expense,
		Balance:      summary.Balance,
	}
	for i := range items {
		resp.Transactions = append(resp.Transactions, models.FromDomainTransaction(&items[i]))
	}
	return resp, nil
}

func checkStaff(actor domain.Actor) error {
	if !actor.IsStaff() {
		return ErrAccessDenied
	}
	if !actor.HasTenant() {
		return ErrTenantNotFound
	}
	return nil
}

func buildTransaction(req *models.CreateTransactionRequest) (*domain.Transaction, error) {
	txType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if !req.Amount.Equal(req.Amount.Round(moneyPlaces)) {
		return nil, fmt.Errorf("%w: amount has more than %d decimal places", ErrInvalidInput, moneyPlaces)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" || len(category) > domain.MaxCategoryLength {
		return nil, fmt.Errorf("%w: category is required and must be at most %d characters", ErrInvalidInput, domain.MaxCategoryLength)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transactionDate: %v", ErrInvalidInput, err)
	}

	return &domain.Transaction{
		Type:          txType,
		Amount:        req.Amount,
		Category:      category,
		Description:   req.Description,
		Date:          date,
		AppointmentID: req.AppointmentID,
	}, nil
}
