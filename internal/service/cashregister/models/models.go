package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// CreateTransactionRequest новая запись кассы
type CreateTransactionRequest struct {
	Type          string          `json:"type"` // income | expense
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   *string         `json:"description,omitempty"`
	Date          string          `json:"transactionDate"` // "2025-10-15"
	AppointmentID *uuid.UUID      `json:"appointmentId,omitempty"`
}

// TransactionResponse запись кассы
type TransactionResponse struct {
	ID            uuid.UUID       `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   *string         `json:"description,omitempty"`
	Date          string          `json:"transactionDate"`
	AppointmentID *uuid.UUID      `json:"appointmentId,omitempty"`
	CreatedBy     uuid.UUID       `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionListResponse записи за период с итогами
type TransactionListResponse struct {
	From         string                `json:"from"`
	To           string                `json:"to"`
	Transactions []TransactionResponse `json:"transactions"`
	Income       decimal.Decimal       `json:"totalIncome"`
	Expense      decimal.Decimal       `json:"totalExpense"`
	Balance      decimal.Decimal       `json:"balance"`
}

func FromDomainTransaction(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Category:      t.Category,
		Description:   t.Description,
		Date:          t.Date.Format(domain.DateFormat),
		AppointmentID: t.AppointmentID,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
	}
}
