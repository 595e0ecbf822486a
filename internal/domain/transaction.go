package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType приход или расход кассы
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

var ErrInvalidTransactionType = errors.New("invalid transaction type")

func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionIncome, TransactionExpense:
		return t, nil
	}
	return "", ErrInvalidTransactionType
}

// Transaction запись кассы
type Transaction struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Category      string
	Description   *string
	Date          time.Time
	AppointmentID *uuid.UUID
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
}

// TransactionSummary итоги кассы за период
type TransactionSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Summarize считает итоги по списку записей
func Summarize(txs []Transaction) TransactionSummary {
	s := TransactionSummary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range txs {
		switch t.Type {
		case TransactionIncome:
			s.Income = s.Income.Add(t.Amount)
		case TransactionExpense:
			s.Expense = s.Expense.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}
