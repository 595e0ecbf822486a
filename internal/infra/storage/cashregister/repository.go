package cashregister

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// Repository записи кассы
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись кассы
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("transactions").
		Columns(
			"id",
			"tenant_id",
			"type",
			"amount",
			"category",
			"description",
			"transaction_date",
			"appointment_id",
			"created_by",
		).
		Values(
			t.ID,
			t.TenantID,
			t.Type,
			t.Amount,
			t.Category,
			t.Description,
			t.Date,
			t.AppointmentID,
			t.CreatedBy,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// ListByPeriod записи барбершопа за период [from, to]
func (r *Repository) ListByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"type",
		"amount",
		"category",
		"description",
		"transaction_date",
		"appointment_id",
		"created_by",
		"created_at",
	).
		From("transactions").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"transaction_date": from}).
		Where(squirrel.LtOrEq{"transaction_date": to}).
		OrderBy("transaction_date DESC", "created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(
			&t.ID,
			&t.TenantID,
			&t.Type,
			&t.Amount,
			&t.Category,
			&t.Description,
			&t.Date,
			&t.AppointmentID,
			&t.CreatedBy,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByPeriod - scan row: %v", ErrScanRow, err)
		}
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByPeriod - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
