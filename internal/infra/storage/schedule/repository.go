package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// Repository часы работы и блокировки времени мастеров
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours часы работы барбершопа на день недели (0 - воскресенье)
func (r *Repository) GetWorkingHours(ctx context.Context, tenantID uuid.UUID, dayOfWeek int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "tenant_id", "day_of_week", "is_open", "start_time", "end_time").
		From("working_hours").
		Where(squirrel.Eq{"tenant_id": tenantID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.TenantID,
		&wh.DayOfWeek,
		&wh.IsOpen,
		&wh.StartTime,
		&wh.EndTime,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - scan row: %v", ErrScanRow, err)
	}

	return &wh, nil
}

// ListWorkingHours все дни недели барбершопа
func (r *Repository) ListWorkingHours(ctx context.Context, tenantID uuid.UUID) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "tenant_id", "day_of_week", "is_open", "start_time", "end_time").
		From("working_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHours, 0, 7)
	for rows.Next() {
		var wh domain.WorkingHours
		if err := rows.Scan(&wh.ID, &wh.TenantID, &wh.DayOfWeek, &wh.IsOpen, &wh.StartTime, &wh.EndTime); err != nil {
			return nil, fmt.Errorf("%w: ListWorkingHours - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpsertWorkingHours создаёт или заменяет строку (tenant_id, day_of_week)
func (r *Repository) UpsertWorkingHours(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if wh.ID == uuid.Nil {
		wh.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("id", "tenant_id", "day_of_week", "is_open", "start_time", "end_time").
		Values(wh.ID, wh.TenantID, wh.DayOfWeek, wh.IsOpen, wh.StartTime, wh.EndTime).
		Suffix(`ON CONFLICT (tenant_id, day_of_week) DO UPDATE
			SET is_open = EXCLUDED.is_open, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time
			RETURNING id`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&wh.ID); err != nil {
		return nil, fmt.Errorf("%w: UpsertWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	return wh, nil
}

// ListBlockedTimes блокировки мастера на дату
func (r *Repository) ListBlockedTimes(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"barber_id",
		"date",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("blocked_times").
		Where(squirrel.Eq{"barber_id": barberID, "date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		bt, err := scanBlockedTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlockedTimes - scan row: %v", ErrScanRow, err)
		}
		result = append(result, bt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedTimes - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetBlockedTime блокировка по ID
func (r *Repository) GetBlockedTime(ctx context.Context, id uuid.UUID) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"barber_id",
		"date",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedTime - build select query: %v", ErrBuildQuery, err)
	}

	bt, err := scanBlockedTime(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockedTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedTime - scan row: %v", ErrScanRow, err)
	}

	return bt, nil
}

// CreateBlockedTime создает блокировку
func (r *Repository) CreateBlockedTime(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("id", "tenant_id", "barber_id", "date", "start_time", "end_time", "reason").
		Values(bt.ID, bt.TenantID, bt.BarberID, bt.Date, bt.StartTime, bt.EndTime, bt.Reason).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&bt.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - execute insert: %v", ErrExecQuery, err)
	}

	return bt, nil
}

// DeleteBlockedTime удаляет блокировку
func (r *Repository) DeleteBlockedTime(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedTime(row rowScanner) (*domain.BlockedTime, error) {
	var bt domain.BlockedTime
	err := row.Scan(
		&bt.ID,
		&bt.TenantID,
		&bt.BarberID,
		&bt.Date,
		&bt.StartTime,
		&bt.EndTime,
		&bt.Reason,
		&bt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bt, nil
}
