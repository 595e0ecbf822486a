package appointment

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
	"github.com/m04kA/SMC-BarberService/pkg/pgerr"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"tenant_id",
	"customer_id",
	"barber_id",
	"service_id",
	"appointment_date",
	"appointment_time",
	"duration_minutes",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись
// Пересечение с активной записью того же мастера отсекается exclusion constraint
// и возвращается как ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"tenant_id",
			"customer_id",
			"barber_id",
			"service_id",
			"appointment_date",
			"appointment_time",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			appt.ID,
			appt.TenantID,
			appt.CustomerID,
			appt.BarberID,
			appt.ServiceID,
			appt.Date,
			appt.StartTime,
			appt.Duration(),
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.CreatedAt, &appt.UpdatedAt)
	if err != nil {
		if pgerr.IsConflict(err) {
			return nil, ErrSlotNotAvailable
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appt, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// List получает записи барбершопа по фильтру
// Для одной даты сортирует по времени, иначе сначала новые
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"tenant_id": filter.TenantID})

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.DateTo})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.Equal(*filter.DateTo) {
		selectBuilder = selectBuilder.OrderBy("appointment_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC", "appointment_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByBarberAndDate получает неотменённые записи мастера на дату
// Внутри транзакции строки блокируются (FOR UPDATE) для проверки пересечений при записи
func (r *Repository) ListByBarberAndDate(ctx context.Context, barberID uuid.UUID, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListActiveInDateRange получает записи в статусах pending/confirmed за период [from, to],
// используется проверкой напоминаний. tenantID == nil означает все барбершопы
func (r *Repository) ListActiveInDateRange(ctx context.Context, tenantID *uuid.UUID, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": from}).
		Where(squirrel.LtOrEq{"appointment_date": to}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		OrderBy("appointment_date ASC", "appointment_time ASC")

	if tenantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"tenant_id": *tenantID})
	}

	query, args, err := selectBuilder.ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Update сохраняет изменяемые поля записи: мастер, услуга, дата, время, статус, заметки
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("barber_id", appt.BarberID).
		Set("service_id", appt.ServiceID).
		Set("appointment_date", appt.Date).
		Set("appointment_time", appt.StartTime).
		Set("duration_minutes", appt.Duration()).
		Set("status", appt.Status).
		Set("notes", appt.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		if pgerr.IsConflict(err) {
			return nil, ErrSlotNotAvailable
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return appt, nil
}

// UpdateStatus обновляет только статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsConflict(err) {
			return ErrSlotNotAvailable
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.TenantID,
		&appt.CustomerID,
		&appt.BarberID,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartTime,
		&appt.ServiceDuration,
		&appt.Status,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
