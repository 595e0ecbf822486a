package loyalty

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

// Repository баллы клиентов, журнал баллов и купоны
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPoints текущий баланс клиента
// Внутри транзакции строка клиента блокируется до конца транзакции
func (r *Repository) GetPoints(ctx context.Context, customerID uuid.UUID) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("loyalty_points").
		From("customers").
		Where(squirrel.Eq{"id": customerID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetPoints - build select query: %v", ErrBuildQuery, err)
	}

	var points int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&points)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrCustomerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetPoints - scan row: %v", ErrScanRow, err)
	}

	return points, nil
}

// SetPoints записывает новый баланс
func (r *Repository) SetPoints(ctx context.Context, customerID uuid.UUID, points int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("loyalty_points", points).
		Where(squirrel.Eq{"id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPoints - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPoints - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPoints - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// InsertHistory добавляет строку в журнал баллов
func (r *Repository) InsertHistory(ctx context.Context, h *domain.LoyaltyHistory) (*domain.LoyaltyHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("loyalty_history").
		Columns("id", "tenant_id", "customer_id", "points_change", "points_balance", "action", "description").
		Values(h.ID, h.TenantID, h.CustomerID, h.PointsChange, h.PointsBalance, h.Action, h.Description).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: InsertHistory - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: InsertHistory - execute insert: %v", ErrExecQuery, err)
	}

	return h, nil
}

// CreateCoupon сохраняет новый купон
func (r *Repository) CreateCoupon(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("loyalty_coupons").
		Columns("id", "tenant_id", "customer_id", "code", "is_redeemed", "expires_at").
		Values(c.ID, c.TenantID, c.CustomerID, c.Code, false, c.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCoupon - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: CreateCoupon - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetCouponByCode купон по коду, внутри транзакции с блокировкой строки
func (r *Repository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"tenant_id",
		"customer_id",
		"code",
		"is_redeemed",
		"redeemed_at",
		"expires_at",
		"appointment_id",
		"created_at",
	).
		From("loyalty_coupons").
		Where(squirrel.Eq{"code": code})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCouponByCode - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Coupon
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.TenantID,
		&c.CustomerID,
		&c.Code,
		&c.IsRedeemed,
		&c.RedeemedAt,
		&c.ExpiresAt,
		&c.AppointmentID,
		&c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCouponByCode - scan row: %v", ErrScanRow, err)
	}

	return &c, nil
}

// MarkCouponRedeemed гасит купон, если он ещё не погашен
func (r *Repository) MarkCouponRedeemed(ctx context.Context, couponID uuid.UUID, appointmentID *uuid.UUID, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("loyalty_coupons").
		Set("is_redeemed", true).
		Set("redeemed_at", at).
		Set("appointment_id", appointmentID).
		Where(squirrel.Eq{"id": couponID, "is_redeemed": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkCouponRedeemed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCouponRedeemed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCouponRedeemed - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCouponAlreadyRedeemed
	}

	return nil
}
