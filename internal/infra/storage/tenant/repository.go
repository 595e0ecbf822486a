package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// Repository справочник барбершопа: сам барбершоп, роли, мастера, клиенты, услуги
// и наборы получателей уведомлений
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTenant барбершоп по ID
func (r *Repository) GetTenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return r.getTenant(ctx, "GetTenant", squirrel.Eq{"id": id})
}

// GetTenantByOwner барбершоп, которым владеет пользователь
func (r *Repository) GetTenantByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Tenant, error) {
	return r.getTenant(ctx, "GetTenantByOwner", squirrel.Eq{"owner_id": ownerID, "is_active": true})
}

func (r *Repository) getTenant(ctx context.Context, op string, where squirrel.Eq) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "slug", "owner_id", "is_active", "created_at").
		From("tenants").
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var t domain.Tenant
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.OwnerID,
		&t.IsActive,
		&t.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
	}

	return &t, nil
}

// GetRoles все роли пользователя
func (r *Repository) GetRoles(ctx context.Context, userID uuid.UUID) ([]domain.RoleBinding, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("role", "tenant_id").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoles - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roles := make([]domain.RoleBinding, 0, 1)
	for rows.Next() {
		var rb domain.RoleBinding
		if err := rows.Scan(&rb.Role, &rb.TenantID); err != nil {
			return nil, fmt.Errorf("%w: GetRoles - scan row: %v", ErrScanRow, err)
		}
		roles = append(roles, rb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoles - rows error: %v", ErrScanRow, err)
	}

	return roles, nil
}

var barberColumns = []string{"id", "tenant_id", "user_id", "name", "is_active", "commission_rate"}

// GetBarber мастер по ID
func (r *Repository) GetBarber(ctx context.Context, id uuid.UUID) (*domain.Barber, error) {
	return r.getBarber(ctx, "GetBarber", squirrel.Eq{"id": id})
}

// GetBarberByUserID активный мастер, привязанный к аккаунту
func (r *Repository) GetBarberByUserID(ctx context.Context, userID uuid.UUID) (*domain.Barber, error) {
	return r.getBarber(ctx, "GetBarberByUserID", squirrel.Eq{"user_id": userID, "is_active": true})
}

func (r *Repository) getBarber(ctx context.Context, op string, where squirrel.Eq) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var b domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.TenantID,
		&b.UserID,
		&b.Name,
		&b.IsActive,
		&b.CommissionRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
	}

	return &b, nil
}

var customerColumns = []string{"id", "tenant_id", "user_id", "name", "phone", "loyalty_points", "notifications_enabled"}

// GetCustomer клиент по ID
func (r *Repository) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return r.getCustomer(ctx, "GetCustomer", squirrel.Eq{"id": id})
}

// GetCustomerByUserID клиент, привязанный к аккаунту
func (r *Repository) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*domain.Customer, error) {
	return r.getCustomer(ctx, "GetCustomerByUserID", squirrel.Eq{"user_id": userID})
}

func (r *Repository) getCustomer(ctx context.Context, op string, where squirrel.Eq) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.TenantID,
		&c.UserID,
		&c.Name,
		&c.Phone,
		&c.LoyaltyPoints,
		&c.NotificationsEnabled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
	}

	return &c, nil
}

// GetService услуга по ID
func (r *Repository) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "tenant_id", "name", "price", "duration_minutes", "is_active").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.TenantID,
		&s.Name,
		&s.Price,
		&s.DurationMinutes,
		&s.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan row: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListStaffUserIDs аккаунты с ролью admin или barber в барбершопе
func (r *Repository) ListStaffUserIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error) {
	return r.listUserIDs(ctx, "ListStaffUserIDs", psqlbuilder.Select("DISTINCT user_id").
		From("user_roles").
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"role":      []string{string(domain.RoleAdmin), string(domain.RoleBarber)},
		}))
}

// ListActiveBarberUserIDs аккаунты активных мастеров
func (r *Repository) ListActiveBarberUserIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error) {
	return r.listUserIDs(ctx, "ListActiveBarberUserIDs", psqlbuilder.Select("DISTINCT user_id").
		From("barbers").
		Where(squirrel.Eq{"tenant_id": tenantID, "is_active": true}).
		Where(squirrel.NotEq{"user_id": nil}))
}

// ListBroadcastCustomerUserIDs клиенты с аккаунтом и подтверждённой ролью customer
func (r *Repository) ListBroadcastCustomerUserIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error) {
	return r.listUserIDs(ctx, "ListBroadcastCustomerUserIDs", psqlbuilder.Select("DISTINCT c.user_id").
		From("customers c").
		Join("user_roles ur ON ur.user_id = c.user_id AND ur.role = ?", string(domain.RoleCustomer)).
		Where(squirrel.Eq{"c.tenant_id": tenantID}).
		Where(squirrel.NotEq{"c.user_id": nil}))
}

func (r *Repository) listUserIDs(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s - scan user_id: %v", ErrScanRow, op, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return ids, nil
}

// IsTenantMember привязан ли аккаунт к барбершопу: ролью, карточкой мастера или клиента
func (r *Repository) IsTenantMember(ctx context.Context, tenantID, userID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("user_roles").
		Where(squirrel.Eq{"tenant_id": tenantID, "user_id": userID}).
		Suffix("UNION ALL SELECT 1 FROM customers WHERE tenant_id = ? AND user_id = ?", tenantID, userID).
		Suffix("UNION ALL SELECT 1 FROM barbers WHERE tenant_id = ? AND user_id = ?", tenantID, userID).
		Suffix("LIMIT 1").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsTenantMember - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsTenantMember - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}
