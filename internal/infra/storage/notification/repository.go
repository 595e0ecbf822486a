package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/pgerr"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// Repository уведомления и настройки уведомлений
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
// Повторное напоминание по той же записи отсекается уникальным индексом и возвращается как ErrDuplicate
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("id", "user_id", "title", "message", "type", "is_read", "related_id").
		Values(n.ID, n.UserID, n.Title, n.Message, n.Type, false, n.RelatedID).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.CreatedAt); err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// ExistsByTypeAndRelated есть ли уже уведомление данного типа по сущности
func (r *Repository) ExistsByTypeAndRelated(ctx context.Context, notificationType domain.NotificationType, relatedID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("notifications").
		Where(squirrel.Eq{"type": notificationType, "related_id": relatedID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTypeAndRelated - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTypeAndRelated - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetPreferences настройки категорий пользователя
// Если пользователь ничего не настраивал, все категории включены
func (r *Repository) GetPreferences(ctx context.Context, userID uuid.UUID) (domain.NotificationPreferences, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reminders", "confirmations", "cancellations", "reschedules", "marketing").
		From("notification_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return domain.NotificationPreferences{}, fmt.Errorf("%w: GetPreferences - build select query: %v", ErrBuildQuery, err)
	}

	prefs := domain.NotificationPreferences{UserID: userID}
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prefs.Reminders,
		&prefs.Confirmations,
		&prefs.Cancellations,
		&prefs.Reschedules,
		&prefs.Marketing,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultNotificationPreferences(userID), nil
	}
	if err != nil {
		return domain.NotificationPreferences{}, fmt.Errorf("%w: GetPreferences - scan row: %v", ErrScanRow, err)
	}

	return prefs, nil
}

// GetCustomerNotificationsFlag флаг notifications_enabled клиента с этим аккаунтом
// Для аккаунтов без карточки клиента (сотрудники) возвращает true
func (r *Repository) GetCustomerNotificationsFlag(ctx context.Context, userID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// У аккаунта может быть несколько карточек клиента в разных барбершопах, выключенный флаг в любой побеждает
	query, args, err := psqlbuilder.Select("BOOL_AND(notifications_enabled)").
		From("customers").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: GetCustomerNotificationsFlag - build select query: %v", ErrBuildQuery, err)
	}

	var enabled sql.NullBool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&enabled); err != nil {
		return false, fmt.Errorf("%w: GetCustomerNotificationsFlag - scan row: %v", ErrScanRow, err)
	}

	if !enabled.Valid {
		return true, nil
	}
	return enabled.Bool, nil
}
