package whatsapp

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

// Repository учётные данные WhatsApp провайдера по пользователям
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings настройки пользователя
func (r *Repository) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.WhatsAppSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "account_sid", "auth_token", "from_number", "is_enabled").
		From("whatsapp_settings").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.WhatsAppSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.UserID,
		&s.AccountSID,
		&s.AuthToken,
		&s.FromNumber,
		&s.IsEnabled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan row: %v", ErrScanRow, err)
	}

	return &s, nil
}
