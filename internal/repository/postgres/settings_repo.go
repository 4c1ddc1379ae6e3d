package postgres

import (
	"context"
	"errors"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository implements domain.SettingsRepository using PostgreSQL
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get returns the user's settings, or defaults when none are stored yet
func (r *SettingsRepository) Get(userID uuid.UUID) (*domain.Settings, error) {
	ctx := context.Background()

	var s domain.Settings
	s.UserID = userID
	err := r.pool.QueryRow(ctx,
		`SELECT currency, theme, updated_at FROM user_settings WHERE user_id = $1`,
		userID).Scan(&s.Currency, &s.Theme, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultSettings(userID), nil
		}
		return nil, err
	}
	return &s, nil
}

// Upsert writes the user's settings, creating the row on first save
func (r *SettingsRepository) Upsert(settings *domain.Settings) (*domain.Settings, error) {
	ctx := context.Background()

	var s domain.Settings
	s.UserID = settings.UserID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO user_settings (user_id, currency, theme, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			currency = EXCLUDED.currency,
			theme = EXCLUDED.theme,
			updated_at = now()
		RETURNING currency, theme, updated_at`,
		settings.UserID, settings.Currency, settings.Theme).
		Scan(&s.Currency, &s.Theme, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
