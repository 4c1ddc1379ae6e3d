package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IncomeSourceRepository implements domain.IncomeSourceRepository using PostgreSQL
type IncomeSourceRepository struct {
	pool *pgxpool.Pool
}

// NewIncomeSourceRepository creates a new IncomeSourceRepository
func NewIncomeSourceRepository(pool *pgxpool.Pool) *IncomeSourceRepository {
	return &IncomeSourceRepository{pool: pool}
}

const incomeSourceColumns = `id, user_id, source_type, amount, description, frequency, is_active, currency, created_at`

// Create creates a new income source
func (r *IncomeSourceRepository) Create(source *domain.IncomeSource) (*domain.IncomeSource, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(source.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO income_sources (user_id, source_type, amount, description, frequency, is_active, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+incomeSourceColumns,
		source.UserID, string(source.SourceType), amount, textOrNil(source.Description),
		string(source.Frequency), source.Active, source.Currency)
	return scanIncomeSource(row)
}

// GetByID retrieves an income source owned by the user
func (r *IncomeSourceRepository) GetByID(userID, id uuid.UUID) (*domain.IncomeSource, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+incomeSourceColumns+` FROM income_sources WHERE user_id = $1 AND id = $2`,
		userID, id)
	return scanIncomeSource(row)
}

// GetAllByUser retrieves the user's income sources, newest first
func (r *IncomeSourceRepository) GetAllByUser(userID uuid.UUID) ([]*domain.IncomeSource, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+incomeSourceColumns+` FROM income_sources WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*domain.IncomeSource
	for rows.Next() {
		source, err := scanIncomeSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, rows.Err()
}

// ToggleActive flips the active flag of an income source
func (r *IncomeSourceRepository) ToggleActive(userID, id uuid.UUID) (*domain.IncomeSource, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE income_sources SET is_active = NOT is_active
		WHERE user_id = $1 AND id = $2
		RETURNING `+incomeSourceColumns,
		userID, id)
	return scanIncomeSource(row)
}

// Delete removes an income source
func (r *IncomeSourceRepository) Delete(userID, id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM income_sources WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeSourceNotFound
	}
	return nil
}

func scanIncomeSource(row pgx.Row) (*domain.IncomeSource, error) {
	var s domain.IncomeSource
	var sourceType, frequency string
	var amount pgtype.Numeric
	var description pgtype.Text

	err := row.Scan(&s.ID, &s.UserID, &sourceType, &amount, &description, &frequency, &s.Active, &s.Currency, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIncomeSourceNotFound
		}
		return nil, err
	}

	s.SourceType = domain.IncomeSourceType(sourceType)
	s.Amount = pgNumericToDecimal(amount)
	s.Frequency = domain.IncomeFrequency(frequency)
	if description.Valid {
		s.Description = &description.String
	}
	return &s, nil
}
