package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// OverallBudgetRepository implements domain.OverallBudgetRepository using PostgreSQL
type OverallBudgetRepository struct {
	pool *pgxpool.Pool
}

// NewOverallBudgetRepository creates a new OverallBudgetRepository
func NewOverallBudgetRepository(pool *pgxpool.Pool) *OverallBudgetRepository {
	return &OverallBudgetRepository{pool: pool}
}

const overallBudgetColumns = `id, user_id, amount, period, currency, anchor_date, created_at`

// Create creates a new overall budget
func (r *OverallBudgetRepository) Create(budget *domain.OverallBudget) (*domain.OverallBudget, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO overall_budgets (user_id, amount, period, currency, anchor_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+overallBudgetColumns,
		budget.UserID, amount, string(budget.Period), budget.Currency,
		pgtype.Date{Time: budget.AnchorDate, Valid: true})
	return scanOverallBudget(row)
}

// GetByID retrieves an overall budget owned by the user
func (r *OverallBudgetRepository) GetByID(userID, id uuid.UUID) (*domain.OverallBudget, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+overallBudgetColumns+` FROM overall_budgets WHERE user_id = $1 AND id = $2`,
		userID, id)
	return scanOverallBudget(row)
}

// GetAllByUser retrieves the user's overall budgets, newest anchor first
func (r *OverallBudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.OverallBudget, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+overallBudgetColumns+` FROM overall_budgets WHERE user_id = $1 ORDER BY anchor_date DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.OverallBudget
	for rows.Next() {
		budget, err := scanOverallBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// Update replaces an overall budget's fields
func (r *OverallBudgetRepository) Update(userID, id uuid.UUID, amount decimal.Decimal, period domain.BudgetPeriod, currency string, anchorDate time.Time) (*domain.OverallBudget, error) {
	ctx := context.Background()

	pgAmount, err := decimalToPgNumeric(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE overall_budgets SET amount = $3, period = $4, currency = $5, anchor_date = $6
		WHERE user_id = $1 AND id = $2
		RETURNING `+overallBudgetColumns,
		userID, id, pgAmount, string(period), currency,
		pgtype.Date{Time: anchorDate, Valid: true})
	return scanOverallBudget(row)
}

// Delete removes an overall budget
func (r *OverallBudgetRepository) Delete(userID, id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM overall_budgets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOverallBudgetNotFound
	}
	return nil
}

func scanOverallBudget(row pgx.Row) (*domain.OverallBudget, error) {
	var b domain.OverallBudget
	var amount pgtype.Numeric
	var period string
	var anchorDate pgtype.Date

	err := row.Scan(&b.ID, &b.UserID, &amount, &period, &b.Currency, &anchorDate, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOverallBudgetNotFound
		}
		return nil, err
	}

	b.Amount = pgNumericToDecimal(amount)
	b.Period = domain.BudgetPeriod(period)
	b.AnchorDate = anchorDate.Time
	return &b, nil
}
