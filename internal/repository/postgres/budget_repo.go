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
	"github.com/shopspring/decimal"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = `id, user_id, category_id, amount, period, currency, created_at`

// Create creates a new category budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO budgets (user_id, category_id, amount, period, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+budgetColumns,
		budget.UserID, budget.CategoryID, amount, string(budget.Period), budget.Currency)
	return scanBudget(row)
}

// GetByID retrieves a budget owned by the user
func (r *BudgetRepository) GetByID(userID, id uuid.UUID) (*domain.Budget, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 AND id = $2`,
		userID, id)
	return scanBudget(row)
}

// GetAllByUser retrieves all the user's category budgets
func (r *BudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// Delete removes a budget
func (r *BudgetRepository) Delete(userID, id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM budgets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

// SumAmountsByUser sums the amounts of all the user's category budgets
func (r *BudgetRepository) SumAmountsByUser(userID uuid.UUID) (decimal.Decimal, error) {
	ctx := context.Background()
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM budgets WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	var amount pgtype.Numeric
	var period string

	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &amount, &period, &b.Currency, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}

	b.Amount = pgNumericToDecimal(amount)
	b.Period = domain.BudgetPeriod(period)
	return &b, nil
}
