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

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseColumns = `id, user_id, amount, description, expense_date, category_id, currency, receipt_key, created_at`

// Create creates a new expense
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var categoryID pgtype.UUID
	if expense.CategoryID != nil {
		categoryID.Bytes = *expense.CategoryID
		categoryID.Valid = true
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (user_id, amount, description, expense_date, category_id, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+expenseColumns,
		expense.UserID, amount, textOrNil(expense.Description),
		pgtype.Date{Time: expense.ExpenseDate, Valid: true}, categoryID, expense.Currency)
	return scanExpense(row)
}

// GetByID retrieves an expense owned by the user
func (r *ExpenseRepository) GetByID(userID, id uuid.UUID) (*domain.Expense, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE user_id = $1 AND id = $2`,
		userID, id)
	return scanExpense(row)
}

// GetAllByUser retrieves the user's expenses, newest first, honoring filters
func (r *ExpenseRepository) GetAllByUser(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	ctx := context.Background()

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1`
	args := []any{userID}

	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, pgtype.Date{Time: *filters.StartDate, Valid: true})
			query += fmt.Sprintf(" AND expense_date >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, pgtype.Date{Time: *filters.EndDate, Valid: true})
			query += fmt.Sprintf(" AND expense_date <= $%d", len(args))
		}
		if filters.CategoryID != nil {
			args = append(args, *filters.CategoryID)
			query += fmt.Sprintf(" AND category_id = $%d", len(args))
		}
	}

	limit := int32(domain.DefaultExpenseLimit)
	if filters != nil && filters.Limit > 0 {
		limit = filters.Limit
		if limit > domain.MaxExpenseLimit {
			limit = domain.MaxExpenseLimit
		}
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY expense_date DESC, created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// Delete removes an expense
func (r *ExpenseRepository) Delete(userID, id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM expenses WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// SetReceiptKey attaches or clears the stored receipt object key
func (r *ExpenseRepository) SetReceiptKey(userID, id uuid.UUID, receiptKey *string) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`UPDATE expenses SET receipt_key = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, textOrNil(receiptKey))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// SumByDateRange sums expense amounts inside the inclusive date range
func (r *ExpenseRepository) SumByDateRange(userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	ctx := context.Background()
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE user_id = $1 AND expense_date >= $2 AND expense_date <= $3`,
		userID,
		pgtype.Date{Time: start, Valid: true},
		pgtype.Date{Time: end, Valid: true}).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

// SumByCategoryAndDateRange sums a single category's expenses inside the range
func (r *ExpenseRepository) SumByCategoryAndDateRange(userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	ctx := context.Background()
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE user_id = $1 AND category_id = $2 AND expense_date >= $3 AND expense_date <= $4`,
		userID, categoryID,
		pgtype.Date{Time: start, Valid: true},
		pgtype.Date{Time: end, Valid: true}).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

// CountByUser returns the user's total number of expenses
func (r *ExpenseRepository) CountByUser(userID uuid.UUID) (int64, error) {
	ctx := context.Background()
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM expenses WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// SumByUser sums all the user's expense amounts
func (r *ExpenseRepository) SumByUser(userID uuid.UUID) (decimal.Decimal, error) {
	ctx := context.Background()
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	var amount pgtype.Numeric
	var description, receiptKey pgtype.Text
	var expenseDate pgtype.Date
	var categoryID pgtype.UUID

	err := row.Scan(&e.ID, &e.UserID, &amount, &description, &expenseDate, &categoryID, &e.Currency, &receiptKey, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}

	e.Amount = pgNumericToDecimal(amount)
	e.ExpenseDate = expenseDate.Time
	if description.Valid {
		e.Description = &description.String
	}
	if receiptKey.Valid {
		e.ReceiptKey = &receiptKey.String
	}
	if categoryID.Valid {
		id := uuid.UUID(categoryID.Bytes)
		e.CategoryID = &id
	}
	return &e, nil
}
