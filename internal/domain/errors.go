package domain

import "errors"

// Domain errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInternalError         = errors.New("internal error")
	ErrUserNotFound          = errors.New("user not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrOverallBudgetNotFound = errors.New("overall budget not found")
	ErrIncomeSourceNotFound  = errors.New("income source not found")
	ErrNameRequired          = errors.New("name is required")
	ErrNameTooLong           = errors.New("name exceeds maximum length")
	ErrAmountRequired        = errors.New("amount is required")
	ErrInvalidPeriod         = errors.New("invalid budget period")
	ErrInvalidFrequency      = errors.New("invalid income frequency")
	ErrInvalidCurrency       = errors.New("invalid currency code")
	ErrInvalidIcon           = errors.New("unknown category icon")
	ErrInvalidColor          = errors.New("invalid color value")
	ErrInvalidTheme          = errors.New("invalid theme")
	ErrNoReceipt             = errors.New("expense has no receipt")
)

// Validation constants
const (
	MaxCategoryNameLength = 100
	MaxDescriptionLength  = 500
)
