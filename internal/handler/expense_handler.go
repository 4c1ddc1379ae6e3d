package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// expenseDateLayout accepts plain dates in request bodies and queries
const expenseDateLayout = "2006-01-02"

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	receiptService *service.ReceiptService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService, receiptService *service.ReceiptService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		receiptService: receiptService,
	}
}

// CreateExpenseRequest represents the create expense request body
type CreateExpenseRequest struct {
	Amount      string  `json:"amount"`
	Description *string `json:"description"`
	ExpenseDate string  `json:"expenseDate"`
	CategoryID  *string `json:"categoryId"`
	Currency    string  `json:"currency"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          string  `json:"id"`
	Amount      string  `json:"amount"`
	Description *string `json:"description,omitempty"`
	ExpenseDate string  `json:"expenseDate"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Currency    string  `json:"currency"`
	HasReceipt  bool    `json:"hasReceipt"`
	CreatedAt   string  `json:"createdAt"`
}

func toExpenseResponse(expense *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          expense.ID.String(),
		Amount:      expense.Amount.StringFixed(2),
		Description: expense.Description,
		ExpenseDate: expense.ExpenseDate.Format(expenseDateLayout),
		Currency:    expense.Currency,
		HasReceipt:  expense.ReceiptKey != nil,
		CreatedAt:   expense.CreatedAt.Format(time.RFC3339),
	}
	if expense.CategoryID != nil {
		id := expense.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be a decimal number"},
		})
	}

	input := service.CreateExpenseInput{
		Amount:      amount,
		Description: req.Description,
		Currency:    req.Currency,
	}

	if req.ExpenseDate != "" {
		date, err := time.Parse(expenseDateLayout, req.ExpenseDate)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "expenseDate", Message: "Date must be formatted YYYY-MM-DD"},
			})
		}
		input.ExpenseDate = date
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "categoryId", Message: "Category ID must be a UUID"},
			})
		}
		input.CategoryID = &categoryID
	}

	expense, err := h.expenseService.CreateExpense(userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrAmountRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must be greater than zero"},
			})
		}
		if errors.Is(err, domain.ErrInvalidCurrency) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "currency", Message: "Currency must be one of USD, EUR, INR"},
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "description", Message: "Description must be 500 characters or less"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create expense")
		return NewInternalError(c, "Failed to create expense")
	}

	log.Info().Str("user_id", userID.String()).Str("expense_id", expense.ID.String()).Msg("Expense created")
	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// GetExpenses handles GET /api/v1/expenses
// Supports startDate, endDate, categoryId and limit query parameters.
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters := &domain.ExpenseFilters{}

	if v := c.QueryParam("startDate"); v != "" {
		start, err := time.Parse(expenseDateLayout, v)
		if err != nil {
			return NewValidationError(c, "Invalid startDate", nil)
		}
		filters.StartDate = &start
	}
	if v := c.QueryParam("endDate"); v != "" {
		end, err := time.Parse(expenseDateLayout, v)
		if err != nil {
			return NewValidationError(c, "Invalid endDate", nil)
		}
		filters.EndDate = &end
	}
	if v := c.QueryParam("categoryId"); v != "" {
		categoryID, err := uuid.Parse(v)
		if err != nil {
			return NewValidationError(c, "Invalid categoryId", nil)
		}
		filters.CategoryID = &categoryID
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return NewValidationError(c, "Invalid limit", nil)
		}
		filters.Limit = int32(limit)
	}

	expenses, err := h.expenseService.GetExpenses(userID, filters)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get expenses")
		return NewInternalError(c, "Failed to get expenses")
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = toExpenseResponse(expense)
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.expenseService.DeleteExpense(userID, id); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Failed to delete expense")
		return NewInternalError(c, "Failed to delete expense")
	}

	log.Info().Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Expense deleted")
	return c.NoContent(http.StatusNoContent)
}

// UploadReceipt handles POST /api/v1/expenses/:id/receipt
func (h *ExpenseHandler) UploadReceipt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		return NewValidationError(c, "Receipt file is required", []ValidationError{
			{Field: "receipt", Message: "Attach the image as multipart field 'receipt'"},
		})
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError(c, "Failed to read upload")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, service.MaxReceiptSize+1))
	if err != nil {
		return NewInternalError(c, "Failed to read upload")
	}

	expense, err := h.receiptService.AttachReceipt(c.Request().Context(), userID, id, data, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExpenseNotFound):
			return NewNotFoundError(c, "Expense not found")
		case errors.Is(err, service.ErrReceiptTooLarge),
			errors.Is(err, service.ErrReceiptInvalidFormat),
			errors.Is(err, service.ErrReceiptTooSmall),
			errors.Is(err, service.ErrReceiptInvalidData):
			return NewValidationError(c, err.Error(), nil)
		case errors.Is(err, service.ErrReceiptStorageNotEnabled):
			return NewForbiddenError(c, "Receipt storage is not configured")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Failed to upload receipt")
		return NewInternalError(c, "Failed to upload receipt")
	}

	log.Info().Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Receipt attached")
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// GetReceipt handles GET /api/v1/expenses/:id/receipt
func (h *ExpenseHandler) GetReceipt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	links, err := h.receiptService.GetReceiptLinks(c.Request().Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExpenseNotFound):
			return NewNotFoundError(c, "Expense not found")
		case errors.Is(err, domain.ErrNoReceipt):
			return NewNotFoundError(c, "Expense has no receipt")
		case errors.Is(err, service.ErrReceiptStorageNotEnabled):
			return NewForbiddenError(c, "Receipt storage is not configured")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Failed to get receipt")
		return NewInternalError(c, "Failed to get receipt")
	}

	return c.JSON(http.StatusOK, links)
}

// DeleteReceipt handles DELETE /api/v1/expenses/:id/receipt
func (h *ExpenseHandler) DeleteReceipt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.receiptService.RemoveReceipt(c.Request().Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrExpenseNotFound):
			return NewNotFoundError(c, "Expense not found")
		case errors.Is(err, domain.ErrNoReceipt):
			return NewNotFoundError(c, "Expense has no receipt")
		case errors.Is(err, service.ErrReceiptStorageNotEnabled):
			return NewForbiddenError(c, "Receipt storage is not configured")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Failed to delete receipt")
		return NewInternalError(c, "Failed to delete receipt")
	}

	return c.NoContent(http.StatusNoContent)
}
