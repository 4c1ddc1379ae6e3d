package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles per-category budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the create budget request body
type CreateBudgetRequest struct {
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
	Period     string `json:"period"`
	Currency   string `json:"currency"`
}

// BudgetResponse represents a budget with its spending state in API responses
type BudgetResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
	Period     string `json:"period"`
	Currency   string `json:"currency"`
	Spent      string `json:"spent"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
	OverBudget bool   `json:"overBudget"`
	CreatedAt  string `json:"createdAt"`
}

func toBudgetResponse(status *service.BudgetStatus) BudgetResponse {
	b := status.Budget
	return BudgetResponse{
		ID:         b.ID.String(),
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount.StringFixed(2),
		Period:     string(b.Period),
		Currency:   b.Currency,
		Spent:      status.Spent.StringFixed(2),
		Remaining:  status.Remaining.StringFixed(2),
		Percentage: status.Percentage.StringFixed(2),
		OverBudget: status.OverBudget,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

// CreateBudget handles POST /api/v1/budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category ID must be a UUID"},
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be a decimal number"},
		})
	}

	budget, err := h.budgetService.CreateBudget(userID, categoryID, amount, domain.BudgetPeriod(req.Period), req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			return NewNotFoundError(c, "Category not found")
		case errors.Is(err, domain.ErrAmountRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must be greater than zero"},
			})
		case errors.Is(err, domain.ErrInvalidPeriod):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "period", Message: "Period must be weekly, monthly or yearly"},
			})
		case errors.Is(err, domain.ErrInvalidCurrency):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "currency", Message: "Currency must be one of USD, EUR, INR"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create budget")
		return NewInternalError(c, "Failed to create budget")
	}

	log.Info().Str("user_id", userID.String()).Str("budget_id", budget.ID.String()).Msg("Budget created")
	return c.JSON(http.StatusCreated, toBudgetResponse(&service.BudgetStatus{
		Budget:     budget,
		Spent:      decimal.Zero,
		Remaining:  budget.Amount,
		Percentage: decimal.Zero,
	}))
}

// GetBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	statuses, err := h.budgetService.GetBudgets(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get budgets")
		return NewInternalError(c, "Failed to get budgets")
	}

	response := make([]BudgetResponse, len(statuses))
	for i, status := range statuses {
		response[i] = toBudgetResponse(status)
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.DeleteBudget(userID, id); err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("budget_id", id.String()).Msg("Failed to delete budget")
		return NewInternalError(c, "Failed to delete budget")
	}

	log.Info().Str("user_id", userID.String()).Str("budget_id", id.String()).Msg("Budget deleted")
	return c.NoContent(http.StatusNoContent)
}
