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

// OverallBudgetHandler handles overall budget HTTP requests
type OverallBudgetHandler struct {
	overallService *service.OverallBudgetService
}

// NewOverallBudgetHandler creates a new OverallBudgetHandler
func NewOverallBudgetHandler(overallService *service.OverallBudgetService) *OverallBudgetHandler {
	return &OverallBudgetHandler{overallService: overallService}
}

// OverallBudgetRequest represents the create/update overall budget request body
type OverallBudgetRequest struct {
	Amount     string `json:"amount"`
	Period     string `json:"period"`
	Currency   string `json:"currency"`
	AnchorDate string `json:"anchorDate"`
}

// OverallBudgetResponse represents an overall budget with its window in API responses
type OverallBudgetResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Period      string `json:"period"`
	Currency    string `json:"currency"`
	AnchorDate  string `json:"anchorDate"`
	WindowStart string `json:"windowStart,omitempty"`
	WindowEnd   string `json:"windowEnd,omitempty"`
	Spent       string `json:"spent,omitempty"`
	Remaining   string `json:"remaining,omitempty"`
	Percentage  string `json:"percentage,omitempty"`
	OverBudget  bool   `json:"overBudget"`
	CreatedAt   string `json:"createdAt"`
}

func toOverallBudgetResponse(status *service.OverallBudgetStatus) OverallBudgetResponse {
	b := status.Budget
	return OverallBudgetResponse{
		ID:          b.ID.String(),
		Amount:      b.Amount.StringFixed(2),
		Period:      string(b.Period),
		Currency:    b.Currency,
		AnchorDate:  b.AnchorDate.Format(expenseDateLayout),
		WindowStart: status.WindowStart.Format(expenseDateLayout),
		WindowEnd:   status.WindowEnd.Format(expenseDateLayout),
		Spent:       status.Spent.StringFixed(2),
		Remaining:   status.Remaining.StringFixed(2),
		Percentage:  status.Percentage.StringFixed(2),
		OverBudget:  status.OverBudget,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func toBareOverallBudgetResponse(b *domain.OverallBudget) OverallBudgetResponse {
	return OverallBudgetResponse{
		ID:         b.ID.String(),
		Amount:     b.Amount.StringFixed(2),
		Period:     string(b.Period),
		Currency:   b.Currency,
		AnchorDate: b.AnchorDate.Format(expenseDateLayout),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func parseOverallBudgetRequest(c echo.Context) (decimal.Decimal, domain.BudgetPeriod, string, time.Time, error) {
	var req OverallBudgetRequest
	if err := c.Bind(&req); err != nil {
		return decimal.Zero, "", "", time.Time{}, NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return decimal.Zero, "", "", time.Time{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be a decimal number"},
		})
	}

	var anchorDate time.Time
	if req.AnchorDate != "" {
		anchorDate, err = time.Parse(expenseDateLayout, req.AnchorDate)
		if err != nil {
			return decimal.Zero, "", "", time.Time{}, NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "anchorDate", Message: "Date must be formatted YYYY-MM-DD"},
			})
		}
	}

	return amount, domain.BudgetPeriod(req.Period), req.Currency, anchorDate, nil
}

func overallBudgetError(c echo.Context, userID uuid.UUID, err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrOverallBudgetNotFound):
		return NewNotFoundError(c, "Overall budget not found")
	case errors.Is(err, domain.ErrAmountRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	case errors.Is(err, domain.ErrInvalidPeriod):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "period", Message: "Period must be weekly or monthly"},
		})
	case errors.Is(err, domain.ErrInvalidCurrency):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "currency", Message: "Currency must be one of USD, EUR, INR"},
		})
	}
	log.Error().Err(err).Str("user_id", userID.String()).Msg(action)
	return NewInternalError(c, action)
}

// CreateOverallBudget handles POST /api/v1/overall-budgets
func (h *OverallBudgetHandler) CreateOverallBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	amount, period, currency, anchorDate, errResp := parseOverallBudgetRequest(c)
	if errResp != nil {
		return errResp
	}

	budget, err := h.overallService.CreateOverallBudget(userID, amount, period, currency, anchorDate)
	if err != nil {
		return overallBudgetError(c, userID, err, "Failed to create overall budget")
	}

	log.Info().Str("user_id", userID.String()).Str("budget_id", budget.ID.String()).Msg("Overall budget created")
	return c.JSON(http.StatusCreated, toBareOverallBudgetResponse(budget))
}

// GetOverallBudgets handles GET /api/v1/overall-budgets
func (h *OverallBudgetHandler) GetOverallBudgets(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	statuses, err := h.overallService.GetOverallBudgets(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get overall budgets")
		return NewInternalError(c, "Failed to get overall budgets")
	}

	response := make([]OverallBudgetResponse, len(statuses))
	for i, status := range statuses {
		response[i] = toOverallBudgetResponse(status)
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateOverallBudget handles PUT /api/v1/overall-budgets/:id
func (h *OverallBudgetHandler) UpdateOverallBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	amount, period, currency, anchorDate, errResp := parseOverallBudgetRequest(c)
	if errResp != nil {
		return errResp
	}

	budget, err := h.overallService.UpdateOverallBudget(userID, id, amount, period, currency, anchorDate)
	if err != nil {
		return overallBudgetError(c, userID, err, "Failed to update overall budget")
	}

	return c.JSON(http.StatusOK, toBareOverallBudgetResponse(budget))
}

// DeleteOverallBudget handles DELETE /api/v1/overall-budgets/:id
func (h *OverallBudgetHandler) DeleteOverallBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.overallService.DeleteOverallBudget(userID, id); err != nil {
		if errors.Is(err, domain.ErrOverallBudgetNotFound) {
			return NewNotFoundError(c, "Overall budget not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("budget_id", id.String()).Msg("Failed to delete overall budget")
		return NewInternalError(c, "Failed to delete overall budget")
	}

	log.Info().Str("user_id", userID.String()).Str("budget_id", id.String()).Msg("Overall budget deleted")
	return c.NoContent(http.StatusNoContent)
}
