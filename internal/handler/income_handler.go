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

// IncomeHandler handles income source HTTP requests
type IncomeHandler struct {
	incomeService *service.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the create income source request body
type CreateIncomeRequest struct {
	SourceType  string  `json:"sourceType"`
	Amount      string  `json:"amount"`
	Description *string `json:"description"`
	Frequency   string  `json:"frequency"`
	Currency    string  `json:"currency"`
}

// IncomeSourceResponse represents an income source in API responses
type IncomeSourceResponse struct {
	ID          string  `json:"id"`
	SourceType  string  `json:"sourceType"`
	Amount      string  `json:"amount"`
	Description *string `json:"description,omitempty"`
	Frequency   string  `json:"frequency"`
	Active      bool    `json:"active"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"createdAt"`
}

// IncomeOverviewResponse represents the income list with its monthly total
type IncomeOverviewResponse struct {
	Sources      []IncomeSourceResponse `json:"sources"`
	MonthlyTotal string                 `json:"monthlyTotal"`
}

func toIncomeSourceResponse(source *domain.IncomeSource) IncomeSourceResponse {
	return IncomeSourceResponse{
		ID:          source.ID.String(),
		SourceType:  string(source.SourceType),
		Amount:      source.Amount.StringFixed(2),
		Description: source.Description,
		Frequency:   string(source.Frequency),
		Active:      source.Active,
		Currency:    source.Currency,
		CreatedAt:   source.CreatedAt.Format(time.RFC3339),
	}
}

// CreateIncomeSource handles POST /api/v1/income-sources
func (h *IncomeHandler) CreateIncomeSource(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be a decimal number"},
		})
	}

	source, err := h.incomeService.CreateIncomeSource(userID, service.CreateIncomeInput{
		SourceType:  domain.IncomeSourceType(req.SourceType),
		Amount:      amount,
		Description: req.Description,
		Frequency:   domain.IncomeFrequency(req.Frequency),
		Currency:    req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAmountRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must be greater than zero"},
			})
		case errors.Is(err, domain.ErrInvalidFrequency):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "frequency", Message: "Frequency must be monthly, weekly, yearly or one-time"},
			})
		case errors.Is(err, domain.ErrInvalidCurrency):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "currency", Message: "Currency must be one of USD, EUR, INR"},
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "sourceType", Message: "Source type must be salary or additional"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create income source")
		return NewInternalError(c, "Failed to create income source")
	}

	log.Info().Str("user_id", userID.String()).Str("income_source_id", source.ID.String()).Msg("Income source created")
	return c.JSON(http.StatusCreated, toIncomeSourceResponse(source))
}

// GetIncomeSources handles GET /api/v1/income-sources
func (h *IncomeHandler) GetIncomeSources(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	overview, err := h.incomeService.GetIncomeOverview(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get income sources")
		return NewInternalError(c, "Failed to get income sources")
	}

	sources := make([]IncomeSourceResponse, len(overview.Sources))
	for i, source := range overview.Sources {
		sources[i] = toIncomeSourceResponse(source)
	}

	return c.JSON(http.StatusOK, IncomeOverviewResponse{
		Sources:      sources,
		MonthlyTotal: overview.MonthlyTotal.StringFixed(2),
	})
}

// ToggleIncomeSource handles PATCH /api/v1/income-sources/:id/toggle
func (h *IncomeHandler) ToggleIncomeSource(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid income source ID", nil)
	}

	source, err := h.incomeService.ToggleIncomeSource(userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrIncomeSourceNotFound) {
			return NewNotFoundError(c, "Income source not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("income_source_id", id.String()).Msg("Failed to toggle income source")
		return NewInternalError(c, "Failed to toggle income source")
	}

	return c.JSON(http.StatusOK, toIncomeSourceResponse(source))
}

// DeleteIncomeSource handles DELETE /api/v1/income-sources/:id
func (h *IncomeHandler) DeleteIncomeSource(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid income source ID", nil)
	}

	if err := h.incomeService.DeleteIncomeSource(userID, id); err != nil {
		if errors.Is(err, domain.ErrIncomeSourceNotFound) {
			return NewNotFoundError(c, "Income source not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("income_source_id", id.String()).Msg("Failed to delete income source")
		return NewInternalError(c, "Failed to delete income source")
	}

	log.Info().Str("user_id", userID.String()).Str("income_source_id", id.String()).Msg("Income source deleted")
	return c.NoContent(http.StatusNoContent)
}
