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
)

// SettingsHandler handles user preference HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents the update settings request body
type UpdateSettingsRequest struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
}

// SettingsResponse represents user settings in API responses
type SettingsResponse struct {
	Currency  string `json:"currency"`
	Theme     string `json:"theme"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func toSettingsResponse(settings *domain.Settings) SettingsResponse {
	resp := SettingsResponse{
		Currency: settings.Currency,
		Theme:    string(settings.Theme),
	}
	if !settings.UpdatedAt.IsZero() {
		resp.UpdatedAt = settings.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get settings")
		return NewInternalError(c, "Failed to get settings")
	}

	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	settings, err := h.settingsService.UpdateSettings(userID, req.Currency, domain.Theme(req.Theme))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCurrency) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "currency", Message: "Currency must be one of USD, EUR, INR"},
			})
		}
		if errors.Is(err, domain.ErrInvalidTheme) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "theme", Message: "Theme must be light or dark"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to update settings")
		return NewInternalError(c, "Failed to update settings")
	}

	log.Info().Str("user_id", userID.String()).Str("currency", settings.Currency).Msg("Settings updated")
	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}
