package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newSettingsHandlerFixture() *SettingsHandler {
	return NewSettingsHandler(service.NewSettingsService(testutil.NewMockSettingsRepository()))
}

func TestGetSettings_Defaults(t *testing.T) {
	e := echo.New()
	handler := newSettingsHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	err := handler.GetSettings(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response SettingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Currency != domain.DefaultCurrency {
		t.Errorf("Expected default currency, got %s", response.Currency)
	}
	if response.Theme != string(domain.ThemeLight) {
		t.Errorf("Expected light theme, got %s", response.Theme)
	}
}

func TestUpdateSettings_HandlerSuccess(t *testing.T) {
	e := echo.New()
	handler := newSettingsHandlerFixture()

	body := `{"currency":"INR","theme":"dark"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	err := handler.UpdateSettings(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response SettingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Currency != "INR" {
		t.Errorf("Expected INR, got %s", response.Currency)
	}
	if response.Theme != "dark" {
		t.Errorf("Expected dark theme, got %s", response.Theme)
	}
}

func TestUpdateSettings_BadTheme(t *testing.T) {
	e := echo.New()
	handler := newSettingsHandlerFixture()

	body := `{"currency":"USD","theme":"solarized"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	err := handler.UpdateSettings(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
