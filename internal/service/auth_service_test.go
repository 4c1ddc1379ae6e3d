package service

import (
	"errors"
	"testing"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
)

func TestAuthenticateUser_FirstSignInCreatesUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo, testutil.NewMockSettingsRepository())

	name := "Ada"
	result, err := authService.AuthenticateUser("auth0|abc123", "ada@example.com", &name)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.IsNewUser {
		t.Error("Expected first sign-in to flag a new user")
	}
	if result.User.Email != "ada@example.com" {
		t.Errorf("Expected email ada@example.com, got %s", result.User.Email)
	}
	if result.Settings.Currency != domain.DefaultCurrency {
		t.Errorf("Expected default settings, got currency %s", result.Settings.Currency)
	}
}

func TestAuthenticateUser_ReturningUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo, testutil.NewMockSettingsRepository())

	existing := &domain.User{
		ID:      uuid.New(),
		Auth0ID: "auth0|abc123",
		Email:   "ada@example.com",
	}
	userRepo.AddUser(existing)

	result, err := authService.AuthenticateUser("auth0|abc123", "ada@example.com", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.IsNewUser {
		t.Error("Expected returning user not to be flagged new")
	}
	if result.User.ID != existing.ID {
		t.Errorf("Expected existing user ID %s, got %s", existing.ID, result.User.ID)
	}
}

func TestAuthenticateUser_PropagatesCreateError(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo, testutil.NewMockSettingsRepository())

	repoErr := errors.New("connection refused")
	userRepo.CreateFn = func(auth0ID, email string, displayName *string) (*domain.User, error) {
		return nil, repoErr
	}

	_, err := authService.AuthenticateUser("auth0|abc123", "ada@example.com", nil)
	if !errors.Is(err, repoErr) {
		t.Errorf("Expected repository error to propagate, got %v", err)
	}
}

func TestUpdateDisplayName_NotFound(t *testing.T) {
	authService := NewAuthService(testutil.NewMockUserRepository(), testutil.NewMockSettingsRepository())

	_, err := authService.UpdateDisplayName(uuid.New(), "New Name")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
