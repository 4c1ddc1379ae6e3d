package service

import (
	"errors"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuthService handles authentication-related business logic
type AuthService struct {
	userRepo     domain.UserRepository
	settingsRepo domain.SettingsRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, settingsRepo domain.SettingsRepository) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

// AuthResult represents the result of an authentication operation
type AuthResult struct {
	User      *domain.User
	Settings  *domain.Settings
	IsNewUser bool
}

// AuthenticateUser handles the authentication flow after Auth0 callback.
// Creates the user on first sign-in; settings fall back to defaults until
// the user saves their own.
func (s *AuthService) AuthenticateUser(auth0ID, email string, displayName *string) (*AuthResult, error) {
	user, err := s.userRepo.GetByAuth0ID(auth0ID)
	isNew := false
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to look up user")
			return nil, err
		}
		user, err = s.userRepo.CreateOrGetByAuth0ID(auth0ID, email, displayName)
		if err != nil {
			log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to create or get user")
			return nil, err
		}
		isNew = true
		log.Info().Str("user_id", user.ID.String()).Msg("Created new user")
	}

	settings, err := s.settingsRepo.Get(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to load settings")
		return nil, err
	}

	return &AuthResult{
		User:      user,
		Settings:  settings,
		IsNewUser: isNew,
	}, nil
}

// GetUserByID retrieves a user by their ID
func (s *AuthService) GetUserByID(id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByAuth0ID retrieves a user by their Auth0 ID
func (s *AuthService) GetUserByAuth0ID(auth0ID string) (*domain.User, error) {
	return s.userRepo.GetByAuth0ID(auth0ID)
}

// UpdateDisplayName changes the user's display name
func (s *AuthService) UpdateDisplayName(id uuid.UUID, displayName string) (*domain.User, error) {
	return s.userRepo.UpdateDisplayName(id, displayName)
}
