package service

import (
	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/websocket"
	"github.com/google/uuid"
)

// SettingsService handles user preference business logic
type SettingsService struct {
	settingsRepo   domain.SettingsRepository
	eventPublisher websocket.EventPublisher
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *SettingsService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *SettingsService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// GetSettings retrieves the user's settings, falling back to defaults
// when the user has never saved any
func (s *SettingsService) GetSettings(userID uuid.UUID) (*domain.Settings, error) {
	return s.settingsRepo.Get(userID)
}

// UpdateSettings validates and persists the user's preferences
func (s *SettingsService) UpdateSettings(userID uuid.UUID, currency string, theme domain.Theme) (*domain.Settings, error) {
	if !domain.SupportedCurrencies[currency] {
		return nil, domain.ErrInvalidCurrency
	}
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return nil, domain.ErrInvalidTheme
	}

	settings, err := s.settingsRepo.Upsert(&domain.Settings{
		UserID:   userID,
		Currency: currency,
		Theme:    theme,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.SettingsUpdated(settings))
	return settings, nil
}
