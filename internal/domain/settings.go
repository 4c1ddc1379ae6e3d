package domain

import (
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// SupportedCurrencies are the currency labels the UI offers. Amounts in
// different currencies are never converted against each other; the code
// is a label carried alongside each amount.
var SupportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"INR": true,
}

const DefaultCurrency = "USD"

// Settings is the per-user preferences object. It is loaded explicitly
// and passed where needed; there is no process-wide settings state.
type Settings struct {
	UserID    uuid.UUID `json:"-"`
	Currency  string    `json:"currency"`
	Theme     Theme     `json:"theme"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings a fresh user starts with
func DefaultSettings(userID uuid.UUID) *Settings {
	return &Settings{
		UserID:   userID,
		Currency: DefaultCurrency,
		Theme:    ThemeLight,
	}
}

type SettingsRepository interface {
	Get(userID uuid.UUID) (*Settings, error)
	Upsert(settings *Settings) (*Settings, error)
}
