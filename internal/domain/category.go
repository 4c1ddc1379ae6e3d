package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryIcons is the fixed icon set a category may reference.
// Keys mirror the icon names the front-end maps to glyphs.
var CategoryIcons = map[string]bool{
	"dollar-sign":  true,
	"home":         true,
	"car":          true,
	"shopping-bag": true,
	"coffee":       true,
	"gamepad-2":    true,
	"heart":        true,
	"plane":        true,
	"book":         true,
	"shirt":        true,
	"utensils":     true,
}

const (
	DefaultCategoryIcon  = "dollar-sign"
	DefaultCategoryColor = "#3B82F6"

	// UncategorizedLabel is the group label used when an expense's
	// category reference does not resolve (never created, or deleted
	// after the fact - references are weak and not cascade-cleaned).
	UncategorizedLabel = "Uncategorized"
)

type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(userID, id uuid.UUID) (*Category, error)
	GetAllByUser(userID uuid.UUID) ([]*Category, error)
	Update(userID, id uuid.UUID, name, color, icon string) (*Category, error)
	Delete(userID, id uuid.UUID) error
}
