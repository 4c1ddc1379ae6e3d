package service

import (
	"strings"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/websocket"
	"github.com/google/uuid"
)

// CategoryService handles expense category business logic
type CategoryService struct {
	categoryRepo   domain.CategoryRepository
	eventPublisher websocket.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *CategoryService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CategoryService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// validateCategoryFields normalizes and validates name, color and icon.
// Empty color and icon fall back to the defaults.
func validateCategoryFields(name, color, icon string) (string, string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return "", "", "", domain.ErrNameTooLong
	}

	if color == "" {
		color = domain.DefaultCategoryColor
	}
	if !validHexColor(color) {
		return "", "", "", domain.ErrInvalidColor
	}

	if icon == "" {
		icon = domain.DefaultCategoryIcon
	}
	if !domain.CategoryIcons[icon] {
		return "", "", "", domain.ErrInvalidIcon
	}

	return name, color, icon, nil
}

// validHexColor accepts #RGB and #RRGGBB
func validHexColor(c string) bool {
	if len(c) != 4 && len(c) != 7 {
		return false
	}
	if c[0] != '#' {
		return false
	}
	for _, r := range c[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(userID uuid.UUID, name, color, icon string) (*domain.Category, error) {
	name, color, icon, err := validateCategoryFields(name, color, icon)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.Create(&domain.Category{
		UserID: userID,
		Name:   name,
		Color:  color,
		Icon:   icon,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.CategoryCreated(category))
	return category, nil
}

// GetCategories retrieves all categories for a user
func (s *CategoryService) GetCategories(userID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryRepo.GetAllByUser(userID)
}

// GetCategoryByID retrieves a single category
func (s *CategoryService) GetCategoryByID(userID, id uuid.UUID) (*domain.Category, error) {
	return s.categoryRepo.GetByID(userID, id)
}

// UpdateCategory updates a category's name, color and icon
func (s *CategoryService) UpdateCategory(userID, id uuid.UUID, name, color, icon string) (*domain.Category, error) {
	name, color, icon, err := validateCategoryFields(name, color, icon)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.Update(userID, id, name, color, icon)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.CategoryUpdated(category))
	return category, nil
}

// DeleteCategory removes a category. Expenses that reference it keep
// their reference and fall back to "Uncategorized" in aggregations.
func (s *CategoryService) DeleteCategory(userID, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.CategoryDeleted(map[string]string{"id": id.String()}))
	return nil
}
