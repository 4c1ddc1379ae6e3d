package service

import (
	"strings"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeService handles income source business logic
type IncomeService struct {
	incomeRepo     domain.IncomeSourceRepository
	eventPublisher websocket.EventPublisher
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo domain.IncomeSourceRepository) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *IncomeService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *IncomeService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// IncomeOverview is the user's income sources plus the normalized
// monthly total over the active ones
type IncomeOverview struct {
	Sources      []*domain.IncomeSource `json:"sources"`
	MonthlyTotal decimal.Decimal        `json:"monthlyTotal"`
}

// CreateIncomeInput carries the fields for a new income source
type CreateIncomeInput struct {
	SourceType  domain.IncomeSourceType
	Amount      decimal.Decimal
	Description *string
	Frequency   domain.IncomeFrequency
	Currency    string
}

// CreateIncomeSource validates and records a new income source.
// New sources start active.
func (s *IncomeService) CreateIncomeSource(userID uuid.UUID, input CreateIncomeInput) (*domain.IncomeSource, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domain.ErrAmountRequired
	}
	if !domain.ValidIncomeFrequency(input.Frequency) {
		return nil, domain.ErrInvalidFrequency
	}
	if input.SourceType != domain.IncomeSourceSalary && input.SourceType != domain.IncomeSourceAdditional {
		return nil, domain.ErrInvalidInput
	}

	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			input.Description = nil
		} else {
			input.Description = &trimmed
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if !domain.SupportedCurrencies[currency] {
		return nil, domain.ErrInvalidCurrency
	}

	source, err := s.incomeRepo.Create(&domain.IncomeSource{
		UserID:      userID,
		SourceType:  input.SourceType,
		Amount:      input.Amount,
		Description: input.Description,
		Frequency:   input.Frequency,
		Active:      true,
		Currency:    currency,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.IncomeSourceCreated(source))
	return source, nil
}

// GetIncomeOverview retrieves all income sources plus their normalized
// monthly total
func (s *IncomeService) GetIncomeOverview(userID uuid.UUID) (*IncomeOverview, error) {
	sources, err := s.incomeRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	return &IncomeOverview{
		Sources:      sources,
		MonthlyTotal: MonthlyIncomeTotal(sources),
	}, nil
}

// ToggleIncomeSource flips a source's active flag
func (s *IncomeService) ToggleIncomeSource(userID, id uuid.UUID) (*domain.IncomeSource, error) {
	source, err := s.incomeRepo.ToggleActive(userID, id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.IncomeSourceToggled(source))
	return source, nil
}

// DeleteIncomeSource removes an income source
func (s *IncomeService) DeleteIncomeSource(userID, id uuid.UUID) error {
	if err := s.incomeRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.IncomeSourceDeleted(map[string]string{"id": id.String()}))
	return nil
}
