package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeDeleted EventType = "deleted"
	EventTypeToggled EventType = "toggled"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeExpense       EntityType = "expense"
	EntityTypeCategory      EntityType = "category"
	EntityTypeBudget        EntityType = "budget"
	EntityTypeOverallBudget EntityType = "overall_budget"
	EntityTypeIncomeSource  EntityType = "income_source"
	EntityTypeSettings      EntityType = "settings"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "expense.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "expense"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ExpenseCreated creates an expense.created event
func ExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExpense, payload)
}

// ExpenseUpdated creates an expense.updated event
func ExpenseUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeExpense, payload)
}

// ExpenseDeleted creates an expense.deleted event
func ExpenseDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeExpense, payload)
}

// CategoryCreated creates a category.created event
func CategoryCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeCategory, payload)
}

// CategoryUpdated creates a category.updated event
func CategoryUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeCategory, payload)
}

// CategoryDeleted creates a category.deleted event
func CategoryDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeCategory, payload)
}

// BudgetCreated creates a budget.created event
func BudgetCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeBudget, payload)
}

// BudgetDeleted creates a budget.deleted event
func BudgetDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeBudget, payload)
}

// OverallBudgetCreated creates an overall_budget.created event
func OverallBudgetCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeOverallBudget, payload)
}

// OverallBudgetUpdated creates an overall_budget.updated event
func OverallBudgetUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeOverallBudget, payload)
}

// OverallBudgetDeleted creates an overall_budget.deleted event
func OverallBudgetDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeOverallBudget, payload)
}

// IncomeSourceCreated creates an income_source.created event
func IncomeSourceCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeIncomeSource, payload)
}

// IncomeSourceToggled creates an income_source.toggled event
func IncomeSourceToggled(payload interface{}) Event {
	return NewEvent(EventTypeToggled, EntityTypeIncomeSource, payload)
}

// IncomeSourceDeleted creates an income_source.deleted event
func IncomeSourceDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeIncomeSource, payload)
}

// SettingsUpdated creates a settings.updated event
func SettingsUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeSettings, payload)
}
