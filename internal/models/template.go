package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseFrequency controls whether a template is copied into new budget
// months automatically.
type ExpenseFrequency string

const (
	// FrequencyRecurring templates are materialized into every new budget month.
	FrequencyRecurring ExpenseFrequency = "recurring"
	// FrequencyOneOff templates must be added to a month by hand, never automatically.
	FrequencyOneOff ExpenseFrequency = "one_off"
)

// Valid reports whether the frequency is one of the known values.
func (f ExpenseFrequency) Valid() bool {
	return f == FrequencyRecurring || f == FrequencyOneOff
}

// BudgetExpenseTemplate is a reusable expense definition. Active recurring
// templates seed the line items of every newly created budget month.
type BudgetExpenseTemplate struct {
	DefaultModel
	Name       string          `json:"name"`
	CategoryID *uuid.UUID      `json:"categoryId"`
	Category   *BudgetCategory `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,2)"` // Default budgeted value
	Frequency  ExpenseFrequency `json:"frequency"`
	Active     bool             `json:"active"`
	SortOrder  int              `json:"sortOrder"`
	Note       string           `json:"note"`
}

func (t *BudgetExpenseTemplate) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Note = strings.TrimSpace(t.Note)

	// A pointer to the nil UUID means "no category"
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	return nil
}

// CreateExpenseTemplate validates and persists a new template.
func CreateExpenseTemplate(db *gorm.DB, t *BudgetExpenseTemplate) error {
	if t.Frequency == "" {
		t.Frequency = FrequencyRecurring
	}
	if !t.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return db.Create(t).Error
}
