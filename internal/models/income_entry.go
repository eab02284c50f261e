package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// IncomeSourceType categorizes where an income entry comes from.
type IncomeSourceType string

const (
	IncomeSalary IncomeSourceType = "salary"
	IncomeRental IncomeSourceType = "rental"
	IncomeOther  IncomeSourceType = "other"
)

// Valid reports whether the type is one of the known values.
func (t IncomeSourceType) Valid() bool {
	return slices.Contains([]IncomeSourceType{IncomeSalary, IncomeRental, IncomeOther}, t)
}

// BudgetIncomeEntry is an income bucket within a budget month.
//
// Live entries (Live = true) describe the actual cash position, entries with
// Live = false are projected income used for planning. The two tracks are
// aggregated separately.
type BudgetIncomeEntry struct {
	DefaultModel
	BudgetMonthID uuid.UUID        `json:"budgetMonthId" gorm:"index"`
	BudgetMonth   BudgetMonth      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Label         string           `json:"label"`
	Type          IncomeSourceType `json:"type"`
	Amount        decimal.Decimal  `json:"amount" gorm:"type:DECIMAL(20,2)"`
	Note          string           `json:"note"`
	Live          bool             `json:"live"`
}

func (e *BudgetIncomeEntry) BeforeSave(_ *gorm.DB) error {
	e.Label = strings.TrimSpace(e.Label)
	e.Note = strings.TrimSpace(e.Note)

	return nil
}

// CreateIncomeEntry validates and persists a new income entry.
func CreateIncomeEntry(db *gorm.DB, e *BudgetIncomeEntry) error {
	if e.BudgetMonthID == uuid.Nil {
		return ErrIncomeEntryNoMonth
	}

	if e.Type == "" {
		e.Type = IncomeOther
	}
	if !e.Type.Valid() {
		return ErrIncomeTypeInvalid
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	err := db.First(&BudgetMonth{}, e.BudgetMonthID).Error
	if err != nil {
		return err
	}

	return db.Create(e).Error
}
