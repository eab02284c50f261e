package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/finledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetMonth is one calendar month of household budgeting. There is at most
// one BudgetMonth per calendar month.
type BudgetMonth struct {
	DefaultModel
	Month types.Month `json:"month" gorm:"uniqueIndex"`
	Note  string      `json:"note"`
}

func (m *BudgetMonth) BeforeSave(_ *gorm.DB) error {
	m.Note = strings.TrimSpace(m.Note)
	return nil
}

// MonthStatistics are the live aggregates of a budget month. Nothing here is
// stored, every value is recomputed from the current rows on each call.
//
// The projected track is the plan: projected income buckets against budgeted
// amounts. The live track is reality: actual cash position against what is
// still owed.
type MonthStatistics struct {
	ProjectedIncome    decimal.Decimal `json:"projectedIncome" example:"13200.00"`    // Sum of non-live income entries
	ProjectedExpenses  decimal.Decimal `json:"projectedExpenses" example:"14341.13"`  // Sum of budgeted amounts
	ProjectedRemainder decimal.Decimal `json:"projectedRemainder" example:"-1141.13"` // Projected income - projected expenses
	LiveIncome         decimal.Decimal `json:"liveIncome" example:"9000.00"`          // Sum of live income entries
	LiveExpenses       decimal.Decimal `json:"liveExpenses" example:"8948.13"`        // Sum of paid amounts
	PaymentDue         decimal.Decimal `json:"paymentDue" example:"5393.00"`          // Sum of per-item remainders, what is still owed
	LiveRemainder      decimal.Decimal `json:"liveRemainder" example:"3607.00"`       // Live income - payment due
}

// CreateBudgetMonth creates the budget month containing date and materializes
// line items from all active recurring expense templates.
//
// The date is normalized to the first day of its calendar month. When a
// budget month already exists for that month, ErrMonthExists is returned with
// the human readable month name.
//
// The month row and all derived line items are written in a single database
// transaction: either everything is committed or no rows exist afterwards.
func CreateBudgetMonth(db *gorm.DB, date time.Time) (BudgetMonth, error) {
	month := types.MonthOf(date)

	var count int64
	err := db.Model(&BudgetMonth{}).Where("month = ?", month).Count(&count).Error
	if err != nil {
		return BudgetMonth{}, err
	}

	if count > 0 {
		return BudgetMonth{}, fmt.Errorf("%w %s", ErrMonthExists, month.Name())
	}

	budgetMonth := BudgetMonth{Month: month}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&budgetMonth).Error; err != nil {
			return err
		}

		// One-off and inactive templates are never copied automatically
		var templates []BudgetExpenseTemplate
		err := tx.
			Where("active = ?", true).
			Where("frequency = ?", FrequencyRecurring).
			Order("sort_order ASC, name ASC").
			Find(&templates).
			Error
		if err != nil {
			return err
		}

		for _, template := range templates {
			templateID := template.ID

			item := BudgetLineItem{
				BudgetMonthID:  budgetMonth.ID,
				TemplateID:     &templateID,
				CategoryID:     template.CategoryID,
				Name:           template.Name,
				BudgetedAmount: template.Amount,
				PaidAmount:     decimal.Zero,
				SortOrder:      template.SortOrder,
			}

			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return BudgetMonth{}, err
	}

	return budgetMonth, nil
}

// sumLineItems sums an expression over all live line items of the month.
func (m BudgetMonth) sumLineItems(db *gorm.DB, expression string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("budget_line_items").
		Select(expression).
		Where("budget_month_id = ?", m.ID).
		Where("deleted_at IS NULL").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// sumIncomeEntries sums the amounts of all income entries on one track.
func (m BudgetMonth) sumIncomeEntries(db *gorm.DB, live bool) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("budget_income_entries").
		Select("SUM(amount)").
		Where("budget_month_id = ?", m.ID).
		Where("live = ?", live).
		Where("deleted_at IS NULL").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// ProjectedIncome is the sum of all projected income buckets.
func (m BudgetMonth) ProjectedIncome(db *gorm.DB) (decimal.Decimal, error) {
	return m.sumIncomeEntries(db, false)
}

// LiveIncome is the sum of all live income buckets.
func (m BudgetMonth) LiveIncome(db *gorm.DB) (decimal.Decimal, error) {
	return m.sumIncomeEntries(db, true)
}

// ProjectedExpenses is the sum of all budgeted amounts.
func (m BudgetMonth) ProjectedExpenses(db *gorm.DB) (decimal.Decimal, error) {
	return m.sumLineItems(db, "SUM(budgeted_amount)")
}

// LiveExpenses is the sum of all paid amounts.
func (m BudgetMonth) LiveExpenses(db *gorm.DB) (decimal.Decimal, error) {
	return m.sumLineItems(db, "SUM(paid_amount)")
}

// PaymentDue is the sum of the per-item remainders, what is still owed this
// month. It goes negative when items are over-paid, the sum is never clamped
// to zero.
func (m BudgetMonth) PaymentDue(db *gorm.DB) (decimal.Decimal, error) {
	return m.sumLineItems(db, "SUM(budgeted_amount - paid_amount)")
}

// ProjectedRemainder is projected income minus projected expenses.
func (m BudgetMonth) ProjectedRemainder(db *gorm.DB) (decimal.Decimal, error) {
	income, err := m.ProjectedIncome(db)
	if err != nil {
		return decimal.Zero, err
	}

	expenses, err := m.ProjectedExpenses(db)
	if err != nil {
		return decimal.Zero, err
	}

	return income.Sub(expenses), nil
}

// LiveRemainder is live income minus payment due.
func (m BudgetMonth) LiveRemainder(db *gorm.DB) (decimal.Decimal, error) {
	income, err := m.LiveIncome(db)
	if err != nil {
		return decimal.Zero, err
	}

	due, err := m.PaymentDue(db)
	if err != nil {
		return decimal.Zero, err
	}

	return income.Sub(due), nil
}

// Statistics computes all aggregates of both tracks.
func (m BudgetMonth) Statistics(db *gorm.DB) (MonthStatistics, error) {
	var s MonthStatistics
	var err error

	s.ProjectedIncome, err = m.ProjectedIncome(db)
	if err != nil {
		return MonthStatistics{}, err
	}

	s.ProjectedExpenses, err = m.ProjectedExpenses(db)
	if err != nil {
		return MonthStatistics{}, err
	}

	s.LiveIncome, err = m.LiveIncome(db)
	if err != nil {
		return MonthStatistics{}, err
	}

	s.LiveExpenses, err = m.LiveExpenses(db)
	if err != nil {
		return MonthStatistics{}, err
	}

	s.PaymentDue, err = m.PaymentDue(db)
	if err != nil {
		return MonthStatistics{}, err
	}

	s.ProjectedRemainder = s.ProjectedIncome.Sub(s.ProjectedExpenses)
	s.LiveRemainder = s.LiveIncome.Sub(s.PaymentDue)

	return s, nil
}

// LineItems returns all line items of the month, in display order.
func (m BudgetMonth) LineItems(db *gorm.DB) ([]BudgetLineItem, error) {
	var items []BudgetLineItem

	err := db.
		Where(&BudgetLineItem{BudgetMonthID: m.ID}).
		Order("sort_order ASC, name ASC").
		Find(&items).
		Error

	return items, err
}

// IncomeEntries returns all income entries of the month.
func (m BudgetMonth) IncomeEntries(db *gorm.DB) ([]BudgetIncomeEntry, error) {
	var entries []BudgetIncomeEntry

	err := db.
		Where(&BudgetIncomeEntry{BudgetMonthID: m.ID}).
		Order("label ASC").
		Find(&entries).
		Error

	return entries, err
}
