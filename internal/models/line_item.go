package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentState is the derived payment progress of a line item. It is never
// stored, it follows directly from the two amounts.
type PaymentState string

const (
	PaymentStateUnpaid  PaymentState = "unpaid"
	PaymentStatePartial PaymentState = "partial"
	PaymentStatePaid    PaymentState = "paid"
)

// BudgetLineItem is one budgeted expense within a budget month.
//
// Line items are either materialized from a recurring template during month
// creation or added by hand. The back-reference to the template is nulled
// when the template is deleted.
type BudgetLineItem struct {
	DefaultModel
	BudgetMonthID  uuid.UUID              `json:"budgetMonthId" gorm:"index"`
	BudgetMonth    BudgetMonth            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TemplateID     *uuid.UUID             `json:"templateId"`
	Template       *BudgetExpenseTemplate `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	CategoryID     *uuid.UUID             `json:"categoryId"`
	Category       *BudgetCategory        `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Name           string                 `json:"name"`
	BudgetedAmount decimal.Decimal        `json:"budgetedAmount" gorm:"type:DECIMAL(20,2)"`
	PaidAmount     decimal.Decimal        `json:"paidAmount" gorm:"type:DECIMAL(20,2)"`
	Note           string                 `json:"note"`
	Remarks        string                 `json:"remarks"`
	SortOrder      int                    `json:"sortOrder"`
}

func (l *BudgetLineItem) BeforeSave(_ *gorm.DB) error {
	l.Name = strings.TrimSpace(l.Name)
	l.Note = strings.TrimSpace(l.Note)
	l.Remarks = strings.TrimSpace(l.Remarks)

	if l.TemplateID != nil && *l.TemplateID == uuid.Nil {
		l.TemplateID = nil
	}
	if l.CategoryID != nil && *l.CategoryID == uuid.Nil {
		l.CategoryID = nil
	}

	return nil
}

// Remainder is what is still owed on this item: budgeted - paid. It goes
// negative when an item is over-paid, the value is never clamped to zero.
func (l BudgetLineItem) Remainder() decimal.Decimal {
	return l.BudgetedAmount.Sub(l.PaidAmount)
}

// PaymentState derives the payment progress from the two amounts.
func (l BudgetLineItem) PaymentState() PaymentState {
	switch {
	case l.PaidAmount.IsZero() || l.PaidAmount.IsNegative():
		return PaymentStateUnpaid
	case l.PaidAmount.Cmp(l.BudgetedAmount) < 0:
		return PaymentStatePartial
	default:
		return PaymentStatePaid
	}
}

// CreateLineItem validates and persists a new line item.
func CreateLineItem(db *gorm.DB, l *BudgetLineItem) error {
	if l.BudgetMonthID == uuid.Nil {
		return ErrLineItemNoMonth
	}

	if l.BudgetedAmount.IsNegative() || l.PaidAmount.IsNegative() {
		return ErrLineItemAmountsNegative
	}

	err := db.First(&BudgetMonth{}, l.BudgetMonthID).Error
	if err != nil {
		return err
	}

	return db.Create(l).Error
}

// MarkFullyPaid records full payment of the item by setting the paid amount
// to the budgeted amount. The remainder becomes exactly zero.
func (l *BudgetLineItem) MarkFullyPaid(db *gorm.DB) error {
	return db.Model(l).Update("paid_amount", l.BudgetedAmount).Error
}
