package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CreditCard is a credit card whose transactions are tracked in the ledger.
type CreditCard struct {
	DefaultModel
	Name        string          `json:"name"`
	Currency    string          `json:"currency"` // Fixed at creation, updates discard this field
	CreditLimit decimal.Decimal `json:"creditLimit" gorm:"type:DECIMAL(20,2)"`
	OpenedAt    *time.Time      `json:"openedAt"`
}

// Balances are the live aggregates for a card. They are never stored,
// every value is computed from the current transaction rows on each call.
type Balances struct {
	Posted          decimal.Decimal `json:"posted" example:"120.50"`           // Sum of posted transaction amounts
	Pending         decimal.Decimal `json:"pending" example:"-50.00"`          // Sum of pending transaction amounts
	TrueBalance     decimal.Decimal `json:"trueBalance" example:"70.50"`       // Posted + pending, the amount actually owed
	AvailableCredit decimal.Decimal `json:"availableCredit" example:"4929.50"` // Credit limit - TRUE balance, negative when over limit
}

// CreateCreditCard validates and persists a new card.
func CreateCreditCard(db *gorm.DB, c *CreditCard) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.CreditLimit.IsNegative() {
		return ErrCreditLimitNegative
	}

	return db.Create(c).Error
}

// UpdateCreditCard applies a partial update to a card. The currency is fixed
// at creation: when the update includes it, the field is discarded and the
// stored value is kept.
func UpdateCreditCard(db *gorm.DB, c *CreditCard, update CreditCard, fields []string) error {
	if i := slices.Index(fields, "Currency"); i >= 0 {
		fields = slices.Delete(fields, i, i+1)
	}

	if slices.Contains(fields, "CreditLimit") && update.CreditLimit.IsNegative() {
		return ErrCreditLimitNegative
	}

	if len(fields) == 0 {
		return nil
	}

	return db.Model(c).Select(fields).Updates(update).Error
}

// sumTransactions sums the amounts of all live transactions of the card with
// the given status.
func (c CreditCard) sumTransactions(db *gorm.DB, status TransactionStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("credit_card_id = ?", c.ID).
		Where("status = ?", status).
		Where("deleted_at IS NULL").
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// No matching transactions
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// PostedBalance is the sum of all posted transaction amounts.
func (c CreditCard) PostedBalance(db *gorm.DB) (decimal.Decimal, error) {
	return c.sumTransactions(db, StatusPosted)
}

// PendingCharges is the sum of all pending transaction amounts.
func (c CreditCard) PendingCharges(db *gorm.DB) (decimal.Decimal, error) {
	return c.sumTransactions(db, StatusPending)
}

// TrueBalance is what is actually owed on the card right now: posted plus
// pending amounts. Payments reduce it automatically via the sign convention.
func (c CreditCard) TrueBalance(db *gorm.DB) (decimal.Decimal, error) {
	posted, err := c.PostedBalance(db)
	if err != nil {
		return decimal.Zero, err
	}

	pending, err := c.PendingCharges(db)
	if err != nil {
		return decimal.Zero, err
	}

	return posted.Add(pending), nil
}

// AvailableCredit is how much credit remains before the limit is reached.
// A negative value means the card is over limit.
func (c CreditCard) AvailableCredit(db *gorm.DB) (decimal.Decimal, error) {
	trueBalance, err := c.TrueBalance(db)
	if err != nil {
		return decimal.Zero, err
	}

	return c.CreditLimit.Sub(trueBalance), nil
}

// WithBalances computes all four card aggregates.
func (c CreditCard) WithBalances(db *gorm.DB) (Balances, error) {
	var b Balances
	var err error

	b.Posted, err = c.PostedBalance(db)
	if err != nil {
		return Balances{}, err
	}

	b.Pending, err = c.PendingCharges(db)
	if err != nil {
		return Balances{}, err
	}

	b.TrueBalance = b.Posted.Add(b.Pending)
	b.AvailableCredit = c.CreditLimit.Sub(b.TrueBalance)

	return b, nil
}
