package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionStatus is the confirmation state of a transaction.
//
// A pending transaction is recorded but not yet confirmed by the card issuer.
// Posted is the terminal state, a posted transaction never becomes pending
// again.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusPosted  TransactionStatus = "posted"
)

// Valid reports whether the status is one of the known values.
func (s TransactionStatus) Valid() bool {
	return s == StatusPending || s == StatusPosted
}

// TransactionType categorizes a transaction and determines the sign its
// amount must carry. Display concerns (labels, badge colors) are mapped in
// the presentation layer, not here.
type TransactionType string

const (
	TypeCharge  TransactionType = "charge"
	TypePayment TransactionType = "payment"
	TypeRefund  TransactionType = "refund"
	TypeFee     TransactionType = "fee"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return slices.Contains([]TransactionType{TypeCharge, TypePayment, TypeRefund, TypeFee}, t)
}

// Sign returns the sign amounts of this type must carry:
// 1 for charges and fees, -1 for payments and refunds.
func (t TransactionType) Sign() int {
	if t == TypePayment || t == TypeRefund {
		return -1
	}

	return 1
}

// Transaction is a single entry in a credit card ledger.
type Transaction struct {
	DefaultModel
	CreditCardID uuid.UUID  `json:"creditCardId" gorm:"index"`
	CreditCard   CreditCard `json:"-"`
	Date         time.Time  `json:"date"`
	Description  string     `json:"description"`
	Amount       decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,2)"`
	Status       TransactionStatus `json:"status"`
	Type         TransactionType   `json:"type"`
	Note         string            `json:"note"`
	ExternalRef  string            `json:"externalRef"`
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// EnforceSignConvention flips the amount sign when it does not match the
// declared type: charges and fees are stored positive, payments and refunds
// negative. A payment submitted as 50.00 is stored as -50.00.
//
// The correction is silent. A user entering a positive payment amount is
// making an honest mistake, not an error worth rejecting.
func (t *Transaction) EnforceSignConvention() {
	expected := t.Type.Sign()

	actual := 1
	if t.Amount.IsNegative() {
		actual = -1
	}

	if expected != actual {
		t.Amount = t.Amount.Abs().Mul(decimal.NewFromInt(int64(expected)))
	}
}

// normalize trims whitespace and fills defaults shared by create and update.
func (t *Transaction) normalize() {
	t.Description = strings.TrimSpace(t.Description)
	t.Note = strings.TrimSpace(t.Note)
	t.ExternalRef = strings.TrimSpace(t.ExternalRef)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}
}

// CreateTransaction validates and persists a new ledger entry.
//
// Validation and sign correction are explicit calls here instead of gorm
// hooks so that the invariants are part of the package's public contract and
// directly testable.
func CreateTransaction(db *gorm.DB, t *Transaction) error {
	if t.CreditCardID == uuid.Nil {
		return ErrTransactionNoCard
	}

	if t.Type == "" {
		t.Type = TypeCharge
	}
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Status == "" {
		t.Status = StatusPending
	}
	if !t.Status.Valid() {
		return ErrStatusInvalid
	}

	// Verify the card exists to return a friendly error instead of a
	// foreign key violation
	err := db.First(&CreditCard{}, t.CreditCardID).Error
	if err != nil {
		return err
	}

	t.normalize()
	t.EnforceSignConvention()

	return db.Create(t).Error
}

// UpdateTransaction applies a partial update to a ledger entry. fields names
// the Transaction struct fields that the caller wants to change.
//
// Two invariants are enforced here regardless of what the caller submits:
//
//   - The amount sign is corrected whenever the amount or the type changes.
//   - The status only ever moves from pending to posted. When the stored status is
//     posted and the update attempts pending, the status field is discarded
//     silently and all other fields still apply.
func UpdateTransaction(db *gorm.DB, t *Transaction, update Transaction, fields []string) error {
	if slices.Contains(fields, "Type") && !update.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if slices.Contains(fields, "Status") {
		if !update.Status.Valid() {
			return ErrStatusInvalid
		}

		if t.Status == StatusPosted && update.Status == StatusPending {
			i := slices.Index(fields, "Status")
			fields = slices.Delete(fields, i, i+1)
		}
	}

	// Re-apply the sign convention whenever the amount or the type changes.
	// A type change alone can flip the sign of the stored amount, so the
	// amount is always written in that case.
	if slices.Contains(fields, "Amount") || slices.Contains(fields, "Type") {
		effective := Transaction{
			Amount: t.Amount,
			Type:   t.Type,
		}

		if slices.Contains(fields, "Amount") {
			effective.Amount = update.Amount
		}
		if slices.Contains(fields, "Type") {
			effective.Type = update.Type
		}

		effective.EnforceSignConvention()
		update.Amount = effective.Amount

		if !slices.Contains(fields, "Amount") {
			fields = append(fields, "Amount")
		}
	}

	if len(fields) == 0 {
		return nil
	}

	return db.Model(t).Select(fields).Updates(update).Error
}

// RestoreTransaction clears the soft delete timestamp of a transaction.
// Restoration is unconditionally allowed.
//
// There is no counterpart that drops the row. Physical deletion of ledger
// entries requires out-of-band database access.
func RestoreTransaction(db *gorm.DB, id uuid.UUID) (Transaction, error) {
	var transaction Transaction

	err := db.Unscoped().First(&transaction, id).Error
	if err != nil {
		return Transaction{}, err
	}

	err = db.Unscoped().Model(&transaction).Update("deleted_at", nil).Error
	if err != nil {
		return Transaction{}, err
	}

	transaction.DeletedAt = nil
	return transaction, nil
}
