package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrMonthExists is wrapped with the human readable month name when a
	// budget month is created for a month that already has one.
	ErrMonthExists = errors.New("a budget month already exists for")

	ErrCategoryNameNotUnique = errors.New("a budget category with this name already exists")

	ErrTransactionNoCard       = errors.New("a transaction must reference the credit card it belongs to")
	ErrLineItemNoMonth         = errors.New("a line item must reference the budget month it belongs to")
	ErrIncomeEntryNoMonth      = errors.New("an income entry must reference the budget month it belongs to")
	ErrTransactionTypeInvalid  = errors.New("the transaction type must be one of: charge, payment, refund, fee")
	ErrStatusInvalid           = errors.New("the transaction status must be one of: pending, posted")
	ErrIncomeTypeInvalid       = errors.New("the income source type must be one of: salary, rental, other")
	ErrFrequencyInvalid        = errors.New("the template frequency must be one of: recurring, one_off")
	ErrCreditLimitNegative     = errors.New("the credit limit must not be negative")
	ErrAmountNegative          = errors.New("the amount must not be negative")
	ErrLineItemAmountsNegative = errors.New("budgeted and paid amounts must not be negative")
)
