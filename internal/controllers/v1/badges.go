package v1

import (
	"github.com/finledger/backend/internal/models"
)

// Badge is the display representation of an enum value. Clients render it
// as-is, the label and color are decided here and nowhere else.
//
// The domain enums themselves stay free of display concerns, they only
// determine behavior like the sign an amount must carry.
type Badge struct {
	Value string `json:"value" example:"payment"` // The raw enum value
	Label string `json:"label" example:"Payment"` // Human readable label
	Color string `json:"color" example:"green"`   // Display color name
}

// statusBadge maps a transaction status to its display badge.
func statusBadge(status models.TransactionStatus) Badge {
	switch status {
	case models.StatusPosted:
		return Badge{Value: string(status), Label: "Posted", Color: "green"}
	default:
		return Badge{Value: string(status), Label: "Pending", Color: "yellow"}
	}
}

// typeBadge maps a transaction type to its display badge.
func typeBadge(t models.TransactionType) Badge {
	switch t {
	case models.TypePayment:
		return Badge{Value: string(t), Label: "Payment", Color: "green"}
	case models.TypeRefund:
		return Badge{Value: string(t), Label: "Refund", Color: "blue"}
	case models.TypeFee:
		return Badge{Value: string(t), Label: "Fee", Color: "yellow"}
	default:
		return Badge{Value: string(t), Label: "Charge", Color: "red"}
	}
}

// incomeTypeBadge maps an income source type to its display badge.
func incomeTypeBadge(t models.IncomeSourceType) Badge {
	switch t {
	case models.IncomeSalary:
		return Badge{Value: string(t), Label: "Salary", Color: "green"}
	case models.IncomeRental:
		return Badge{Value: string(t), Label: "Rental", Color: "blue"}
	default:
		return Badge{Value: string(t), Label: "Other", Color: "gray"}
	}
}

// paymentStateBadge maps a derived payment state to its display badge.
func paymentStateBadge(s models.PaymentState) Badge {
	switch s {
	case models.PaymentStatePaid:
		return Badge{Value: string(s), Label: "Paid", Color: "green"}
	case models.PaymentStatePartial:
		return Badge{Value: string(s), Label: "Partially paid", Color: "yellow"}
	default:
		return Badge{Value: string(s), Label: "Unpaid", Color: "red"}
	}
}

// frequencyBadge maps a template frequency to its display badge.
func frequencyBadge(f models.ExpenseFrequency) Badge {
	switch f {
	case models.FrequencyOneOff:
		return Badge{Value: string(f), Label: "One-off", Color: "yellow"}
	default:
		return Badge{Value: string(f), Label: "Recurring", Color: "green"}
	}
}
