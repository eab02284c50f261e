package v1

import (
	"fmt"
	"time"

	"github.com/finledger/backend/internal/models"
	"github.com/finledger/backend/internal/money"
	fl_uuid "github.com/finledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	CreditCardID uuid.UUID `json:"creditCardId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the card the transaction belongs to
	Date         time.Time `json:"date" example:"2024-03-12T00:00:00Z"`                         // Date of the transaction. Defaults to the current date

	// The sign of the amount is enforced from the type: charges and fees are
	// stored positive, payments and refunds negative. A mismatched sign is
	// corrected silently.
	Amount decimal.Decimal `json:"amount" example:"120.50" multipleOf:"0.01"` // The amount of the transaction

	Description string                   `json:"description" example:"Grocery store" default:""` // What the transaction was for
	Status      models.TransactionStatus `json:"status" example:"pending" default:"pending"`     // pending or posted. Once posted, a transaction never becomes pending again
	Type        models.TransactionType   `json:"type" example:"charge" default:"charge"`         // charge, payment, refund or fee
	Note        string                   `json:"note" example:"Split with Sam" default:""`       // A note
	ExternalRef string                   `json:"externalRef" example:"stmt-2024-03-0917" default:""` // Reference from the card statement
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		CreditCardID: editable.CreditCardID,
		Date:         editable.Date,
		Amount:       editable.Amount,
		Description:  editable.Description,
		Status:       editable.Status,
		Type:         editable.Type,
		Note:         editable.Note,
		ExternalRef:  editable.ExternalRef,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Card string `json:"card" example:"https://example.com/api/v1/cards/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`        // The card the transaction belongs to
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	FormattedAmount string           `json:"formattedAmount" example:"-$50.00"` // The amount as display string
	StatusBadge     Badge            `json:"statusBadge"`                       // Display badge for the status
	TypeBadge       Badge            `json:"typeBadge"`                         // Display badge for the type
	Links           TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CreditCardID: model.CreditCardID,
			Date:         model.Date,
			Amount:       model.Amount,
			Description:  model.Description,
			Status:       model.Status,
			Type:         model.Type,
			Note:         model.Note,
			ExternalRef:  model.ExternalRef,
		},
		FormattedAmount: money.Format(model.Amount),
		StatusBadge:     statusBadge(model.Status),
		TypeBadge:       typeBadge(model.Type),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Card: fmt.Sprintf("%s/v1/cards/%s", url, model.CreditCardID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	CreditCardID fl_uuid.UUID             `form:"card"`                          // Filter by card ID
	Status       models.TransactionStatus `form:"status"`                        // Filter by status
	Type         models.TransactionType   `form:"type"`                          // Filter by type
	Date         time.Time                `form:"date" filterField:"false"`      // Date of the transaction, matches on the day
	FromDate     time.Time                `form:"fromDate" filterField:"false"`  // Transactions at and after this date
	UntilDate    time.Time                `form:"untilDate" filterField:"false"` // Transactions before and at this date
	Description  string                   `form:"description" filterField:"false"` // Filter by description, case insensitive contains
	Note         string                   `form:"note" filterField:"false"`      // Filter by note, case insensitive contains
	ExternalRef  string                   `form:"externalRef"`                   // Filter by statement reference
	Archived     bool                     `form:"archived" filterField:"false"`  // Include archived transactions
	Offset       uint                     `form:"offset" filterField:"false"`    // The offset of the first transaction returned. Defaults to 0.
	Limit        int                      `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		CreditCardID: f.CreditCardID.UUID,
		Status:       f.Status,
		Type:         f.Type,
		ExternalRef:  f.ExternalRef,
	}
}
