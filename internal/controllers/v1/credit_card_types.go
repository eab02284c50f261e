package v1

import (
	"fmt"
	"time"

	"github.com/finledger/backend/internal/models"
	"github.com/finledger/backend/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreditCardEditable struct {
	Name        string          `json:"name" example:"Sapphire Visa" default:""`                      // Name of the card
	Currency    string          `json:"currency" example:"USD" default:"USD"`                         // Currency, fixed at creation
	CreditLimit decimal.Decimal `json:"creditLimit" example:"5000.00" minimum:"0.00" multipleOf:"0.01"` // The credit limit of the card
	OpenedAt    *time.Time      `json:"openedAt" example:"2019-03-01T00:00:00Z"`                      // Date the card was opened
}

// model returns the database resource for the API representation of the editable fields
func (editable CreditCardEditable) model() models.CreditCard {
	return models.CreditCard{
		Name:        editable.Name,
		Currency:    editable.Currency,
		CreditLimit: editable.CreditLimit,
		OpenedAt:    editable.OpenedAt,
	}
}

// BalanceStrings are the balances of a card formatted for display,
// e.g. "-$1,234.50".
type BalanceStrings struct {
	Posted          string `json:"posted" example:"$120.50"`
	Pending         string `json:"pending" example:"-$50.00"`
	TrueBalance     string `json:"trueBalance" example:"$70.50"`
	AvailableCredit string `json:"availableCredit" example:"$4,929.50"`
}

type CreditCardLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/cards/d430d7c3-d14c-4712-9336-ee56965a6673"`              // The card itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?card=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions referencing the card
}

// CreditCard is the representation of a CreditCard in API v1.
type CreditCard struct {
	models.DefaultModel
	CreditCardEditable
	Balances  models.Balances `json:"balances"`  // Live aggregates, recomputed on every request
	Formatted BalanceStrings  `json:"formatted"` // The balances as display strings
	Links     CreditCardLinks `json:"links"`
}

// newCreditCard returns the API v1 representation of the resource,
// including the live balances.
func newCreditCard(c *gin.Context, model models.CreditCard) (CreditCard, error) {
	url := c.GetString(string(models.DBContextURL))

	balances, err := model.WithBalances(models.DB)
	if err != nil {
		return CreditCard{}, err
	}

	return CreditCard{
		DefaultModel: model.DefaultModel,
		CreditCardEditable: CreditCardEditable{
			Name:        model.Name,
			Currency:    model.Currency,
			CreditLimit: model.CreditLimit,
			OpenedAt:    model.OpenedAt,
		},
		Balances: balances,
		Formatted: BalanceStrings{
			Posted:          money.Format(balances.Posted),
			Pending:         money.Format(balances.Pending),
			TrueBalance:     money.Format(balances.TrueBalance),
			AvailableCredit: money.Format(balances.AvailableCredit),
		},
		Links: CreditCardLinks{
			Self:         fmt.Sprintf("%s/v1/cards/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?card=%s", url, model.ID),
		},
	}, nil
}

type CreditCardListResponse struct {
	Data       []CreditCard `json:"data"`                                                          // List of cards
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type CreditCardResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *CreditCard `json:"data"`                                                          // The card data, if the request was successful
}

type CreditCardQueryFilter struct {
	Name     string `form:"name" filterField:"false"`     // Filter by name, case insensitive contains
	Currency string `form:"currency"`                     // Filter by currency
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first card returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of cards to return. Defaults to 50.
}

func (f CreditCardQueryFilter) model() models.CreditCard {
	return models.CreditCard{
		Currency: f.Currency,
	}
}
