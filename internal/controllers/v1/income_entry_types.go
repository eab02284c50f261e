package v1

import (
	"fmt"

	"github.com/finledger/backend/internal/models"
	"github.com/finledger/backend/internal/money"
	fl_uuid "github.com/finledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IncomeEntryEditable struct {
	BudgetMonthID uuid.UUID               `json:"budgetMonthId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the budget month the entry belongs to
	Label         string                  `json:"label" example:"Paycheck" default:""`                          // Name of the income bucket
	Type          models.IncomeSourceType `json:"type" example:"salary" default:"other"`                        // salary, rental or other
	Amount        decimal.Decimal         `json:"amount" example:"6600.00" minimum:"0.00" multipleOf:"0.01"`    // The amount of the entry
	Note          string                  `json:"note" example:"After taxes" default:""`                        // A note
	Live          bool                    `json:"live" example:"false" default:"false"`                         // Live entries track the actual cash position, others are projections
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeEntryEditable) model() models.BudgetIncomeEntry {
	return models.BudgetIncomeEntry{
		BudgetMonthID: editable.BudgetMonthID,
		Label:         editable.Label,
		Type:          editable.Type,
		Amount:        editable.Amount,
		Note:          editable.Note,
		Live:          editable.Live,
	}
}

type IncomeEntryLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/income-entries/d430d7c3-d14c-4712-9336-ee56965a6673"` // The income entry itself
	Month string `json:"month" example:"https://example.com/api/v1/months/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`        // The month the entry belongs to
}

// IncomeEntry is the representation of a BudgetIncomeEntry in API v1.
type IncomeEntry struct {
	models.DefaultModel
	IncomeEntryEditable
	FormattedAmount string           `json:"formattedAmount" example:"$6,600.00"` // The amount as display string
	TypeBadge       Badge            `json:"typeBadge"`                           // Display badge for the source type
	Links           IncomeEntryLinks `json:"links"`
}

// newIncomeEntry returns the API v1 representation of the resource
func newIncomeEntry(c *gin.Context, model models.BudgetIncomeEntry) IncomeEntry {
	url := c.GetString(string(models.DBContextURL))

	return IncomeEntry{
		DefaultModel: model.DefaultModel,
		IncomeEntryEditable: IncomeEntryEditable{
			BudgetMonthID: model.BudgetMonthID,
			Label:         model.Label,
			Type:          model.Type,
			Amount:        model.Amount,
			Note:          model.Note,
			Live:          model.Live,
		},
		FormattedAmount: money.Format(model.Amount),
		TypeBadge:       incomeTypeBadge(model.Type),
		Links: IncomeEntryLinks{
			Self:  fmt.Sprintf("%s/v1/income-entries/%s", url, model.ID),
			Month: fmt.Sprintf("%s/v1/months/%s", url, model.BudgetMonthID),
		},
	}
}

type IncomeEntryListResponse struct {
	Data  []IncomeEntry `json:"data"`                                                          // List of income entries
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeEntryResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *IncomeEntry `json:"data"`                                                          // The income entry data, if the request was successful
}

type IncomeEntryQueryFilter struct {
	BudgetMonthID fl_uuid.UUID            `form:"month"` // Filter by budget month ID
	Type          models.IncomeSourceType `form:"type"`  // Filter by source type
	Live          bool                    `form:"live"`  // Filter by track
}
