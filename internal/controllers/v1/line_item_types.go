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

type LineItemEditable struct {
	BudgetMonthID  uuid.UUID       `json:"budgetMonthId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`       // ID of the budget month the item belongs to
	CategoryID     *uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`          // ID of the category, optional
	Name           string          `json:"name" example:"Rent" default:""`                                     // Name of the item
	BudgetedAmount decimal.Decimal `json:"budgetedAmount" example:"1500.00" minimum:"0.00" multipleOf:"0.01"`  // What is planned to be paid
	PaidAmount     decimal.Decimal `json:"paidAmount" example:"750.00" minimum:"0.00" multipleOf:"0.01"`       // What has actually been paid so far
	Note           string          `json:"note" example:"Transferred on the 1st" default:""`                   // A note
	Remarks        string          `json:"remarks" example:"Check the new amount" default:""`                  // Free form remarks
	SortOrder      int             `json:"sortOrder" example:"10" default:"0"`                                 // Position in the month view
}

// model returns the database resource for the API representation of the editable fields
func (editable LineItemEditable) model() models.BudgetLineItem {
	return models.BudgetLineItem{
		BudgetMonthID:  editable.BudgetMonthID,
		CategoryID:     editable.CategoryID,
		Name:           editable.Name,
		BudgetedAmount: editable.BudgetedAmount,
		PaidAmount:     editable.PaidAmount,
		Note:           editable.Note,
		Remarks:        editable.Remarks,
		SortOrder:      editable.SortOrder,
	}
}

type LineItemLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/line-items/d430d7c3-d14c-4712-9336-ee56965a6673"` // The line item itself
	Month string `json:"month" example:"https://example.com/api/v1/months/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`    // The month the item belongs to
}

// LineItem is the representation of a BudgetLineItem in API v1.
type LineItem struct {
	models.DefaultModel
	LineItemEditable
	TemplateID         *uuid.UUID      `json:"templateId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the template the item was created from, if any
	Remainder          decimal.Decimal `json:"remainder" example:"750.00"`                                // Budgeted - paid, negative when over-paid
	FormattedBudgeted  string          `json:"formattedBudgeted" example:"$1,500.00"`                     // The budgeted amount as display string
	FormattedPaid      string          `json:"formattedPaid" example:"$750.00"`                           // The paid amount as display string
	FormattedRemainder string          `json:"formattedRemainder" example:"$750.00"`                      // The remainder as display string
	PaymentStateBadge  Badge           `json:"paymentStateBadge"`                                         // Display badge for the derived payment state
	Links              LineItemLinks   `json:"links"`
}

// newLineItem returns the API v1 representation of the resource
func newLineItem(c *gin.Context, model models.BudgetLineItem) LineItem {
	url := c.GetString(string(models.DBContextURL))

	return LineItem{
		DefaultModel: model.DefaultModel,
		LineItemEditable: LineItemEditable{
			BudgetMonthID:  model.BudgetMonthID,
			CategoryID:     model.CategoryID,
			Name:           model.Name,
			BudgetedAmount: model.BudgetedAmount,
			PaidAmount:     model.PaidAmount,
			Note:           model.Note,
			Remarks:        model.Remarks,
			SortOrder:      model.SortOrder,
		},
		TemplateID:         model.TemplateID,
		Remainder:          model.Remainder(),
		FormattedBudgeted:  money.Format(model.BudgetedAmount),
		FormattedPaid:      money.Format(model.PaidAmount),
		FormattedRemainder: money.Format(model.Remainder()),
		PaymentStateBadge:  paymentStateBadge(model.PaymentState()),
		Links: LineItemLinks{
			Self:  fmt.Sprintf("%s/v1/line-items/%s", url, model.ID),
			Month: fmt.Sprintf("%s/v1/months/%s", url, model.BudgetMonthID),
		},
	}
}

type LineItemListResponse struct {
	Data  []LineItem `json:"data"`                                                          // List of line items
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LineItemResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *LineItem `json:"data"`                                                          // The line item data, if the request was successful
}

type LineItemQueryFilter struct {
	BudgetMonthID fl_uuid.UUID `form:"month"`    // Filter by budget month ID
	CategoryID    fl_uuid.UUID `form:"category"` // Filter by category ID
}
