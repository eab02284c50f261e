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

type TemplateEditable struct {
	Name       string                  `json:"name" example:"Rent" default:""`                              // Name of the template
	CategoryID *uuid.UUID              `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`   // ID of the category, optional
	Amount     decimal.Decimal         `json:"amount" example:"1500.00" minimum:"0.00" multipleOf:"0.01"`   // Default budgeted amount
	Frequency  models.ExpenseFrequency `json:"frequency" example:"recurring" default:"recurring"`           // recurring templates seed new months, one_off templates are added by hand
	Active     bool                    `json:"active" example:"true" default:"false"`                       // Inactive templates are never copied into new months
	SortOrder  int                     `json:"sortOrder" example:"10" default:"0"`                          // Position in listings and materialized line items
	Note       string                  `json:"note" example:"Landlord raised it in March" default:""`       // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TemplateEditable) model() models.BudgetExpenseTemplate {
	return models.BudgetExpenseTemplate{
		Name:       editable.Name,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Frequency:  editable.Frequency,
		Active:     editable.Active,
		SortOrder:  editable.SortOrder,
		Note:       editable.Note,
	}
}

type TemplateLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/templates/d430d7c3-d14c-4712-9336-ee56965a6673"` // The template itself
}

// Template is the representation of a BudgetExpenseTemplate in API v1.
type Template struct {
	models.DefaultModel
	TemplateEditable
	FormattedAmount string        `json:"formattedAmount" example:"$1,500.00"` // The amount as display string
	FrequencyBadge  Badge         `json:"frequencyBadge"`                      // Display badge for the frequency
	Links           TemplateLinks `json:"links"`
}

// newTemplate returns the API v1 representation of the resource
func newTemplate(c *gin.Context, model models.BudgetExpenseTemplate) Template {
	url := c.GetString(string(models.DBContextURL))

	return Template{
		DefaultModel: model.DefaultModel,
		TemplateEditable: TemplateEditable{
			Name:       model.Name,
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Frequency:  model.Frequency,
			Active:     model.Active,
			SortOrder:  model.SortOrder,
			Note:       model.Note,
		},
		FormattedAmount: money.Format(model.Amount),
		FrequencyBadge:  frequencyBadge(model.Frequency),
		Links: TemplateLinks{
			Self: fmt.Sprintf("%s/v1/templates/%s", url, model.ID),
		},
	}
}

type TemplateListResponse struct {
	Data  []Template `json:"data"`                                                          // List of templates
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TemplateResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Template `json:"data"`                                                          // The template data, if the request was successful
}

type TemplateQueryFilter struct {
	Name      string                  `form:"name" filterField:"false"`  // Filter by name, glob patterns like "Ins*" are supported
	CategoryID fl_uuid.UUID           `form:"category"`                  // Filter by category ID
	Frequency models.ExpenseFrequency `form:"frequency"`                 // Filter by frequency
	Active    bool                    `form:"active"`                    // Filter by active state
}

func (f TemplateQueryFilter) model() models.BudgetExpenseTemplate {
	var categoryID *uuid.UUID
	if f.CategoryID != fl_uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	return models.BudgetExpenseTemplate{
		CategoryID: categoryID,
		Frequency:  f.Frequency,
		Active:     f.Active,
	}
}
