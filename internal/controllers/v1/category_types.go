package v1

import (
	"fmt"

	"github.com/finledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Name      string `json:"name" example:"Housing" default:""`    // Name of the category, must be unique
	Color     string `json:"color" example:"#38bdf8" default:""`   // Display color hex value
	SortOrder int    `json:"sortOrder" example:"10" default:"0"`   // Position in category listings
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.BudgetCategory {
	return models.BudgetCategory{
		Name:      editable.Name,
		Color:     editable.Color,
		SortOrder: editable.SortOrder,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"` // The category itself
}

// Category is the representation of a BudgetCategory in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.BudgetCategory) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:      model.Name,
			Color:     model.Color,
			SortOrder: model.SortOrder,
		},
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The category data, if the request was successful
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name, case insensitive contains
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}
