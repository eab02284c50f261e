package v1

import (
	"net/http"

	"github.com/finledger/backend/internal/httputil"
	"github.com/finledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterLineItemRoutes registers the routes for line items with
// the RouterGroup that is passed.
func RegisterLineItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLineItems)
		r.GET("", GetLineItems)
		r.POST("", CreateLineItem)
	}

	// Line item with ID
	{
		r.OPTIONS("/:id", OptionsLineItemDetail)
		r.GET("/:id", GetLineItem)
		r.PATCH("/:id", UpdateLineItem)
		r.DELETE("/:id", DeleteLineItem)
	}

	// Record full payment
	{
		r.OPTIONS("/:id/mark-paid", OptionsLineItemMarkPaid)
		r.POST("/:id/mark-paid", MarkLineItemPaid)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			LineItems
// @Success		204
// @Router			/v1/line-items [options]
func OptionsLineItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			LineItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/line-items/{id} [options]
func OptionsLineItemDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetLineItem{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			LineItems
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/line-items/{id}/mark-paid [options]
func OptionsLineItemMarkPaid(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get line item
// @Description	Returns a specific line item
// @Tags			LineItems
// @Produce		json
// @Success		200	{object}	LineItemResponse
// @Failure		400	{object}	LineItemResponse
// @Failure		404	{object}	LineItemResponse
// @Failure		500	{object}	LineItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/line-items/{id} [get]
func GetLineItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	var item models.BudgetLineItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	data := newLineItem(c, item)
	c.JSON(http.StatusOK, LineItemResponse{Data: &data})
}

// @Summary		Get line items
// @Description	Returns a list of line items
// @Tags			LineItems
// @Produce		json
// @Success		200	{object}	LineItemListResponse
// @Failure		400	{object}	LineItemListResponse
// @Failure		500	{object}	LineItemListResponse
// @Router			/v1/line-items [get]
// @Param			month		query	string	false	"Filter by budget month ID"
// @Param			category	query	string	false	"Filter by category ID"
func GetLineItems(c *gin.Context) {
	var filter LineItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, LineItemListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("sort_order ASC, name ASC")

	if slices.Contains(setFields, "BudgetMonthID") {
		q = q.Where("budget_month_id = ?", filter.BudgetMonthID.UUID)
	}

	if slices.Contains(setFields, "CategoryID") {
		q = q.Where("category_id = ?", filter.CategoryID.UUID)
	}

	var items []models.BudgetLineItem
	err := q.Find(&items).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemListResponse{
			Error: &e,
		})
		return
	}

	data := make([]LineItem, 0)
	for _, item := range items {
		data = append(data, newLineItem(c, item))
	}

	c.JSON(http.StatusOK, LineItemListResponse{
		Data: data,
	})
}

// @Summary		Create line item
// @Description	Creates a new line item in a budget month
// @Tags			LineItems
// @Produce		json
// @Success		201			{object}	LineItemResponse
// @Failure		400			{object}	LineItemResponse
// @Failure		404			{object}	LineItemResponse
// @Failure		500			{object}	LineItemResponse
// @Param			lineItem	body		LineItemEditable	true	"Line item"
// @Router			/v1/line-items [post]
func CreateLineItem(c *gin.Context) {
	var editable LineItemEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	item := editable.model()
	err = models.CreateLineItem(models.DB, &item)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	data := newLineItem(c, item)
	c.JSON(http.StatusCreated, LineItemResponse{Data: &data})
}

// @Summary		Update line item
// @Description	Updates an existing line item. Only values to be updated need to be specified.
// @Tags			LineItems
// @Accept			json
// @Produce		json
// @Success		200			{object}	LineItemResponse
// @Failure		400			{object}	LineItemResponse
// @Failure		404			{object}	LineItemResponse
// @Failure		500			{object}	LineItemResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lineItem	body		LineItemEditable	true	"Line item"
// @Router			/v1/line-items/{id} [patch]
func UpdateLineItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	var item models.BudgetLineItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, LineItemEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	var update LineItemEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	if update.BudgetedAmount.IsNegative() || update.PaidAmount.IsNegative() {
		e := models.ErrLineItemAmountsNegative.Error()
		c.JSON(http.StatusBadRequest, LineItemResponse{
			Error: &e,
		})
		return
	}

	// A line item never moves between months
	fields := make([]string, 0, len(updateFields))
	for _, field := range updateFields {
		if field == "BudgetMonthID" {
			continue
		}
		fields = append(fields, field)
	}

	if len(fields) > 0 {
		err = models.DB.Model(&item).Select(fields).Updates(update.model()).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), LineItemResponse{
				Error: &e,
			})
			return
		}
	}

	data := newLineItem(c, item)
	c.JSON(http.StatusOK, LineItemResponse{Data: &data})
}

// @Summary		Mark line item paid
// @Description	Records full payment of the line item by setting the paid amount to the budgeted amount
// @Tags			LineItems
// @Produce		json
// @Success		200	{object}	LineItemResponse
// @Failure		400	{object}	LineItemResponse
// @Failure		404	{object}	LineItemResponse
// @Failure		500	{object}	LineItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/line-items/{id}/mark-paid [post]
func MarkLineItemPaid(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	var item models.BudgetLineItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	err = item.MarkFullyPaid(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LineItemResponse{
			Error: &e,
		})
		return
	}

	data := newLineItem(c, item)
	c.JSON(http.StatusOK, LineItemResponse{Data: &data})
}

// @Summary		Delete line item
// @Description	Archives a line item. The month aggregates no longer include it.
// @Tags			LineItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/line-items/{id} [delete]
func DeleteLineItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.BudgetLineItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
