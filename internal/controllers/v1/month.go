package v1

import (
	"net/http"

	"github.com/finledger/backend/internal/httputil"
	"github.com/finledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterMonthRoutes registers the routes for budget months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonths)
		r.GET("", GetMonths)
		r.POST("", CreateMonth)
	}

	// Month with ID
	{
		r.OPTIONS("/:id", OptionsMonthDetail)
		r.GET("/:id", GetMonth)
		r.PATCH("/:id", UpdateMonth)
		r.DELETE("/:id", DeleteMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonths(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/months/{id} [options]
func OptionsMonthDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetMonth{})
}

// @Summary		Get month
// @Description	Returns a specific budget month with its aggregates, line items and income entries
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthDetailResponse
// @Failure		400	{object}	MonthDetailResponse
// @Failure		404	{object}	MonthDetailResponse
// @Failure		500	{object}	MonthDetailResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/months/{id} [get]
func GetMonth(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthDetailResponse{
			Error: &e,
		})
		return
	}

	var month models.BudgetMonth
	err = models.DB.First(&month, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthDetailResponse{
			Error: &e,
		})
		return
	}

	data, err := newMonthDetail(c, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthDetailResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthDetailResponse{Data: &data})
}

// @Summary		Get months
// @Description	Returns a list of budget months, newest first
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		500	{object}	MonthListResponse
// @Router			/v1/months [get]
func GetMonths(c *gin.Context) {
	var months []models.BudgetMonth
	err := models.DB.Order("month DESC").Find(&months).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Month, 0)
	for _, month := range months {
		data = append(data, newMonth(c, month))
	}

	c.JSON(http.StatusOK, MonthListResponse{
		Data: data,
	})
}

// @Summary		Create month
// @Description	Creates the budget month containing the submitted date and copies every active recurring template into it as an unpaid line item. At most one budget month can exist per calendar month.
// @Tags			Months
// @Produce		json
// @Success		201		{object}	MonthDetailResponse
// @Failure		400		{object}	MonthDetailResponse
// @Failure		409		{object}	MonthDetailResponse
// @Failure		500		{object}	MonthDetailResponse
// @Param			month	body		MonthEditable	true	"Month"
// @Router			/v1/months [post]
func CreateMonth(c *gin.Context) {
	var editable MonthEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthDetailResponse{
			Error: &e,
		})
		return
	}

	if editable.Month.IsZero() {
		e := errMonthNotSetInBody.Error()
		c.JSON(http.StatusBadRequest, MonthDetailResponse{
			Error: &e,
		})
		return
	}

	month, err := models.CreateBudgetMonth(models.DB, editable.Month.FirstDay())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthDetailResponse{
			Error: &e,
		})
		return
	}

	if editable.Note != "" {
		err = models.DB.Model(&month).Update("note", editable.Note).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), MonthDetailResponse{
				Error: &e,
			})
			return
		}
	}

	data, err := newMonthDetail(c, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthDetailResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, MonthDetailResponse{Data: &data})
}

// @Summary		Update month
// @Description	Updates the note of a budget month. The calendar month itself cannot be changed.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	body		MonthEditable	true	"Month"
// @Router			/v1/months/{id} [patch]
func UpdateMonth(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	var month models.BudgetMonth
	err = models.DB.First(&month, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MonthEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	var update MonthEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	// The calendar month is the identity of the resource and fixed at creation
	fields := make([]string, 0, len(updateFields))
	for _, field := range updateFields {
		if field == "Month" {
			continue
		}
		fields = append(fields, field)
	}

	if len(fields) > 0 {
		err = models.DB.Model(&month).Select(fields).Updates(update.model()).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), MonthResponse{
				Error: &e,
			})
			return
		}
	}

	data := newMonth(c, month)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Delete month
// @Description	Archives a budget month together with its line items and income entries
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/months/{id} [delete]
func DeleteMonth(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var month models.BudgetMonth
	err = models.DB.First(&month, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Line items and income entries of the month are archived with it
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_month_id = ?", month.ID).Delete(&models.BudgetLineItem{}).Error; err != nil {
			return err
		}

		if err := tx.Where("budget_month_id = ?", month.ID).Delete(&models.BudgetIncomeEntry{}).Error; err != nil {
			return err
		}

		return tx.Delete(&month).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
