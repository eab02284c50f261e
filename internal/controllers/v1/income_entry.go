package v1

import (
	"net/http"

	"github.com/finledger/backend/internal/httputil"
	"github.com/finledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterIncomeEntryRoutes registers the routes for income entries with
// the RouterGroup that is passed.
func RegisterIncomeEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeEntries)
		r.GET("", GetIncomeEntries)
		r.POST("", CreateIncomeEntry)
	}

	// Income entry with ID
	{
		r.OPTIONS("/:id", OptionsIncomeEntryDetail)
		r.GET("/:id", GetIncomeEntry)
		r.PATCH("/:id", UpdateIncomeEntry)
		r.DELETE("/:id", DeleteIncomeEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			IncomeEntries
// @Success		204
// @Router			/v1/income-entries [options]
func OptionsIncomeEntries(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			IncomeEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-entries/{id} [options]
func OptionsIncomeEntryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetIncomeEntry{})
}

// @Summary		Get income entry
// @Description	Returns a specific income entry
// @Tags			IncomeEntries
// @Produce		json
// @Success		200	{object}	IncomeEntryResponse
// @Failure		400	{object}	IncomeEntryResponse
// @Failure		404	{object}	IncomeEntryResponse
// @Failure		500	{object}	IncomeEntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-entries/{id} [get]
func GetIncomeEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	var entry models.BudgetIncomeEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	data := newIncomeEntry(c, entry)
	c.JSON(http.StatusOK, IncomeEntryResponse{Data: &data})
}

// @Summary		Get income entries
// @Description	Returns a list of income entries
// @Tags			IncomeEntries
// @Produce		json
// @Success		200	{object}	IncomeEntryListResponse
// @Failure		400	{object}	IncomeEntryListResponse
// @Failure		500	{object}	IncomeEntryListResponse
// @Router			/v1/income-entries [get]
// @Param			month	query	string	false	"Filter by budget month ID"
// @Param			type	query	string	false	"Filter by source type"
// @Param			live	query	bool	false	"Filter by track"
func GetIncomeEntries(c *gin.Context) {
	var filter IncomeEntryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeEntryListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("label ASC")

	if slices.Contains(setFields, "BudgetMonthID") {
		q = q.Where("budget_month_id = ?", filter.BudgetMonthID.UUID)
	}

	if slices.Contains(setFields, "Type") {
		if !filter.Type.Valid() {
			s := models.ErrIncomeTypeInvalid.Error()
			c.JSON(http.StatusBadRequest, IncomeEntryListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("type = ?", filter.Type)
	}

	if slices.Contains(setFields, "Live") {
		q = q.Where("live = ?", filter.Live)
	}

	var entries []models.BudgetIncomeEntry
	err := q.Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]IncomeEntry, 0)
	for _, entry := range entries {
		data = append(data, newIncomeEntry(c, entry))
	}

	c.JSON(http.StatusOK, IncomeEntryListResponse{
		Data: data,
	})
}

// @Summary		Create income entry
// @Description	Creates a new income entry in a budget month
// @Tags			IncomeEntries
// @Produce		json
// @Success		201			{object}	IncomeEntryResponse
// @Failure		400			{object}	IncomeEntryResponse
// @Failure		404			{object}	IncomeEntryResponse
// @Failure		500			{object}	IncomeEntryResponse
// @Param			incomeEntry	body		IncomeEntryEditable	true	"Income entry"
// @Router			/v1/income-entries [post]
func CreateIncomeEntry(c *gin.Context) {
	var editable IncomeEntryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	entry := editable.model()
	err = models.CreateIncomeEntry(models.DB, &entry)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	data := newIncomeEntry(c, entry)
	c.JSON(http.StatusCreated, IncomeEntryResponse{Data: &data})
}

// @Summary		Update income entry
// @Description	Updates an existing income entry. Only values to be updated need to be specified.
// @Tags			IncomeEntries
// @Accept			json
// @Produce		json
// @Success		200			{object}	IncomeEntryResponse
// @Failure		400			{object}	IncomeEntryResponse
// @Failure		404			{object}	IncomeEntryResponse
// @Failure		500			{object}	IncomeEntryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			incomeEntry	body		IncomeEntryEditable	true	"Income entry"
// @Router			/v1/income-entries/{id} [patch]
func UpdateIncomeEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	var entry models.BudgetIncomeEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEntryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	var update IncomeEntryEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "Type") && !update.Type.Valid() {
		e := models.ErrIncomeTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	if update.Amount.IsNegative() {
		e := models.ErrAmountNegative.Error()
		c.JSON(http.StatusBadRequest, IncomeEntryResponse{
			Error: &e,
		})
		return
	}

	// An income entry never moves between months
	fields := make([]string, 0, len(updateFields))
	for _, field := range updateFields {
		if field == "BudgetMonthID" {
			continue
		}
		fields = append(fields, field)
	}

	if len(fields) > 0 {
		err = models.DB.Model(&entry).Select(fields).Updates(update.model()).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), IncomeEntryResponse{
				Error: &e,
			})
			return
		}
	}

	data := newIncomeEntry(c, entry)
	c.JSON(http.StatusOK, IncomeEntryResponse{Data: &data})
}

// @Summary		Delete income entry
// @Description	Archives an income entry. The month aggregates no longer include it.
// @Tags			IncomeEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income-entries/{id} [delete]
func DeleteIncomeEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var entry models.BudgetIncomeEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
