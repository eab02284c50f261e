package v1

import (
	"net/http"

	"github.com/finledger/backend/internal/httputil"
	"github.com/finledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// RegisterTemplateRoutes registers the routes for expense templates with
// the RouterGroup that is passed.
func RegisterTemplateRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTemplates)
		r.GET("", GetTemplates)
		r.POST("", CreateTemplate)
	}

	// Template with ID
	{
		r.OPTIONS("/:id", OptionsTemplateDetail)
		r.GET("/:id", GetTemplate)
		r.PATCH("/:id", UpdateTemplate)
		r.DELETE("/:id", DeleteTemplate)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Router			/v1/templates [options]
func OptionsTemplates(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [options]
func OptionsTemplateDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetExpenseTemplate{})
}

// @Summary		Get template
// @Description	Returns a specific expense template
// @Tags			Templates
// @Produce		json
// @Success		200	{object}	TemplateResponse
// @Failure		400	{object}	TemplateResponse
// @Failure		404	{object}	TemplateResponse
// @Failure		500	{object}	TemplateResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [get]
func GetTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	var template models.BudgetExpenseTemplate
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	data := newTemplate(c, template)
	c.JSON(http.StatusOK, TemplateResponse{Data: &data})
}

// @Summary		Get templates
// @Description	Returns a list of expense templates
// @Tags			Templates
// @Produce		json
// @Success		200	{object}	TemplateListResponse
// @Failure		400	{object}	TemplateListResponse
// @Failure		500	{object}	TemplateListResponse
// @Router			/v1/templates [get]
// @Param			name		query	string	false	"Filter by name. Glob patterns are supported, e.g. Ins* matches Insurance"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			active		query	bool	false	"Filter by active state"
func GetTemplates(c *gin.Context) {
	var filter TemplateQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TemplateListResponse{
			Error: &s,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	var templates []models.BudgetExpenseTemplate
	err := models.DB.
		Order("sort_order ASC, name ASC").
		Where(&model, queryFields...).
		Find(&templates).
		Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateListResponse{
			Error: &e,
		})
		return
	}

	// The name filter supports glob patterns, which SQLite cannot evaluate.
	// Template lists are small, filtering in memory is fine.
	data := make([]Template, 0)
	for _, template := range templates {
		if filter.Name != "" && !glob.Glob(filter.Name, template.Name) {
			continue
		}

		data = append(data, newTemplate(c, template))
	}

	c.JSON(http.StatusOK, TemplateListResponse{
		Data: data,
	})
}

// @Summary		Create template
// @Description	Creates a new expense template
// @Tags			Templates
// @Produce		json
// @Success		201			{object}	TemplateResponse
// @Failure		400			{object}	TemplateResponse
// @Failure		500			{object}	TemplateResponse
// @Param			template	body		TemplateEditable	true	"Template"
// @Router			/v1/templates [post]
func CreateTemplate(c *gin.Context) {
	var editable TemplateEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	template := editable.model()
	err = models.CreateExpenseTemplate(models.DB, &template)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	data := newTemplate(c, template)
	c.JSON(http.StatusCreated, TemplateResponse{Data: &data})
}

// @Summary		Update template
// @Description	Updates an existing expense template. Only values to be updated need to be specified. Line items already materialized from the template are not touched.
// @Tags			Templates
// @Accept			json
// @Produce		json
// @Success		200			{object}	TemplateResponse
// @Failure		400			{object}	TemplateResponse
// @Failure		404			{object}	TemplateResponse
// @Failure		500			{object}	TemplateResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			template	body		TemplateEditable	true	"Template"
// @Router			/v1/templates/{id} [patch]
func UpdateTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	var template models.BudgetExpenseTemplate
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TemplateEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	var update TemplateEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	if update.Frequency != "" && !update.Frequency.Valid() {
		e := models.ErrFrequencyInvalid.Error()
		c.JSON(http.StatusBadRequest, TemplateResponse{
			Error: &e,
		})
		return
	}

	if update.Amount.IsNegative() {
		e := models.ErrAmountNegative.Error()
		c.JSON(http.StatusBadRequest, TemplateResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&template).Select(updateFields).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &e,
		})
		return
	}

	data := newTemplate(c, template)
	c.JSON(http.StatusOK, TemplateResponse{Data: &data})
}

// @Summary		Delete template
// @Description	Archives an expense template. Line items already materialized from it keep working, their template reference is cleared.
// @Tags			Templates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [delete]
func DeleteTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var template models.BudgetExpenseTemplate
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Line items materialized from the template stay, only their reference
	// is cleared. Archived line items are included so that a restored month
	// does not point at a deleted template.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.BudgetLineItem{}).
			Unscoped().
			Where("template_id = ?", template.ID).
			Update("template_id", nil).
			Error
		if err != nil {
			return err
		}

		return tx.Delete(&template).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
