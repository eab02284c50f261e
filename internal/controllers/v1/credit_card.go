package v1

import (
	"fmt"
	"net/http"

	"github.com/finledger/backend/internal/httputil"
	"github.com/finledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCreditCardRoutes registers the routes for credit cards with
// the RouterGroup that is passed.
func RegisterCreditCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditCards)
		r.GET("", GetCreditCards)
		r.POST("", CreateCreditCards)
	}

	// Card with ID
	{
		r.OPTIONS("/:id", OptionsCreditCardDetail)
		r.GET("/:id", GetCreditCard)
		r.PATCH("/:id", UpdateCreditCard)
		r.DELETE("/:id", DeleteCreditCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Router			/v1/cards [options]
func OptionsCreditCards(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [options]
func OptionsCreditCardDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CreditCard{})
}

// @Summary		Get card
// @Description	Returns a specific credit card with its live balances
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CreditCardResponse
// @Failure		400	{object}	CreditCardResponse
// @Failure		404	{object}	CreditCardResponse
// @Failure		500	{object}	CreditCardResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [get]
func GetCreditCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	var card models.CreditCard
	err = models.DB.First(&card, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	data, err := newCreditCard(c, card)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CreditCardResponse{Data: &data})
}

// @Summary		Get cards
// @Description	Returns a list of credit cards
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CreditCardListResponse
// @Failure		400	{object}	CreditCardListResponse
// @Failure		500	{object}	CreditCardListResponse
// @Router			/v1/cards [get]
// @Param			name		query	string	false	"Filter by name, case insensitive contains"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			offset		query	uint	false	"The offset of the first card returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of cards to return. Defaults to 50."
func GetCreditCards(c *gin.Context) {
	var filter CreditCardQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CreditCardListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 cards and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var cards []models.CreditCard
	err := q.Find(&cards).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CreditCard, 0)
	for _, card := range cards {
		r, err := newCreditCard(c, card)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CreditCardListResponse{
				Error: &e,
			})
			return
		}

		data = append(data, r)
	}

	c.JSON(http.StatusOK, CreditCardListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create card
// @Description	Creates a new credit card
// @Tags			Cards
// @Produce		json
// @Success		201		{object}	CreditCardResponse
// @Failure		400		{object}	CreditCardResponse
// @Failure		500		{object}	CreditCardResponse
// @Param			card	body		CreditCardEditable	true	"Card"
// @Router			/v1/cards [post]
func CreateCreditCards(c *gin.Context) {
	var editable CreditCardEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	card := editable.model()
	err = models.CreateCreditCard(models.DB, &card)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	data, err := newCreditCard(c, card)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, CreditCardResponse{Data: &data})
}

// @Summary		Update card
// @Description	Updates an existing credit card. Only values to be updated need to be specified. The currency is fixed at creation and silently ignored in updates.
// @Tags			Cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	CreditCardResponse
// @Failure		400		{object}	CreditCardResponse
// @Failure		404		{object}	CreditCardResponse
// @Failure		500		{object}	CreditCardResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CreditCardEditable	true	"Card"
// @Router			/v1/cards/{id} [patch]
func UpdateCreditCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	var card models.CreditCard
	err = models.DB.First(&card, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CreditCardEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	var update CreditCardEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	err = models.UpdateCreditCard(models.DB, &card, update.model(), updateFields)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	data, err := newCreditCard(c, card)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCardResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CreditCardResponse{Data: &data})
}

// @Summary		Delete card
// @Description	Archives a credit card. Its transactions are kept.
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [delete]
func DeleteCreditCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var card models.CreditCard
	err = models.DB.First(&card, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&card).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
