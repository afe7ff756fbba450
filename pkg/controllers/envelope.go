package controllers

import (
	"net/http"

	"github.com/alex-b96/budgeting-app/pkg/httperrors"
	"github.com/alex-b96/budgeting-app/pkg/httputil"
	"github.com/alex-b96/budgeting-app/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func (co Controller) RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	r.POST("/create", co.CreateEnvelope)
	r.GET("/load/:budget_id", co.GetEnvelopes)
	r.POST("/add_money/:envelope_id/:amount", co.AddMoney)
	r.POST("/spend_money/:envelope_id/:amount", co.SpendMoney)
	r.DELETE("/delete/:envelope_id", co.DeleteEnvelope)
}

// CreateEnvelope creates a new envelope
//
//	@Summary		Create envelope
//	@Description	Creates a new envelope and returns its ID
//	@Tags			Envelopes
//	@Accept			json
//	@Produce		json
//	@Success		201			{integer}	int64
//	@Failure		400			{object}	httperrors.HTTPError
//	@Failure		500			{object}	httperrors.HTTPError
//	@Param			envelope	body		EnvelopeEditable	true	"Envelope"
//	@Router			/api/anvelopes/create [post]
func (co Controller) CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	envelope := editable.model()
	if err := models.CreateEnvelope(c.Request.Context(), co.DB, &envelope); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, envelope.ID)
}

// GetEnvelopes returns the envelopes of a budget
//
//	@Summary		List envelopes
//	@Description	Returns all envelopes of a budget
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200			{array}		models.Envelope
//	@Failure		400			{object}	httperrors.HTTPError
//	@Failure		500			{object}	httperrors.HTTPError
//	@Param			budget_id	path		int	true	"ID of the budget"
//	@Router			/api/anvelopes/load/{budget_id} [get]
func (co Controller) GetEnvelopes(c *gin.Context) {
	var uri URIBudgetID
	if err := httputil.BindURI(c, &uri); err != nil {
		httperrors.Handler(c, err)
		return
	}

	envelopes, err := models.ListEnvelopes(c.Request.Context(), co.DB, uri.BudgetID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, envelopes)
}

// AddMoney increases the balance of an envelope
//
//	@Summary		Add money
//	@Description	Adds the amount to the envelope balance and returns the number of updated envelopes
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200			{integer}	int64
//	@Failure		400			{object}	httperrors.HTTPError
//	@Failure		500			{object}	httperrors.HTTPError
//	@Param			envelope_id	path		int	true	"ID of the envelope"
//	@Param			amount		path		int	true	"Amount to add"
//	@Router			/api/anvelopes/add_money/{envelope_id}/{amount} [post]
func (co Controller) AddMoney(c *gin.Context) {
	co.adjustBalance(c, 1)
}

// SpendMoney decreases the balance of an envelope
//
//	@Summary		Spend money
//	@Description	Subtracts the amount from the envelope balance and returns the number of updated envelopes. The balance can become negative.
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200			{integer}	int64
//	@Failure		400			{object}	httperrors.HTTPError
//	@Failure		500			{object}	httperrors.HTTPError
//	@Param			envelope_id	path		int	true	"ID of the envelope"
//	@Param			amount		path		int	true	"Amount to spend"
//	@Router			/api/anvelopes/spend_money/{envelope_id}/{amount} [post]
func (co Controller) SpendMoney(c *gin.Context) {
	co.adjustBalance(c, -1)
}

// adjustBalance changes the envelope balance by sign * amount.
func (co Controller) adjustBalance(c *gin.Context, sign int64) {
	var uri URIEnvelopeAmount
	if err := httputil.BindURI(c, &uri); err != nil {
		httperrors.Handler(c, err)
		return
	}

	affected, err := models.AdjustBalance(c.Request.Context(), co.DB, uri.EnvelopeID, sign*uri.Amount)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, affected)
}

// DeleteEnvelope deletes an envelope
//
//	@Summary		Delete envelope
//	@Description	Deletes an envelope and returns the number of deleted envelopes
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200			{integer}	int64
//	@Failure		400			{object}	httperrors.HTTPError
//	@Failure		500			{object}	httperrors.HTTPError
//	@Param			envelope_id	path		int	true	"ID of the envelope"
//	@Router			/api/anvelopes/delete/{envelope_id} [delete]
func (co Controller) DeleteEnvelope(c *gin.Context) {
	var uri URIEnvelopeID
	if err := httputil.BindURI(c, &uri); err != nil {
		httperrors.Handler(c, err)
		return
	}

	affected, err := models.DeleteEnvelope(c.Request.Context(), co.DB, uri.EnvelopeID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, affected)
}
