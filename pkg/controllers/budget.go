package controllers

import (
	"fmt"
	"net/http"

	"github.com/alex-b96/budgeting-app/pkg/httperrors"
	"github.com/alex-b96/budgeting-app/pkg/httputil"
	"github.com/alex-b96/budgeting-app/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.POST("/create", co.CreateBudget)
	r.GET("/load", co.GetBudgets)
	r.DELETE("/delete/:budget_id", co.DeleteBudget)
}

// CreateBudget creates a new budget
//
//	@Summary		Create budget
//	@Description	Creates a new budget
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	models.Budget
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Router			/api/budget/create [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	budget := editable.model()
	if err := models.CreateBudget(c.Request.Context(), co.DB, &budget); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// GetBudgets returns all budgets
//
//	@Summary		List budgets
//	@Description	Returns all budgets
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{array}		models.Budget
//	@Failure		500	{object}	httperrors.HTTPError
//	@Router			/api/budget/load [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := models.ListBudgets(c.Request.Context(), co.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// DeleteBudget deletes a budget and all of its envelopes
//
//	@Summary		Delete budget
//	@Description	Deletes a budget and all of its envelopes. Succeeds when the budget does not exist.
//	@Tags			Budgets
//	@Produce		json
//	@Success		200			{object}	MessageResponse
//	@Failure		400			{object}	httperrors.HTTPError
//	@Failure		500			{object}	httperrors.HTTPError
//	@Param			budget_id	path		int	true	"ID of the budget"
//	@Router			/api/budget/delete/{budget_id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIBudgetID
	if err := httputil.BindURI(c, &uri); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if _, err := models.DeleteBudget(c.Request.Context(), co.DB, uri.BudgetID); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Budget %d and all its envelopes deleted successfully", uri.BudgetID),
	})
}
