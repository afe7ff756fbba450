package controllers

import "github.com/alex-b96/budgeting-app/pkg/models"

// BudgetEditable contains all fields of a budget a client can set.
type BudgetEditable struct {
	TotalBudget *int64 `json:"total_budget" binding:"required,gte=0" example:"2500"` // Total amount of the budget
}

// model transforms the API representation into the model representation
func (b BudgetEditable) model() models.Budget {
	return models.Budget{
		BudgetCreate: models.BudgetCreate{
			TotalBudget: *b.TotalBudget,
		},
	}
}
