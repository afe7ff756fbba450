package models

import (
	"context"

	"gorm.io/gorm"
)

// Budget represents a budget
//
// A budget is the top level resource. Its total is independent of the
// balances of its envelopes.
type Budget struct {
	ID int64 `json:"id" gorm:"primaryKey" example:"1"`
	BudgetCreate
}

type BudgetCreate struct {
	TotalBudget int64 `json:"total_budget" example:"2500"`
}

func (Budget) TableName() string {
	return "budget"
}

// CreateBudget inserts the budget and sets its generated ID.
func CreateBudget(ctx context.Context, db *gorm.DB, budget *Budget) error {
	return db.WithContext(ctx).Create(budget).Error
}

// ListBudgets returns all budgets in insertion order.
func ListBudgets(ctx context.Context, db *gorm.DB) ([]Budget, error) {
	budgets := make([]Budget, 0)
	err := db.WithContext(ctx).Order("id ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// DeleteBudget deletes the budget with the given ID together with all of its
// envelopes. Both deletes run in one transaction.
//
// Deleting a budget that does not exist is not an error, the returned row
// count is 0 in that case.
func DeleteBudget(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	var affected int64

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("budget_id = ?", id).Delete(&Envelope{}).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&Budget{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		// Begin and Commit do not run the error callbacks
		return 0, translateError(err, Budget{}.TableName())
	}

	return affected, nil
}
