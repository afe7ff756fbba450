package models

import (
	"context"
	"math"

	"gorm.io/gorm"
)

// Envelope is a named part of a budget with its own balance.
type Envelope struct {
	ID int64 `json:"id" gorm:"primaryKey" example:"7"`
	EnvelopeCreate
	Budget Budget `json:"-"`
}

type EnvelopeCreate struct {
	AnvelopeName   string `json:"anvelope_name" gorm:"size:100" example:"Groceries"`
	AnvelopeBudget int64  `json:"anvelope_budget" example:"300"`
	BudgetID       int64  `json:"budget_id" gorm:"not null;index" example:"1"`
}

func (Envelope) TableName() string {
	return "anvelopes"
}

// CreateEnvelope inserts the envelope and sets its generated ID.
//
// The budget is not looked up beforehand, the foreign key constraint
// rejects envelopes for budgets that do not exist with ErrBudgetReference.
func CreateEnvelope(ctx context.Context, db *gorm.DB, envelope *Envelope) error {
	return db.WithContext(ctx).Omit("Budget").Create(envelope).Error
}

// ListEnvelopes returns all envelopes of a budget in insertion order.
func ListEnvelopes(ctx context.Context, db *gorm.DB, budgetID int64) ([]Envelope, error) {
	envelopes := make([]Envelope, 0)
	err := db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("id ASC").
		Find(&envelopes).
		Error
	if err != nil {
		return nil, err
	}

	return envelopes, nil
}

// AdjustBalance adds delta to the balance of the envelope and returns the
// number of updated rows.
//
// The addition is done by the database in a single statement, so concurrent
// adjustments of the same envelope never overwrite each other. The statement
// only matches while the new balance fits into an int64. If the envelope
// exists but does not match, ErrBalanceOverflow is returned.
func AdjustBalance(ctx context.Context, db *gorm.DB, id, delta int64) (int64, error) {
	query := db.WithContext(ctx).Model(&Envelope{}).Where("id = ?", id)

	switch {
	case delta > 0:
		query = query.Where("anvelope_budget <= ?", math.MaxInt64-delta)
	case delta < 0:
		query = query.Where("anvelope_budget >= ?", math.MinInt64-delta)
	}

	result := query.Update("anvelope_budget", gorm.Expr("anvelope_budget + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 && delta != 0 {
		var count int64
		err := db.WithContext(ctx).Model(&Envelope{}).Where("id = ?", id).Count(&count).Error
		if err != nil {
			return 0, err
		}

		if count > 0 {
			return 0, ErrBalanceOverflow
		}
	}

	return result.RowsAffected, nil
}

// DeleteEnvelope deletes the envelope and returns the number of deleted rows.
func DeleteEnvelope(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Delete(&Envelope{}, id)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
