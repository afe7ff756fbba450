package models_test

import (
	"github.com/alex-b96/budgeting-app/pkg/models"
)

func (suite *TestSuiteStandard) TestBudgetCreateAndList() {
	first := suite.createTestBudget(0)
	second := suite.createTestBudget(1500)

	suite.Assert().NotZero(first.ID)
	suite.Assert().Greater(second.ID, first.ID)

	budgets, err := models.ListBudgets(suite.T().Context(), suite.db)
	suite.Require().Nil(err)
	suite.Assert().Equal([]models.Budget{first, second}, budgets)
}

func (suite *TestSuiteStandard) TestBudgetListEmpty() {
	budgets, err := models.ListBudgets(suite.T().Context(), suite.db)
	suite.Require().Nil(err)
	suite.Assert().NotNil(budgets)
	suite.Assert().Len(budgets, 0)
}

func (suite *TestSuiteStandard) TestBudgetDeleteRemovesEnvelopes() {
	budget := suite.createTestBudget(1000)
	other := suite.createTestBudget(500)

	_ = suite.createTestEnvelope(budget.ID, 100)
	_ = suite.createTestEnvelope(budget.ID, 200)
	kept := suite.createTestEnvelope(other.ID, 300)

	affected, err := models.DeleteBudget(suite.T().Context(), suite.db, budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), affected)

	envelopes, err := models.ListEnvelopes(suite.T().Context(), suite.db, budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(envelopes, 0)

	envelopes, err = models.ListEnvelopes(suite.T().Context(), suite.db, other.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]models.Envelope{kept}, envelopes)

	budgets, err := models.ListBudgets(suite.T().Context(), suite.db)
	suite.Require().Nil(err)
	suite.Assert().Equal([]models.Budget{other}, budgets)
}

func (suite *TestSuiteStandard) TestBudgetDeleteNonExistent() {
	affected, err := models.DeleteBudget(suite.T().Context(), suite.db, 4711)
	suite.Assert().Nil(err)
	suite.Assert().Equal(int64(0), affected)
}

// TestBudgetDeleteRollback verifies that no envelope is deleted when
// deleting the budget fails.
func (suite *TestSuiteStandard) TestBudgetDeleteRollback() {
	budget := suite.createTestBudget(1000)
	envelope := suite.createTestEnvelope(budget.ID, 100)

	// Make the second statement of the transaction fail
	suite.Require().Nil(suite.db.Exec(`CREATE TRIGGER block_budget_delete BEFORE DELETE ON budget
		BEGIN SELECT RAISE(ABORT, 'budget deletion blocked'); END`).Error)

	_, err := models.DeleteBudget(suite.T().Context(), suite.db, budget.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	envelopes, err := models.ListEnvelopes(suite.T().Context(), suite.db, budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]models.Envelope{envelope}, envelopes)
}

func (suite *TestSuiteStandard) TestBudgetDeleteClosedDatabase() {
	suite.CloseDB()

	_, err := models.DeleteBudget(suite.T().Context(), suite.db, 1)
	suite.Assert().ErrorIs(err, models.ErrDatabaseClosed)
}
