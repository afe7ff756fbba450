package models_test

import (
	"math"
	"testing"

	"github.com/alex-b96/budgeting-app/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func (suite *TestSuiteStandard) TestEnvelopeCreateUnknownBudget() {
	envelope := models.Envelope{
		EnvelopeCreate: models.EnvelopeCreate{
			AnvelopeName: "Orphan",
			BudgetID:     4711,
		},
	}

	err := models.CreateEnvelope(suite.T().Context(), suite.db, &envelope)
	suite.Assert().ErrorIs(err, models.ErrBudgetReference)
}

func (suite *TestSuiteStandard) TestEnvelopeListByBudget() {
	budget := suite.createTestBudget(1000)
	other := suite.createTestBudget(1000)

	first := suite.createTestEnvelope(budget.ID, 10)
	_ = suite.createTestEnvelope(other.ID, 20)
	second := suite.createTestEnvelope(budget.ID, 30)

	envelopes, err := models.ListEnvelopes(suite.T().Context(), suite.db, budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]models.Envelope{first, second}, envelopes)

	envelopes, err = models.ListEnvelopes(suite.T().Context(), suite.db, 4711)
	suite.Require().Nil(err)
	suite.Assert().NotNil(envelopes)
	suite.Assert().Len(envelopes, 0)
}

func (suite *TestSuiteStandard) TestEnvelopeAdjustBalance() {
	budget := suite.createTestBudget(1000)
	envelope := suite.createTestEnvelope(budget.ID, 100)

	affected, err := models.AdjustBalance(suite.T().Context(), suite.db, envelope.ID, 50)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), affected)

	affected, err = models.AdjustBalance(suite.T().Context(), suite.db, envelope.ID, -20)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), affected)

	suite.Assert().Equal(int64(130), suite.balance(envelope.ID))

	// Balances are allowed to become negative
	_, err = models.AdjustBalance(suite.T().Context(), suite.db, envelope.ID, -200)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(-70), suite.balance(envelope.ID))
}

func (suite *TestSuiteStandard) TestEnvelopeAdjustBalanceNonExistent() {
	affected, err := models.AdjustBalance(suite.T().Context(), suite.db, 4711, 50)
	suite.Assert().Nil(err)
	suite.Assert().Equal(int64(0), affected)
}

// TestEnvelopeAdjustBalanceOverflow verifies that balances outside of the
// int64 range are rejected and the stored balance stays untouched.
func (suite *TestSuiteStandard) TestEnvelopeAdjustBalanceOverflow() {
	tests := []struct {
		name    string
		balance int64   // balance the envelope is created with
		deltas  []int64 // applied before the last adjustment, must succeed
		delta   int64   // last adjustment
		err     error
		result  int64 // expected balance after the last adjustment
	}{
		{"Add up to the maximum", 1, nil, math.MaxInt64 - 1, nil, math.MaxInt64},
		{"Add beyond the maximum", 1, nil, math.MaxInt64, models.ErrBalanceOverflow, 1},
		{"Add to the maximum", 0, []int64{math.MaxInt64}, 1, models.ErrBalanceOverflow, math.MaxInt64},
		{"Spend down to the minimum", 0, []int64{-math.MaxInt64}, -1, nil, math.MinInt64},
		{"Spend beyond the minimum", 0, []int64{-math.MaxInt64}, -2, models.ErrBalanceOverflow, -math.MaxInt64},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := suite.createTestBudget(0)
			envelope := suite.createTestEnvelope(budget.ID, tt.balance)

			for _, delta := range tt.deltas {
				_, err := models.AdjustBalance(t.Context(), suite.db, envelope.ID, delta)
				require.Nil(t, err)
			}

			affected, err := models.AdjustBalance(t.Context(), suite.db, envelope.ID, tt.delta)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Equal(t, int64(0), affected)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, int64(1), affected)
			}

			// The envelope must still be readable
			envelopes, err := models.ListEnvelopes(t.Context(), suite.db, budget.ID)
			require.Nil(t, err)
			require.Len(t, envelopes, 1)
			assert.Equal(t, tt.result, envelopes[0].AnvelopeBudget)
		})
	}
}

// TestEnvelopeAdjustBalanceConcurrent verifies that no update is lost when
// many adjustments for the same envelope run at the same time.
func (suite *TestSuiteStandard) TestEnvelopeAdjustBalanceConcurrent() {
	budget := suite.createTestBudget(1000)
	envelope := suite.createTestEnvelope(budget.ID, 1000)

	var g errgroup.Group
	var sum int64
	for i := int64(1); i <= 50; i++ {
		delta := i
		if i%2 == 0 {
			delta = -i
		}
		sum += delta

		g.Go(func() error {
			_, err := models.AdjustBalance(suite.T().Context(), suite.db, envelope.ID, delta)
			return err
		})
	}

	suite.Require().Nil(g.Wait())
	suite.Assert().Equal(1000+sum, suite.balance(envelope.ID))
}

func (suite *TestSuiteStandard) TestEnvelopeDelete() {
	budget := suite.createTestBudget(1000)
	envelope := suite.createTestEnvelope(budget.ID, 100)

	affected, err := models.DeleteEnvelope(suite.T().Context(), suite.db, envelope.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), affected)

	affected, err = models.DeleteEnvelope(suite.T().Context(), suite.db, envelope.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), affected)
}

func (suite *TestSuiteStandard) TestEnvelopeClosedDatabase() {
	budget := suite.createTestBudget(1000)
	envelope := suite.createTestEnvelope(budget.ID, 100)

	suite.CloseDB()

	_, err := models.AdjustBalance(suite.T().Context(), suite.db, envelope.ID, 10)
	suite.Assert().ErrorIs(err, models.ErrDatabaseClosed)
}
