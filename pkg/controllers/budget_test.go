package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/alex-b96/budgeting-app/pkg/controllers"
	"github.com/alex-b96/budgeting-app/pkg/models"
	"github.com/alex-b96/budgeting-app/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestBudget(t *testing.T, body any, expectedStatus ...int) models.Budget {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/api/budget/create", body)
	assertHTTPStatus(t, &r, expectedStatus...)

	var budget models.Budget
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &budget)
	}

	return budget
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	tests := []struct {
		name   string
		method string
		url    string
		body   any
	}{
		{"Create", http.MethodPost, "http://example.com/api/budget/create", map[string]any{"total_budget": 100}},
		{"List", http.MethodGet, "http://example.com/api/budget/load", ""},
		{"Delete", http.MethodDelete, "http://example.com/api/budget/delete/1", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, suite.controller, tt.method, tt.url, tt.body)
			assertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), "there is a problem with the database connection")
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudget(suite.T(), map[string]any{"total_budget": 2500})

	assert.NotZero(suite.T(), budget.ID)
	assert.Equal(suite.T(), int64(2500), budget.TotalBudget)
}

func (suite *TestSuiteStandard) TestBudgetsCreateZero() {
	budget := suite.createTestBudget(suite.T(), map[string]any{"total_budget": 0})
	assert.Equal(suite.T(), int64(0), budget.TotalBudget)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name  string
		body  any
		field string // field with the validation error, if any
		err   string
	}{
		{"Negative total", map[string]any{"total_budget": -1}, "total_budget", ""},
		{"Missing total", map[string]any{}, "total_budget", ""},
		{"Wrong type", `{ "total_budget": "many" }`, "total_budget", ""},
		{"Broken JSON", `{ "total_budget": 5`, "", "the body of your request contains invalid or un-parseable data"},
		{"Empty body", "", "", "the request body must not be empty"},
		{"Array body", `[1]`, "", "the body of your request contains invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/api/budget/create", tt.body)
			assertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.field != "" {
				var e struct {
					Fields map[string]string `json:"fields"`
				}
				test.DecodeResponse(t, &r, &e)
				assert.Contains(t, e.Fields, tt.field)
			}

			if tt.err != "" {
				assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
			}
		})
	}

	var budgets []models.Budget
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/budget/load", "")
	suite.decodeResponse(&r, &budgets)
	assert.Len(suite.T(), budgets, 0)
}

func (suite *TestSuiteStandard) TestBudgetsLoad() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/budget/load", "")
	assertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), "[]", r.Body.String())

	first := suite.createTestBudget(suite.T(), map[string]any{"total_budget": 100})
	second := suite.createTestBudget(suite.T(), map[string]any{"total_budget": 200})

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/budget/load", "")
	assertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets []models.Budget
	suite.decodeResponse(&r, &budgets)
	assert.Equal(suite.T(), []models.Budget{first, second}, budgets)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := suite.createTestBudget(suite.T(), map[string]any{"total_budget": 1000})
	other := suite.createTestBudget(suite.T(), map[string]any{"total_budget": 50})

	suite.createTestEnvelope(suite.T(), budget.ID, "Rent", 800)
	suite.createTestEnvelope(suite.T(), budget.ID, "Food", 200)
	kept := suite.createTestEnvelope(suite.T(), other.ID, "Fun", 50)

	r := test.Request(suite.T(), suite.controller, http.MethodDelete, fmt.Sprintf("http://example.com/api/budget/delete/%d", budget.ID), "")
	assertHTTPStatus(suite.T(), &r, http.StatusOK)

	var message controllers.MessageResponse
	suite.decodeResponse(&r, &message)
	assert.Equal(suite.T(), fmt.Sprintf("Budget %d and all its envelopes deleted successfully", budget.ID), message.Message)

	assert.Len(suite.T(), suite.loadEnvelopes(budget.ID), 0)

	envelopes := suite.loadEnvelopes(other.ID)
	if assert.Len(suite.T(), envelopes, 1) {
		assert.Equal(suite.T(), kept, envelopes[0].ID)
	}

	var budgets []models.Budget
	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/budget/load", "")
	suite.decodeResponse(&r, &budgets)
	assert.Equal(suite.T(), []models.Budget{other}, budgets)
}

func (suite *TestSuiteStandard) TestBudgetsDeleteNonExistent() {
	r := test.Request(suite.T(), suite.controller, http.MethodDelete, "http://example.com/api/budget/delete/9999", "")
	assertHTTPStatus(suite.T(), &r, http.StatusOK)

	var message controllers.MessageResponse
	suite.decodeResponse(&r, &message)
	assert.Equal(suite.T(), "Budget 9999 and all its envelopes deleted successfully", message.Message)
}

func (suite *TestSuiteStandard) TestBudgetsDeleteInvalidID() {
	r := test.Request(suite.T(), suite.controller, http.MethodDelete, "http://example.com/api/budget/delete/abc", "")
	assertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsMethodNotAllowed() {
	r := test.Request(suite.T(), suite.controller, http.MethodPut, "http://example.com/api/budget/load", "")
	assertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
