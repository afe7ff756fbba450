package controllers_test

import (
	"net/http"

	"github.com/alex-b96/budgeting-app/pkg/controllers"
	"github.com/alex-b96/budgeting-app/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MessageResponse
	suite.decodeResponse(&recorder, &response)
	assert.Equal(suite.T(), "Hello from FastAPI!", response.Message)
}

func (suite *TestSuiteStandard) TestOptionsRoot() {
	recorder := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com/", "")
	assertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}
