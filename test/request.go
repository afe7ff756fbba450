package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/alex-b96/budgeting-app/pkg/config"
	"github.com/alex-b96/budgeting-app/pkg/controllers"
	"github.com/alex-b96/budgeting-app/pkg/httperrors"
	"github.com/alex-b96/budgeting-app/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Config returns the configuration used for routers in tests.
func Config(t *testing.T) config.Config {
	apiURL, err := url.Parse("http://example.com")
	require.Nil(t, err)

	return config.Config{
		APIURL:    apiURL,
		GinMode:   "debug",
		LogFormat: "human",
		Database: config.Database{
			Driver: config.DriverSQLite,
			DSN:    ":memory:",
		},
	}
}

// Router returns a router with all routes attached, backed by the controller.
func Router(t *testing.T, co controllers.Controller) *gin.Engine {
	r, err := router.Config(Config(t))
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(co, r.Group("/"))

	return r
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, co controllers.Controller, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	return Serve(t, Router(t, co), method, reqURL, body, headers...)
}

// Serve sends a request to an existing handler and records the response.
func Serve(t *testing.T, h http.Handler, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch v := body.(type) {
	case nil:
		byteBuffer = &bytes.Buffer{}
	case string:
		byteBuffer = bytes.NewBufferString(v)
	case *bytes.Buffer:
		byteBuffer = v
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	recorder := httptest.NewRecorder()

	// httptest.NewRequest sets RequestURI like a server does, the docs
	// handler depends on it
	req := httptest.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	h.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of an error response body.
func DecodeError(t *testing.T, s []byte) string {
	var r httperrors.HTTPError
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
