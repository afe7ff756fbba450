package httperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alex-b96/budgeting-app/pkg/httputil"
	"github.com/alex-b96/budgeting-app/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidFields  = errors.New("the request contains invalid fields")
	ErrInvalidInteger = errors.New("a parameter in the request path is not a valid integer")
)

// New writes an error response with the status and message.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// Handler writes the error response for err.
func Handler(c *gin.Context, err error) {
	e := Parse(c, err)
	c.JSON(e.Status, e.Body())
}

// Parse maps an error to the HTTP status and message it is reported with.
//
// Errors that are not caused by the request are logged, the client only gets
// the request ID to hand to the server administrator.
func Parse(c *gin.Context, err error) Error {
	var validationErrors validator.ValidationErrors
	var typeError *json.UnmarshalTypeError
	var numError *strconv.NumError

	switch {
	case errors.As(err, &validationErrors):
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = ValidationErrorToText(e)
		}

		return Error{Err: ErrInvalidFields, Status: http.StatusBadRequest, Fields: fields}

	// A type error without a field means the body is not a JSON object at all
	case errors.As(err, &typeError) && typeError.Field == "":
		return Error{Err: httputil.ErrInvalidBody, Status: http.StatusBadRequest}

	case errors.As(err, &typeError):
		return Error{
			Err:    ErrInvalidFields,
			Status: http.StatusBadRequest,
			Fields: map[string]string{
				typeError.Field: fmt.Sprintf("%s must be of type %s", typeError.Field, typeError.Type),
			},
		}

	case errors.As(err, &numError):
		return Error{Err: fmt.Errorf("%w: '%s'", ErrInvalidInteger, numError.Num), Status: http.StatusBadRequest}

	case errors.Is(err, httputil.ErrRequestBodyEmpty), errors.Is(err, httputil.ErrInvalidBody):
		return Error{Err: err, Status: http.StatusBadRequest}

	case errors.Is(err, models.ErrBudgetReference), errors.Is(err, models.ErrBalanceOverflow):
		return Error{Err: err, Status: http.StatusBadRequest}

	case errors.Is(err, models.ErrDatabaseClosed):
		return Error{Err: err, Status: http.StatusInternalServerError}
	}

	// ErrGeneral has been logged by the database callback already
	if !errors.Is(err, models.ErrGeneral) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	return Error{
		Err:    fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)),
		Status: http.StatusInternalServerError,
	}
}

// ValidationErrorToText returns a human readable description of a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s characters", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
