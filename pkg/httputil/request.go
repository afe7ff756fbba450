package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var fieldNames sync.Once

// useAPIFieldNames makes the validator report the names clients use
// (JSON keys and path parameters) instead of the Go struct field names.
func useAPIFieldNames() {
	fieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "uri"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}

				if name != "" {
					return name
				}
			}

			return f.Name
		})
	})
}

// BindData binds the JSON body of the request to data and validates it.
//
// validator.ValidationErrors and *json.UnmarshalTypeError are returned as they are
// so that the offending fields can be reported to the client.
func BindData(c *gin.Context, data any) error {
	useAPIFieldNames()

	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return err
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindURI binds and validates the path parameters of the request.
func BindURI(c *gin.Context, data any) error {
	useAPIFieldNames()
	return c.ShouldBindUri(data)
}
