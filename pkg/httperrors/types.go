package httperrors

// HTTPError is the body of every error response.
type HTTPError struct {
	Error  string            `json:"error" example:"the request contains invalid fields"`
	Fields map[string]string `json:"fields,omitempty"` // Problem per field for validation errors
}

// Error is an error together with the HTTP status code it is reported with.
type Error struct {
	Err    error
	Status int // Used with http.StatusX for the corresponding HTTP status code
	Fields map[string]string
}

// Error returns the error as a string.
func (e Error) Error() string {
	return e.Err.Error()
}

// Body returns the response body for the error.
func (e Error) Body() HTTPError {
	return HTTPError{
		Error:  e.Error(),
		Fields: e.Fields,
	}
}
