package github

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingField      = errors.New("missing field")
	ErrUnexpectedPayload = errors.New("unexpected payload")
)

// FieldError reports a required field that is absent from a payload.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q not found in payload", e.Field)
}

func (e *FieldError) Is(target error) bool { return target == ErrMissingField }

// HTTPError is returned by HTTPFetcher for non-2xx responses.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error (%d) for %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("API error (%d %s) for %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
