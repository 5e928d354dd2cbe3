package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrNoToken      = errors.New("server response carried no token")
)

// HTTPError is a non-2xx response. Detail is the server's "detail" message
// when the body carried one; otherwise Body holds the start of the raw body
// text, for logs only.
type HTTPError struct {
	Status int
	Detail string
	Body   string
}

func (e *HTTPError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("status %d: %s", e.Status, e.Detail)
	case e.Body != "":
		return fmt.Sprintf("status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("status %d: %s", e.Status, http.StatusText(e.Status))
}

// Is maps the status onto the package sentinels.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}

// ValidationError is input rejected locally, before contacting the server.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DetailOr returns the message a user should see for err: the server's
// detail or the validation message when there is one, fallback otherwise.
func DetailOr(err error, fallback string) string {
	var he *HTTPError
	if errors.As(err, &he) && he.Detail != "" {
		return he.Detail
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}
