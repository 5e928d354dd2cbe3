// Package client talks to the textfix correction server over HTTP/JSON and
// owns the client's local sqlite database.
//
// HTTPClient is built on go-resty. Every call carries a per-request timeout
// and an X-Request-Id header; protected calls add "Authorization: Bearer".
// Non-2xx responses surface as *HTTPError, which matches the sentinel
// errors in errors.go through errors.Is:
//
//	401 → ErrUnauthorized    403 → ErrForbidden
//	404 → ErrNotFound        5xx / transport failure → ErrUnavailable
//
// Input rejected before any request is made (short signup password) is a
// *ValidationError matching ErrValidation.
package client
