package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/logging"
	"github.com/go-chi/chi/v5"
)

const (
	maxBodyBytes        = 1 << 20
	internalErrorDetail = "Internal server error"
)

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

func CodedError(code int, err error) error {
	return &codedError{err: err, code: code}
}

func CodedErrorf(code int, format string, args ...any) error {
	return &codedError{err: fmt.Errorf(format, args...), code: code}
}

// noContent makes RestHandler answer 204 with an empty body.
type noContent struct{}

type errorResponse struct {
	Detail string `json:"detail"`
}

func ParseRequest[T any](r *http.Request, w http.ResponseWriter) (T, error) {
	var data T
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return data, CodedErrorf(http.StatusBadRequest, "unable to parse request body")
	}
	return data, nil
}

// RestHandler adapts a handler returning a value or an error to
// http.HandlerFunc. Errors are written as {"detail": "..."}; uncoded errors
// go through serviceError first. 500s never expose the underlying error.
func RestHandler(logger logging.Logger, handler func(w http.ResponseWriter, r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(w, r)
		if err != nil {
			var cerr *codedError
			if !errors.As(err, &cerr) {
				cerr = serviceError(err)
			}
			detail := cerr.Error()
			if cerr.code == http.StatusInternalServerError {
				logger.Error(r.Context(), "internal server error received in endpoint", "path", r.URL.Path, "error", err)
				detail = internalErrorDetail
			}
			WriteJsonResponse(w, cerr.code, errorResponse{Detail: detail})
			return
		}

		if _, ok := res.(noContent); ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if res == nil {
			res = struct{}{}
		}

		WriteJsonResponse(w, http.StatusOK, res)
	}
}

func WriteJsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// serviceError maps the sentinel errors of the service layer to statuses.
// Anything unknown is a 500 with a generic message.
func serviceError(err error) *codedError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrorEmailInvalid),
		errors.Is(err, common.ErrorPasswordTooShort),
		errors.Is(err, common.ErrorInputEmpty),
		errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrOTPInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrorUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, common.ErrEmailNotVerified),
		errors.Is(err, common.ErrorForbidden):
		code = http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		code = http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return &codedError{err: errors.New("Email already registered"), code: http.StatusConflict}
	case errors.Is(err, common.ErrOTPLimited):
		code = http.StatusTooManyRequests
	}
	return &codedError{err: err, code: code}
}

func URLParamInt64(r *http.Request, key string) (int64, error) {
	param := chi.URLParam(r, key)
	if param == "" {
		return 0, CodedErrorf(http.StatusBadRequest, "missing {%v} url parameter", key)
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, CodedErrorf(http.StatusBadRequest, "invalid '%v' url parameter provided", key)
	}
	return id, nil
}
