package errors

import "net/http"

type HTTPError interface {
	error
	StatusCode() int
}

type apiError struct {
	msg  string
	code int
}

func (e *apiError) Error() string   { return e.msg }
func (e *apiError) StatusCode() int { return e.code }

var (
	ErrBlockInFuture = &apiError{msg: "block in future", code: http.StatusBadRequest}
	ErrBlockNotFound = &apiError{msg: "block not found", code: http.StatusNotFound}

	ErrUpstreamUnavailable = &apiError{msg: "execution node unavailable", code: http.StatusBadGateway}
	ErrRequestTimeout      = &apiError{msg: "request timed out", code: http.StatusGatewayTimeout}
	ErrInternal            = &apiError{msg: "internal server error", code: http.StatusInternalServerError}
)
