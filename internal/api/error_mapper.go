package api

import (
	"errors"
	"net/http"

	"currency-mask/internal/localefmt"
)

// ErrorCode represents unified API error codes
type ErrorCode string

const (
	ErrorCodeInvalidArgument     ErrorCode = "INVALID_ARGUMENT"
	ErrorCodeUnsupportedCurrency ErrorCode = "UNSUPPORTED_CURRENCY"
	ErrorCodeInvalidLocale       ErrorCode = "INVALID_LOCALE"
	ErrorCodeSessionNotFound     ErrorCode = "SESSION_NOT_FOUND"
	ErrorCodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// MapErrorToHTTP maps errors to HTTP status codes and error responses.
// Configuration errors from the platform formatter come back verbatim;
// the engine never substitutes a fallback currency or locale.
func MapErrorToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusOK, ErrorResponse{}
	}

	if errors.Is(err, localefmt.ErrUnsupportedCurrency) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    string(ErrorCodeUnsupportedCurrency),
			Message: err.Error(),
		}
	}

	if errors.Is(err, localefmt.ErrInvalidLocale) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    string(ErrorCodeInvalidLocale),
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Code:    string(ErrorCodeInternalError),
		Message: err.Error(),
	}
}
