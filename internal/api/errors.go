package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	apperrors "github.com/resenia/resenia-server/internal/errors"
	"github.com/resenia/resenia-server/internal/store"
)

// APIError is a custom error type that implements huma.StatusError.
// It maps domain errors to HTTP responses with consistent structure.
type APIError struct {
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			var domainErr *apperrors.Error
			if errors.As(err, &domainErr) {
				return &APIError{
					status:  domainErr.HTTPStatus(),
					Code:    string(domainErr.Code),
					Message: domainErr.Message,
					Details: domainErr.Details,
				}
			}

			if isNotFoundError(err) {
				return &APIError{
					status:  http.StatusNotFound,
					Code:    string(apperrors.CodeNotFound),
					Message: err.Error(),
				}
			}
		}

		return &APIError{
			status:  status,
			Code:    statusToCode(status),
			Message: message,
		}
	}
}

// isNotFoundError checks if the error is a "not found" error from the store.
func isNotFoundError(err error) bool {
	return errors.Is(err, store.ErrBookNotFound) ||
		errors.Is(err, store.ErrReviewNotFound) ||
		errors.Is(err, store.ErrUserNotFound) ||
		errors.Is(err, store.ErrSessionNotFound)
}

// statusToCode maps HTTP status codes to domain error codes.
func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(apperrors.CodeValidation)
	case http.StatusUnauthorized:
		return string(apperrors.CodeUnauthorized)
	case http.StatusForbidden:
		return string(apperrors.CodeForbidden)
	case http.StatusNotFound:
		return string(apperrors.CodeNotFound)
	case http.StatusConflict:
		return string(apperrors.CodeConflict)
	default:
		return string(apperrors.CodeInternal)
	}
}
