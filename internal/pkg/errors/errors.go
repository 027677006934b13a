package errors

import (
	goerrors "errors"

	"github.com/gofiber/fiber/v2"
)

type APIError string

func (e APIError) Error() string {
	return string(e)
}

func (e APIError) Map() map[string]any {
	return map[string]any{"error": map[string]any{
		"code":    statusOf(e),
		"message": e.Error(),
	}}
}

const (
	ErrUserNotFound      APIError = "user not found"
	ErrClassNotFound     APIError = "class not found"
	ErrSelectionNotFound APIError = "selected class not found"
	ErrAlreadySelected   APIError = "class already selected"

	ErrMissingAuthHeader APIError = "authorization header required"
	ErrInvalidToken      APIError = "invalid or expired token"
	ErrForbidden         APIError = "insufficient permissions"

	ErrInvalidRequest APIError = "invalid request body"
	ErrInvalidPrice   APIError = "price must be a positive number"
	ErrInvalidRole    APIError = "role must be one of none, admin, instructor"

	ErrPaymentGateway APIError = "payment gateway unavailable"
	ErrDb             APIError = "database error"
)

func statusOf(e APIError) int {
	switch e {
	case ErrMissingAuthHeader:
		return fiber.StatusUnauthorized
	case ErrInvalidToken, ErrForbidden:
		return fiber.StatusForbidden
	case ErrUserNotFound, ErrClassNotFound, ErrSelectionNotFound:
		return fiber.StatusNotFound
	case ErrAlreadySelected:
		return fiber.StatusConflict
	case ErrInvalidRequest, ErrInvalidPrice, ErrInvalidRole:
		return fiber.StatusUnprocessableEntity
	case ErrPaymentGateway:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// Status reports the HTTP status an error maps to. Unknown errors are 500.
func Status(err error) int {
	var apiErr APIError
	if goerrors.As(err, &apiErr) {
		return statusOf(apiErr)
	}
	return fiber.StatusInternalServerError
}

// Envelope builds the JSON error body for an error, unwrapping to the
// nearest APIError in the chain.
func Envelope(err error) map[string]any {
	var apiErr APIError
	if goerrors.As(err, &apiErr) {
		return apiErr.Map()
	}
	return map[string]any{"error": map[string]any{
		"code":    fiber.StatusInternalServerError,
		"message": "internal server error",
	}}
}
