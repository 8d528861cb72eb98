package errors

import (
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeInvalidRequest  = "InvalidRequest"
	CodeValidationError = "ValidationError"
	CodeItemNotFound    = "ItemNotFound"
	CodeRouteNotFound   = "ResourceNotFound"
	CodeStorageError    = "StorageError"
	CodeRequestInFlight = "RequestInProgress"
	CodeInternalError   = "InternalError"
)

// StandardError represents a standardized error response
type StandardError struct {
	Code    string `json:"error"`             // Error code (e.g. "InvalidRequest", "ItemNotFound")
	Message string `json:"message"`           // Human-readable error message
	Details string `json:"details,omitempty"` // Field name, id or underlying cause
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest, CodeValidationError:
		return http.StatusBadRequest
	case CodeItemNotFound, CodeRouteNotFound:
		return http.StatusNotFound
	case CodeRequestInFlight:
		return http.StatusConflict
	case CodeStorageError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewStandardError creates a new StandardError
func NewStandardError(errorCode, message, details string) *StandardError {
	return &StandardError{
		Code:    errorCode,
		Message: message,
		Details: details,
	}
}

func NewInvalidRequest(message, details string) *StandardError {
	return NewStandardError(CodeInvalidRequest, message, details)
}

func NewValidationError(message, field string) *StandardError {
	return NewStandardError(CodeValidationError, message, fmt.Sprintf("Field: %s", field))
}

func NewItemNotFound(itemID string) *StandardError {
	return NewStandardError(CodeItemNotFound, "item not found", fmt.Sprintf("Item ID: %s", itemID))
}

func NewRouteNotFound(method, path string) *StandardError {
	return NewStandardError(CodeRouteNotFound, "route not found", fmt.Sprintf("%s %s", method, path))
}

func NewRequestInProgress(idempotencyKey string) *StandardError {
	return NewStandardError(CodeRequestInFlight, "a request with this idempotency key is still in progress", fmt.Sprintf("Idempotency-Key: %s", idempotencyKey))
}

func NewStorageError(operation string, err error) *StandardError {
	return NewStandardError(CodeStorageError, fmt.Sprintf("storage operation failed: %s", operation), err.Error())
}

func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeInternalError, message, details)
}
