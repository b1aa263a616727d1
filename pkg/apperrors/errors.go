package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// StandardError is the error shape every layer of the application speaks.
// Handlers never inspect raw repository errors; services translate them
// into one of these.
type StandardError struct {
	Code    string `json:"error"`             // e.g. "ResourceNotFound", "InsufficientStock"
	Message string `json:"message"`           // human-readable summary
	Details string `json:"details,omitempty"` // field name, ids, counts
}

// Error implements the error interface.
func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to an HTTP status code.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case "ResourceNotFound":
		return http.StatusNotFound
	case "ValidationError", "InvalidRequest", "InsufficientStock":
		return http.StatusBadRequest
	case "DuplicateSKU", "Conflict":
		return http.StatusConflict
	case "Unauthorized":
		return http.StatusUnauthorized
	case "DatabaseError", "InternalError":
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// New creates a StandardError with an arbitrary code.
func New(code, message, details string) *StandardError {
	return &StandardError{Code: code, Message: message, Details: details}
}

func NewNotFound(resource string, id interface{}) *StandardError {
	return New("ResourceNotFound", fmt.Sprintf("%s not found", resource), fmt.Sprintf("id: %v", id))
}

func NewValidationError(message, details string) *StandardError {
	return New("ValidationError", message, details)
}

func NewInvalidRequest(message string) *StandardError {
	return New("InvalidRequest", message, "")
}

func NewInsufficientStock(productName string, requested, available int) *StandardError {
	return New("InsufficientStock", fmt.Sprintf("insufficient stock for product %s", productName),
		fmt.Sprintf("requested: %d, available: %d", requested, available))
}

func NewDuplicateSKU(sku string) *StandardError {
	return New("DuplicateSKU", "a product with this SKU already exists", fmt.Sprintf("sku: %s", sku))
}

func NewConflict(message string) *StandardError {
	return New("Conflict", message, "")
}

func NewUnauthorized(message string) *StandardError {
	return New("Unauthorized", message, "")
}

func NewDatabaseError(operation string, err error) *StandardError {
	return New("DatabaseError", fmt.Sprintf("database operation failed: %s", operation), err.Error())
}

func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return New("InternalError", message, details)
}

// AsStandardError extracts a *StandardError from an error chain, wrapping
// unknown errors as InternalError so the HTTP layer always has a mapping.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError("unexpected error", err)
}

// IsNotFound reports whether err carries the ResourceNotFound code.
func IsNotFound(err error) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Code == "ResourceNotFound"
}
