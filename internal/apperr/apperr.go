package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError reports a referenced id that is absent from a store.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// PaymentError reports an unregistered or declined payment method.
type PaymentError struct {
	Method  string
	Message string
}

func (e *PaymentError) Error() string {
	return "payment failed: " + e.Message
}

// ValidationError reports a missing or malformed input at checkout or cart time.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// StatusCode maps an error from the domain packages to the HTTP status a handler should return.
func StatusCode(err error) int {
	var (
		nf *NotFoundError
		pe *PaymentError
		ve *ValidationError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &pe):
		return http.StatusPaymentRequired
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
