// Package server provides the HTTP REST API for the resume checkup service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mateo/resume-checkup/internal/extraction"
)

// ErrSessionNotFound indicates the session does not exist or has expired.
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrDailyLimit indicates a free session already scanned today.
type ErrDailyLimit struct{}

func (e *ErrDailyLimit) Error() string {
	return "daily scan limit reached; upgrade to Pro for unlimited scans"
}

// ErrCheckoutMismatch indicates the checkout ID does not belong to the session.
type ErrCheckoutMismatch struct {
	CheckoutID string
}

func (e *ErrCheckoutMismatch) Error() string {
	return fmt.Sprintf("checkout does not belong to this session: %s", e.CheckoutID)
}

// ErrCheckoutUnpaid indicates the provider reported the checkout as not paid.
type ErrCheckoutUnpaid struct {
	CheckoutID string
}

func (e *ErrCheckoutUnpaid) Error() string {
	return fmt.Sprintf("checkout not paid: %s", e.CheckoutID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unsupported *extraction.UnsupportedFormatError
	var parseErr *extraction.ParseError
	switch {
	case errors.As(err, &unsupported), errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	}

	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusUnauthorized
	case *ErrDailyLimit:
		return http.StatusTooManyRequests
	case *ErrCheckoutMismatch, *ErrCheckoutUnpaid:
		return http.StatusPaymentRequired
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
