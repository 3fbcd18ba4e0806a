package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before it is sent to the API.
	ErrValidation = errors.New("validation failed")

	ErrPortfolioNotSelected = errors.New("no portfolio selected")
	ErrPortfolioNotFound    = errors.New("portfolio not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// ValidationError reports a required or malformed form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func requirePositive(field, label string, v *Decimal) error {
	if v == nil {
		return invalid(field, "%s is required", label)
	}
	if !v.IsPositive() {
		return invalid(field, "%s must be positive", label)
	}
	return nil
}

func optionalPositive(field, label string, v *Decimal) error {
	if v != nil && !v.IsPositive() {
		return invalid(field, "%s must be positive", label)
	}
	return nil
}
