package service

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel business rule errors
var (
	// ErrInvalidStatus is returned when a status update names a value
	// outside the enumerated set
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInvalidPeriod is returned when a report period is not one of
	// week, month, quarter or year
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrCreditLimitExceeded is returned when approving an order would
	// push the client past their credit limit
	ErrCreditLimitExceeded = errors.New("client credit limit exceeded")
)

// ValidationError marks a request rejected by input validation
type ValidationError struct {
	msg string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a new validation error
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a validation rejection
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
