package constraint

import (
	"errors"
	"fmt"
)

// Violation codes. The taxonomy is part of the external contract: consumers
// branch on these values rather than parsing messages, so they must not be
// renumbered.
const (
	CodeTooShort        = 1001
	CodeTooLong         = 1002
	CodeBelowMinimum    = 1003
	CodeAboveMaximum    = 1004
	CodePatternMismatch = 1005
)

// ValidationError is a single constraint violation. Path locates the failing
// field inside the message, with nested segments joined by dots and repeated
// elements addressed by index ("cdt_trf_tx_inf[0].pmt_id.end_to_end_id").
type ValidationError struct {
	Code    int
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (code %d)", e.Path, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// NewError builds a violation whose path starts at the given field.
func NewError(code int, field, message string) *ValidationError {
	return &ValidationError{Code: code, Path: field, Message: message}
}

// ExtractValidationError returns the ValidationError carried by err, or nil
// if err is not a constraint violation.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	return nil
}

// IsValidationError reports whether err is a constraint violation.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
