package calc

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput       = errors.New("missing required input")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidCombination = errors.New("no formula exists for the selected day conditions")
	ErrInsufficientPeriod = errors.New("period must cover at least one month")
)

// InputError names the field that failed validation so handlers can point
// the user at the offending form input.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func missing(field string) error {
	return &InputError{Field: field, Err: ErrMissingInput}
}

func invalid(field string) error {
	return &InputError{Field: field, Err: ErrInvalidInput}
}
