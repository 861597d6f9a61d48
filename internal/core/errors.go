package core

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed command arguments. Its message is a
// corrective hint safe to show to the user verbatim. Validation failures are
// recoverable and never logged as system faults.
type ValidationError struct {
	msg string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

// StoreError classifies a failure of the backing ledger store: unreachable
// service, rejected write, malformed response. The cause is preserved for
// operator logs; callers render a generic failure.
type StoreError struct {
	op  string
	err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{op: op, err: err}
}

func (e *StoreError) Error() string { return e.op + ": " + e.err.Error() }
func (e *StoreError) Unwrap() error { return e.err }

// IsValidation reports whether err classifies as a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsStore reports whether err classifies as a StoreError.
func IsStore(err error) bool {
	var s *StoreError
	return errors.As(err, &s)
}
