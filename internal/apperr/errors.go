package apperr

import (
	"errors"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
)

// ValidationError is a client-side failure reported with 400. When it wraps a
// *calcerr.Error the response also carries the error kind and position.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewEvaluation wraps an evaluation failure with its fixed kind message.
func NewEvaluation(err error) *ValidationError {
	kind := calcerr.KindOf(err)
	if kind == calcerr.None {
		return &ValidationError{Message: err.Error(), Err: err}
	}
	return &ValidationError{Message: calcerr.Message(kind), Err: err}
}

// Calc returns the evaluation error inside e, if any.
func (e *ValidationError) Calc() (*calcerr.Error, bool) {
	var ce *calcerr.Error
	if errors.As(e.Err, &ce) {
		return ce, true
	}
	return nil, false
}
