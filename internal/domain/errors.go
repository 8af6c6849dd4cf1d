package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by repositories, services and transport.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	// ErrConflict means the stored state no longer allows the operation,
	// e.g. a match already left the status the caller saw.
	ErrConflict = errors.New("conflict")
)

// FieldError is one rejected input field. Field uses the wire name
// (event_date, PEOPLE.weights.image).
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every rejected field of one input.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError rejects a match status change the state machine does not allow.
type TransitionError struct {
	From MatchStatus
	To   MatchStatus
}

// NewTransitionError returns a TransitionError for from -> to.
func NewTransitionError(from, to MatchStatus) *TransitionError {
	return &TransitionError{From: from, To: to}
}

func (e *TransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("match is %s and can no longer change", e.From)
	}
	return fmt.Sprintf("cannot move match from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrConflict }
