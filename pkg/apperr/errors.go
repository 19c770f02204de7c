// Package apperr defines the error taxonomy shared by all domains.
// Handlers map kinds to HTTP status codes via errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrDuplicate           = errors.New("duplicate key")
	ErrCycleDetected       = errors.New("cycle detected")
	ErrConversionAmbiguous = errors.New("ambiguous currency conversion")
)

// Error carries a kind plus field-level context.
type Error struct {
	kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.kind.Error(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.kind
}

func Validation(field, format string, args ...interface{}) *Error {
	return &Error{kind: ErrValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func NotFound(entity, id string) *Error {
	return &Error{kind: ErrNotFound, Field: entity, Message: id}
}

func Duplicate(field, value string) *Error {
	return &Error{kind: ErrDuplicate, Field: field, Message: value}
}

func Cycle(categoryID string) *Error {
	return &Error{kind: ErrCycleDetected, Field: "category", Message: categoryID}
}
