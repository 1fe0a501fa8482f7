package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrBadArgument = errors.New("bad argument")
	ErrUnavailable = errors.New("unavailable")
)

// Validation messages shared by the entity and the request DTOs.
const (
	MsgRequired = "is required"
	MsgNotBlank = "must not be blank"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that no todo exists with the given ID.
// It unwraps to ErrNotFound.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Todo not found with id: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// BadArgumentError reports structurally valid input that cannot be used,
// such as a non-numeric path ID. It unwraps to ErrBadArgument.
type BadArgumentError struct {
	Message string
}

func (e *BadArgumentError) Error() string {
	return e.Message
}

func (e *BadArgumentError) Unwrap() error {
	return ErrBadArgument
}
