// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks caller mistakes such as an empty search term.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when an insert collides with an existing id.
	ErrConflict = errors.New("record already exists")
)

// NotFoundError reports that a lookup or search matched nothing.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

// NewNotFound builds a NotFoundError for an entity looked up by id.
func NewNotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, Key: fmt.Sprintf("with ID %d", id)}
}

// NewNoMatches builds a NotFoundError for a search term with zero results.
func NewNoMatches(entity, term string) error {
	return &NotFoundError{Entity: entity, Key: fmt.Sprintf("matching %q", term)}
}

// Invalid wraps ErrInvalidInput with a detail message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// StoreFault wraps a failure of the backing store.
type StoreFault struct {
	Op  string
	Err error
}

func (e *StoreFault) Error() string {
	return fmt.Sprintf("store fault during %s: %v", e.Op, e.Err)
}

func (e *StoreFault) Unwrap() error { return e.Err }

// Fault wraps err as a StoreFault unless it is already classified.
func Fault(op string, err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	var sf *StoreFault
	if errors.As(err, &nf) || errors.As(err, &sf) ||
		errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidInput) {
		return err
	}
	return &StoreFault{Op: op, Err: err}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsStoreFault reports whether err is a StoreFault.
func IsStoreFault(err error) bool {
	var sf *StoreFault
	return errors.As(err, &sf)
}
