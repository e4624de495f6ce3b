package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a caller passes input the core refuses to
// coerce, such as invalid UTF-8 or a non-positive n-gram size.
var ErrInvalidInput = errors.New("invalid input")

// ErrDependencyUnavailable is returned when a required collaborator
// (tokenizer, tagger, sentiment model) cannot be loaded or reached.
var ErrDependencyUnavailable = errors.New("dependency unavailable")

// DependencyError names the collaborator that failed.
type DependencyError struct {
	Name string
	Err  error
}

func (e *DependencyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Name, ErrDependencyUnavailable)
	}
	return fmt.Sprintf("%s: %s: %v", e.Name, ErrDependencyUnavailable, e.Err)
}

// Is makes errors.Is(err, ErrDependencyUnavailable) hold.
func (e *DependencyError) Is(target error) bool {
	return target == ErrDependencyUnavailable
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as a DependencyError for the named collaborator.
func Unavailable(name string, err error) error {
	return &DependencyError{Name: name, Err: err}
}

// InvalidInput wraps a message as an ErrInvalidInput.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
