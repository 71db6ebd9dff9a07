package typesystem

import (
	"fmt"

	"github.com/funvibe/sumtype/internal/diagnostics"
)

// UnknownTypeError indicates a named type that no registry knows about.
// It matches the T001 sentinel.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: unknown type: %s", diagnostics.ErrT001, e.Name)
}

func (e *UnknownTypeError) Is(target error) bool {
	return diagnostics.NewError(diagnostics.ErrT001, "a registered enumeration", e.Name).Is(target)
}

func NewUnknownTypeError(name string) *UnknownTypeError {
	return &UnknownTypeError{Name: name}
}
