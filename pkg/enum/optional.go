package enum

import (
	"fmt"

	"github.com/funvibe/sumtype/internal/config"
	"github.com/funvibe/sumtype/internal/diagnostics"
)

// Some wraps v as Some(v) of Option<elem>.
func Some(elem Type, v interface{}) (Value, error) {
	opt, err := DefaultRegistry.OptionFor(elem)
	if err != nil {
		return Value{}, err
	}
	return opt.New(config.SomeCtorName, v)
}

// None returns None of Option<elem>. It panics when elem is nil.
func None(elem Type) Value {
	return OptionOf(elem).MustNew(config.NoneCtorName)
}

// IsPresent reports whether v is Some(_). v must be an Option value.
func IsPresent(v Value) bool {
	return v.IsValid() && v.enum.IsOption() && v.Tag() == config.SomeCtorName
}

// UnwrapOr returns the payload of Some(x), or def for None.
func UnwrapOr(v Value, def interface{}) (interface{}, error) {
	if err := requireOption(v); err != nil {
		return nil, err
	}
	if v.Tag() == config.SomeCtorName {
		return v.fields[0], nil
	}
	return def, nil
}

// UnwrapOrFail returns the payload of Some(x). For None it returns an error
// that matches both ErrUnwrapFailure and cause.
func UnwrapOrFail(v Value, cause error) (interface{}, error) {
	if err := requireOption(v); err != nil {
		return nil, err
	}
	if v.Tag() == config.SomeCtorName {
		return v.fields[0], nil
	}
	failure := diagnostics.NewError(diagnostics.ErrR001, v.enum.name+" is None")
	if cause == nil {
		return nil, failure
	}
	return nil, fmt.Errorf("%w: %w", failure, cause)
}

func requireOption(v Value) error {
	if !v.IsValid() || !v.enum.IsOption() {
		return diagnostics.NewError(diagnostics.ErrT001, "an Option value", describe(v))
	}
	return nil
}

func describe(v Value) string {
	if !v.IsValid() {
		return "an invalid value"
	}
	return v.Type().String()
}
