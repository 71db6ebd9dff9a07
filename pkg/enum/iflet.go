package enum

import (
	"github.com/funvibe/sumtype/internal/diagnostics"
)

// IfLet runs then when v matches p and reports whether it did. Values that
// do not match are ignored.
//
// IfLet is not exhaustive: it does not check that other variants are
// handled. Use Compile when every variant must be considered.
func IfLet(v Value, p Pattern, then func(Bindings)) (bool, error) {
	return ifLet(v, p, then, nil)
}

// IfLetElse runs then when v matches p and otherwise runs otherwise, which
// plays the role of a wildcard arm. A nil otherwise behaves like IfLet.
func IfLetElse(v Value, p Pattern, then func(Bindings), otherwise func()) error {
	_, err := ifLet(v, p, then, otherwise)
	return err
}

func ifLet(v Value, p Pattern, then func(Bindings), otherwise func()) (bool, error) {
	if !v.IsValid() {
		return false, diagnostics.NewError(diagnostics.ErrT001, "an enum value", "an invalid value")
	}
	if _, err := checkPattern(v.enum, p, make(map[string]bool)); err != nil {
		return false, err
	}

	b := make(Bindings)
	if matchPattern(p, v, b) {
		if then != nil {
			then(b)
		}
		return true, nil
	}
	if otherwise != nil {
		otherwise()
	}
	return false, nil
}
