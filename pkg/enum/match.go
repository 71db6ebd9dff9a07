package enum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/funvibe/sumtype/internal/diagnostics"
)

// Arm pairs a pattern with the handler that runs when it is the first to match.
type Arm[R any] struct {
	Pattern Pattern
	Handler func(Bindings) R
}

// On builds an Arm.
func On[R any](p Pattern, h func(Bindings) R) Arm[R] {
	return Arm[R]{Pattern: p, Handler: h}
}

// Matcher is a compiled, exhaustive dispatch over one enumeration.
// It is immutable and safe for concurrent use.
type Matcher[R any] struct {
	enum        *Enum
	arms        []Arm[R]
	unreachable []int
}

// Compile validates arms against e and checks coverage. Every variant must
// be handled by an arm whose sub-patterns are all irrefutable (bindings or
// ignores), or a wildcard arm must be present; otherwise Compile fails with
// ErrNonExhaustiveMatch naming the missing variants. An arm with a literal
// sub-pattern handles only part of its variant and does not count.
//
// A nested sub-pattern counts as irrefutable only when it is a wildcard or
// irrefutable on a one-variant enumeration. Arms that split an inner
// enumeration across several outer arms are not combined, so
// Some(Some(_)), Some(None) and None are rejected until a Some(_) arm or a
// wildcard is added.
//
// Coverage is decided here, before any value is dispatched.
func Compile[R any](e *Enum, arms ...Arm[R]) (*Matcher[R], error) {
	if e == nil {
		return nil, errors.New("compile: nil enumeration")
	}

	covered := make([]bool, len(e.variants))
	wildcard := false
	var unreachable []int

	for i, arm := range arms {
		if arm.Pattern == nil {
			return nil, fmt.Errorf("arm %d: missing pattern", i)
		}
		if arm.Handler == nil {
			return nil, fmt.Errorf("arm %d (%s): missing handler", i, arm.Pattern)
		}
		info, err := checkPattern(e, arm.Pattern, make(map[string]bool))
		if err != nil {
			return nil, fmt.Errorf("arm %d (%s): %w", i, arm.Pattern, err)
		}

		if wildcard || (!info.wildcard && covered[info.index]) {
			unreachable = append(unreachable, i)
		}
		if info.wildcard {
			wildcard = true
		} else if info.irrefutable {
			covered[info.index] = true
		}
	}

	if !wildcard {
		missing := lo.Filter(e.variants, func(v Variant, _ int) bool {
			return !covered[v.Index]
		})
		if len(missing) > 0 {
			names := lo.Map(missing, func(v Variant, _ int) string { return v.Name })
			return nil, diagnostics.NewError(diagnostics.ErrD005, e.name, strings.Join(names, ", "))
		}
	}

	return &Matcher[R]{
		enum:        e,
		arms:        append([]Arm[R](nil), arms...),
		unreachable: unreachable,
	}, nil
}

// MustCompile is like Compile but panics on error. Assigning its result to a
// package-level variable turns a coverage gap into a failure at program start.
func MustCompile[R any](e *Enum, arms ...Arm[R]) *Matcher[R] {
	m, err := Compile(e, arms...)
	if err != nil {
		panic(err)
	}
	return m
}

// Enum returns the enumeration the matcher was compiled for.
func (m *Matcher[R]) Enum() *Enum {
	return m.enum
}

// Unreachable returns the indexes of arms that can never run because an
// earlier arm already handles everything they would match.
func (m *Matcher[R]) Unreachable() []int {
	return append([]int(nil), m.unreachable...)
}

// Dispatch runs the handler of the first arm matching v. It fails only when v
// is not a value of the matcher's enumeration.
func (m *Matcher[R]) Dispatch(v Value) (R, error) {
	var zero R
	if !v.IsValid() {
		return zero, diagnostics.NewError(diagnostics.ErrT001, m.enum.Type(), "an invalid value")
	}
	if !m.enum.sameAs(v.enum) {
		return zero, diagnostics.NewError(diagnostics.ErrT001, m.enum.Type(), v.Type())
	}

	for _, arm := range m.arms {
		b := make(Bindings)
		if matchPattern(arm.Pattern, v, b) {
			return arm.Handler(b), nil
		}
	}
	// Compile guarantees a covering arm for every variant.
	panic(fmt.Sprintf("enum: no arm matched %s", v))
}

// MustDispatch is like Dispatch but panics when v belongs to another enumeration.
func (m *Matcher[R]) MustDispatch(v Value) R {
	r, err := m.Dispatch(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Match compiles arms against v's enumeration and dispatches v.
func Match[R any](v Value, arms ...Arm[R]) (R, error) {
	var zero R
	if !v.IsValid() {
		return zero, diagnostics.NewError(diagnostics.ErrT001, "an enum value", "an invalid value")
	}
	m, err := Compile(v.enum, arms...)
	if err != nil {
		return zero, err
	}
	return m.Dispatch(v)
}
