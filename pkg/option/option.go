// Package option provides Option[T], a statically typed optional value.
//
// An Option[T] is either Some(v) or None. It is a distinct Go type from T:
// code that wants the contained value has to say what happens when it is
// absent, either by matching on it or by one of the Unwrap helpers whose
// names state the failure mode.
//
//	port := option.FromComma(os.LookupEnv("PORT"))
//	addr := ":" + port.UnwrapOr("8080")
package option

import (
	"fmt"

	"github.com/funvibe/sumtype/internal/config"
	"github.com/funvibe/sumtype/internal/diagnostics"
	"github.com/funvibe/sumtype/internal/typesystem"
	"github.com/funvibe/sumtype/pkg/enum"
)

// ErrUnwrapFailure matches every error produced by UnwrapOrFail and every
// panic value produced by MustUnwrap and Expect.
var ErrUnwrapFailure = diagnostics.Sentinel(diagnostics.ErrR001)

// Option holds either one value of type T or nothing. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromComma turns a comma-ok pair into an Option.
func FromComma[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnwrapOr returns the value, or def when o is None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the value, or the result of fn when o is None.
// fn is not called for Some.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// UnwrapOrZero returns the value, or the zero T when o is None.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// UnwrapOrFail returns the value, or an error matching ErrUnwrapFailure when
// o is None. A non-nil cause is wrapped as well.
func (o Option[T]) UnwrapOrFail(cause error) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	failure := o.failure("value is None")
	if cause == nil {
		return zero, failure
	}
	return zero, fmt.Errorf("%w: %w", failure, cause)
}

// MustUnwrap returns the value and panics with an R001 diagnostic when o is None.
func (o Option[T]) MustUnwrap() T {
	return o.Expect("value is None")
}

// Expect is like MustUnwrap with a caller supplied message.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(o.failure(msg))
	}
	return o.value
}

func (o Option[T]) failure(msg string) error {
	return diagnostics.NewError(diagnostics.ErrR001, fmt.Sprintf("%s (%s)", msg, o.typeName()))
}

func (o Option[T]) typeName() string {
	return fmt.Sprintf("%s[%T]", config.OptionTypeName, o.value)
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Or returns o if it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns o if it is Some, otherwise the result of fn.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// Filter keeps the value only when keep reports true.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.ok && keep(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if !o.ok {
		return config.NoneCtorName
	}
	if s, ok := any(o.value).(string); ok {
		return fmt.Sprintf("%s(%q)", config.SomeCtorName, s)
	}
	return fmt.Sprintf("%s(%v)", config.SomeCtorName, o.value)
}

// Match runs some with the value or none when there is no value. Both
// handlers are required, so every case is handled by construction.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.value)
	}
	return none()
}

// IfSome runs fn with the value when o is Some and reports whether it did.
// It is not exhaustive; None is silently ignored.
func IfSome[T any](o Option[T], fn func(T)) bool {
	if o.ok {
		fn(o.value)
	}
	return o.ok
}

// IfSomeElse runs fn with the value, or otherwise when o is None.
func IfSomeElse[T any](o Option[T], fn func(T), otherwise func()) {
	if o.ok {
		fn(o.value)
		return
	}
	if otherwise != nil {
		otherwise()
	}
}

// Map applies fn to the value of a Some.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// AndThen applies fn to the value of a Some and returns its result unchanged.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}

// ToValue converts o into a value of the dynamic Option<elem> enumeration.
func ToValue[T any](o Option[T], elem typesystem.Type) (enum.Value, error) {
	opt, err := enum.DefaultRegistry.OptionFor(elem)
	if err != nil {
		return enum.Value{}, err
	}
	if !o.ok {
		return opt.New(config.NoneCtorName)
	}
	return opt.New(config.SomeCtorName, o.value)
}

// FromValue converts a value of a dynamic Option<_> enumeration. The payload
// of Some must have Go type T.
func FromValue[T any](v enum.Value) (Option[T], error) {
	if !v.IsValid() || !v.Enum().IsOption() {
		got := "an invalid value"
		if v.IsValid() {
			got = v.Type().String()
		}
		return None[T](), diagnostics.NewError(diagnostics.ErrT001, "an Option value", got)
	}
	if !v.Is(config.SomeCtorName) {
		return None[T](), nil
	}
	x, ok := v.Field(0).(T)
	if !ok {
		return None[T](), diagnostics.NewError(diagnostics.ErrT001, fmt.Sprintf("%T", *new(T)), fmt.Sprintf("%T", v.Field(0)))
	}
	return Some(x), nil
}
