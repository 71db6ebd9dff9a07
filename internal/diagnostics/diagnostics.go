// Package diagnostics defines the error codes reported by sumtype and the
// DiagnosticError type that carries them.
package diagnostics

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
)

// ErrorCode identifies a class of diagnostic.
// D = definition time, T = type mismatch, R = runtime, L = lint.
type ErrorCode string

const (
	ErrD001 ErrorCode = "D001" // duplicate definition
	ErrD002 ErrorCode = "D002" // empty enumeration
	ErrD003 ErrorCode = "D003" // unknown variant
	ErrD004 ErrorCode = "D004" // arity mismatch
	ErrD005 ErrorCode = "D005" // non-exhaustive match
	ErrD006 ErrorCode = "D006" // invalid identifier
	ErrD007 ErrorCode = "D007" // duplicate binding
	ErrD008 ErrorCode = "D008" // unknown record field

	ErrT001 ErrorCode = "T001" // payload type mismatch
	ErrT002 ErrorCode = "T002" // optional used as bare value, or the reverse

	ErrR001 ErrorCode = "R001" // unwrap failure

	ErrL001 ErrorCode = "L001" // non-exhaustive type switch
)

var codeNames = map[ErrorCode]string{
	ErrD001: "DuplicateDefinition",
	ErrD002: "EmptyEnumeration",
	ErrD003: "UnknownVariant",
	ErrD004: "ArityMismatch",
	ErrD005: "NonExhaustiveMatch",
	ErrD006: "InvalidIdentifier",
	ErrD007: "DuplicateBinding",
	ErrD008: "UnknownField",
	ErrT001: "TypeMismatch",
	ErrT002: "TypeMismatch",
	ErrR001: "UnwrapFailure",
	ErrL001: "NonExhaustiveSwitch",
}

var templates = map[ErrorCode]string{
	ErrD001: "duplicate definition: %s",
	ErrD002: "enumeration %s has no variants",
	ErrD003: "%s has no variant %s",
	ErrD004: "%s expects %d payload value(s), got %d",
	ErrD005: "non-exhaustive match on %s: missing %s",
	ErrD006: "invalid identifier %q",
	ErrD007: "binding %s is bound more than once in one pattern",
	ErrD008: "%s has no field %s",
	ErrT001: "type mismatch: expected %s, got %s",
	ErrT002: "cannot use %s as %s without an explicit match or unwrap",
	ErrR001: "unwrap failure: %s",
	ErrL001: "non-exhaustive type switch on %s: missing %s",
}

// Name returns the human readable name of the code.
func (c ErrorCode) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "Unknown"
}

// DiagnosticError is an error with a code and, for lint findings, a source position.
type DiagnosticError struct {
	Code    ErrorCode
	Pos     token.Position
	File    string
	Message string
}

// NewError formats the template of code with args.
func NewError(code ErrorCode, args ...interface{}) *DiagnosticError {
	tmpl, ok := templates[code]
	if !ok {
		return &DiagnosticError{Code: code, Message: fmt.Sprint(args...)}
	}
	return &DiagnosticError{Code: code, Message: fmt.Sprintf(tmpl, args...)}
}

// NewErrorAt is NewError with a source position.
func NewErrorAt(code ErrorCode, pos token.Position, args ...interface{}) *DiagnosticError {
	e := NewError(code, args...)
	e.Pos = pos
	e.File = pos.Filename
	return e
}

// Sentinel returns a message-less error usable as an errors.Is target for code.
func Sentinel(code ErrorCode) *DiagnosticError {
	return &DiagnosticError{Code: code}
}

func (e *DiagnosticError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s", e.Code, e.Code.Name())
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches sentinels of the same code. T001 and T002 are both type
// mismatches, so either sentinel matches either code.
func (e *DiagnosticError) Is(target error) bool {
	t, ok := target.(*DiagnosticError)
	if !ok || t.Message != "" {
		return false
	}
	if t.Code == e.Code {
		return true
	}
	return isTypeMismatch(t.Code) && isTypeMismatch(e.Code)
}

func isTypeMismatch(c ErrorCode) bool {
	return c == ErrT001 || c == ErrT002
}

// Sort orders diagnostics by file, line and column. Diagnostics without a
// position keep their relative order and come first.
func Sort(errs []*DiagnosticError) {
	slices.SortStableFunc(errs, func(a, b *DiagnosticError) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
		)
	})
}
