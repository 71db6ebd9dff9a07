package enum

import "github.com/funvibe/sumtype/internal/diagnostics"

// Sentinels for errors.Is. Every error returned by this package that stems
// from a schema, pattern or payload problem matches exactly one of them. A
// named type missing from the registry is a *typesystem.UnknownTypeError and
// matches ErrTypeMismatch.
var (
	ErrDuplicateDefinition = diagnostics.Sentinel(diagnostics.ErrD001)
	ErrEmptyEnumeration    = diagnostics.Sentinel(diagnostics.ErrD002)
	ErrUnknownVariant      = diagnostics.Sentinel(diagnostics.ErrD003)
	ErrArityMismatch       = diagnostics.Sentinel(diagnostics.ErrD004)
	ErrNonExhaustiveMatch  = diagnostics.Sentinel(diagnostics.ErrD005)
	ErrInvalidIdentifier   = diagnostics.Sentinel(diagnostics.ErrD006)
	ErrDuplicateBinding    = diagnostics.Sentinel(diagnostics.ErrD007)
	ErrUnknownField        = diagnostics.Sentinel(diagnostics.ErrD008)
	ErrTypeMismatch        = diagnostics.Sentinel(diagnostics.ErrT001)
	ErrUnwrapFailure       = diagnostics.Sentinel(diagnostics.ErrR001)
)
