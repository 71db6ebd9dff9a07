package enum

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/funvibe/sumtype/internal/config"
	"github.com/funvibe/sumtype/internal/diagnostics"
	"github.com/funvibe/sumtype/internal/typesystem"
)

// Registry maps enumeration names to schemas. It is safe for concurrent use.
type Registry struct {
	enums   *xsync.MapOf[string, *Enum]
	options *xsync.MapOf[string, *Enum]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		enums:   xsync.NewMapOf[string, *Enum](),
		options: xsync.NewMapOf[string, *Enum](),
	}
}

// DefaultRegistry resolves Named and Option field types in nested patterns.
var DefaultRegistry = NewRegistry()

// Register adds e under its name. Registering a schema with the same
// fingerprint again returns the schema already stored; a different schema
// under a taken name fails with ErrDuplicateDefinition.
func (r *Registry) Register(e *Enum) (*Enum, error) {
	actual, loaded := r.enums.LoadOrStore(e.name, e)
	if loaded && actual.fingerprint != e.fingerprint {
		return nil, diagnostics.NewError(diagnostics.ErrD001, "enumeration "+e.name+" is already registered with a different shape")
	}
	return actual, nil
}

// Lookup returns the enumeration registered under name.
func (r *Registry) Lookup(name string) (*Enum, bool) {
	return r.enums.Load(name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	var names []string
	r.enums.Range(func(name string, _ *Enum) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// OptionFor returns the Option<elem> enumeration, creating it on first use.
// Its variants are Some(elem) and None. A nil elem fails with T001.
func (r *Registry) OptionFor(elem Type) (*Enum, error) {
	if elem == nil {
		return nil, diagnostics.NewError(diagnostics.ErrT001, "an element type for Option", "<nil>")
	}
	e, _ := r.options.LoadOrCompute(elem.String(), func() *Enum {
		opt, err := define(typesystem.OptionOf(elem).String(), elem, []VariantDef{
			Single(config.SomeCtorName, elem),
			Unit(config.NoneCtorName),
		})
		if err != nil {
			// elem is non-nil and both variant names are fixed identifiers.
			panic(err)
		}
		return opt
	})
	return e, nil
}

// Option is like OptionFor but panics when elem is nil.
func (r *Registry) Option(elem Type) *Enum {
	e, err := r.OptionFor(elem)
	if err != nil {
		panic(err)
	}
	return e
}

// Resolve returns the enumeration a payload type refers to.
func (r *Registry) Resolve(t Type) (*Enum, error) {
	if t == nil {
		return nil, diagnostics.NewError(diagnostics.ErrT001, "an enumeration type", "<nil>")
	}
	if elem, ok := typesystem.OptionElem(t); ok {
		return r.OptionFor(elem)
	}
	if typesystem.IsNamed(t) {
		if e, ok := r.Lookup(t.String()); ok {
			return e, nil
		}
		return nil, typesystem.NewUnknownTypeError(t.String())
	}
	return nil, diagnostics.NewError(diagnostics.ErrT001, "an enumeration type", t)
}

// Register adds e to DefaultRegistry.
func Register(e *Enum) (*Enum, error) {
	return DefaultRegistry.Register(e)
}

// MustRegister is like Register but panics on error.
func MustRegister(e *Enum) *Enum {
	actual, err := Register(e)
	if err != nil {
		panic(err)
	}
	return actual
}

// OptionOf returns the Option<elem> enumeration of DefaultRegistry. It panics
// when elem is nil.
func OptionOf(elem Type) *Enum {
	return DefaultRegistry.Option(elem)
}
