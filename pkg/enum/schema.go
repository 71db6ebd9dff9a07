// Package enum implements closed tagged unions whose variants carry
// heterogeneous payloads, together with pattern dispatch whose coverage is
// checked when the dispatch is defined.
//
// An enumeration is defined once:
//
//	msg := enum.MustDefine("Message",
//		enum.Unit("Quit"),
//		enum.Record("Move", enum.FieldOf("x", enum.I32), enum.FieldOf("y", enum.I32)),
//		enum.Single("Write", enum.String),
//		enum.Tuple("ChangeColor", enum.I32, enum.I32, enum.I32),
//	)
//
// Instances are built by variant constructors and never change afterwards.
// A full dispatch is compiled with Compile, which fails with
// ErrNonExhaustiveMatch unless every variant is handled or a wildcard arm is
// present. IfLet and IfLetElse are the non-exhaustive single-pattern forms.
package enum

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/smasher164/xid"

	"github.com/funvibe/sumtype/internal/diagnostics"
	"github.com/funvibe/sumtype/internal/typesystem"
)

// Shape is the payload layout of a variant.
type Shape int

const (
	ShapeUnit   Shape = iota // no payload
	ShapeSingle              // one value
	ShapeTuple               // ordered, positional values
	ShapeRecord              // named fields
)

func (s Shape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapeSingle:
		return "single"
	case ShapeTuple:
		return "tuple"
	case ShapeRecord:
		return "record"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Field is one payload slot. Positional fields have an empty Name.
type Field struct {
	Name string
	Type Type
}

// FieldOf returns a named record field.
func FieldOf(name string, t Type) Field {
	return Field{Name: name, Type: t}
}

// Variant describes one alternative of an enumeration.
type Variant struct {
	Name   string
	Index  int
	Shape  Shape
	Fields []Field
}

// Arity is the number of payload values the variant carries.
func (v Variant) Arity() int {
	return len(v.Fields)
}

func (v Variant) String() string {
	switch v.Shape {
	case ShapeUnit:
		return v.Name
	case ShapeRecord:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.Name + ": " + f.Type.String()
		}
		return v.Name + " { " + strings.Join(parts, ", ") + " }"
	default:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.Type.String()
		}
		return v.Name + "(" + strings.Join(parts, ", ") + ")"
	}
}

// VariantDef is a variant declaration passed to Define.
type VariantDef struct {
	name   string
	shape  Shape
	fields []Field
}

// Unit declares a variant without payload.
func Unit(name string) VariantDef {
	return VariantDef{name: name, shape: ShapeUnit}
}

// Single declares a variant carrying one value of type t.
func Single(name string, t Type) VariantDef {
	return VariantDef{name: name, shape: ShapeSingle, fields: []Field{{Type: t}}}
}

// Tuple declares a variant carrying positional values.
func Tuple(name string, types ...Type) VariantDef {
	fields := make([]Field, len(types))
	for i, t := range types {
		fields[i] = Field{Type: t}
	}
	return VariantDef{name: name, shape: ShapeTuple, fields: fields}
}

// Record declares a variant carrying named fields.
func Record(name string, fields ...Field) VariantDef {
	return VariantDef{name: name, shape: ShapeRecord, fields: append([]Field(nil), fields...)}
}

// Enum is an immutable enumeration schema.
type Enum struct {
	name        string
	variants    []Variant
	byName      map[string]int
	fingerprint uuid.UUID

	// elem is set for Option<T> enumerations.
	elem Type
}

var schemaNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/funvibe/sumtype/schema"))

// Define validates the declarations and returns the enumeration.
func Define(name string, defs ...VariantDef) (*Enum, error) {
	if !isIdent(name) {
		return nil, diagnostics.NewError(diagnostics.ErrD006, name)
	}
	return define(name, nil, defs)
}

// MustDefine is like Define but panics on error. Intended for package-level
// schema declarations.
func MustDefine(name string, defs ...VariantDef) *Enum {
	e, err := Define(name, defs...)
	if err != nil {
		panic(err)
	}
	return e
}

func define(name string, elem Type, defs []VariantDef) (*Enum, error) {
	if len(defs) == 0 {
		return nil, diagnostics.NewError(diagnostics.ErrD002, name)
	}

	e := &Enum{
		name:     name,
		variants: make([]Variant, 0, len(defs)),
		byName:   make(map[string]int, len(defs)),
		elem:     elem,
	}
	for i, def := range defs {
		if !isIdent(def.name) {
			return nil, fmt.Errorf("%s: %w", name, diagnostics.NewError(diagnostics.ErrD006, def.name))
		}
		if _, dup := e.byName[def.name]; dup {
			return nil, diagnostics.NewError(diagnostics.ErrD001, name+"::"+def.name)
		}
		if def.shape != ShapeUnit && len(def.fields) == 0 {
			return nil, diagnostics.NewError(diagnostics.ErrD004, name+"::"+def.name, 1, 0)
		}

		seen := make(map[string]bool)
		for _, f := range def.fields {
			if f.Type == nil {
				return nil, fmt.Errorf("%s::%s: field without a type: %w", name, def.name,
					diagnostics.NewError(diagnostics.ErrT001, "a type", "<nil>"))
			}
			if def.shape != ShapeRecord {
				continue
			}
			if !isIdent(f.Name) {
				return nil, fmt.Errorf("%s::%s: %w", name, def.name, diagnostics.NewError(diagnostics.ErrD006, f.Name))
			}
			if seen[f.Name] {
				return nil, diagnostics.NewError(diagnostics.ErrD001, name+"::"+def.name+"."+f.Name)
			}
			seen[f.Name] = true
		}

		e.byName[def.name] = i
		e.variants = append(e.variants, Variant{
			Name:   def.name,
			Index:  i,
			Shape:  def.shape,
			Fields: def.fields,
		})
	}

	e.fingerprint = uuid.NewSHA1(schemaNamespace, []byte(e.String()))
	return e, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !xid.Start(r) {
				return false
			}
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return true
}

// Name returns the enumeration name.
func (e *Enum) Name() string {
	return e.name
}

// Variants returns the variants in declaration order.
func (e *Enum) Variants() []Variant {
	return append([]Variant(nil), e.variants...)
}

// Variant looks up a variant by name.
func (e *Enum) Variant(name string) (Variant, bool) {
	i, ok := e.byName[name]
	if !ok {
		return Variant{}, false
	}
	return e.variants[i], true
}

// Len returns the number of variants.
func (e *Enum) Len() int {
	return len(e.variants)
}

// Fingerprint identifies the schema by content: enumerations with the same
// name and variants have the same fingerprint.
func (e *Enum) Fingerprint() uuid.UUID {
	return e.fingerprint
}

// Type returns the payload type that refers to this enumeration.
func (e *Enum) Type() Type {
	if e.elem != nil {
		return typesystem.OptionOf(e.elem)
	}
	return typesystem.Named(e.name)
}

// IsOption reports whether e is an Option<T> enumeration.
func (e *Enum) IsOption() bool {
	return e.elem != nil
}

// String renders the canonical schema text.
func (e *Enum) String() string {
	parts := make([]string, len(e.variants))
	for i, v := range e.variants {
		parts[i] = v.String()
	}
	return "enum " + e.name + " { " + strings.Join(parts, ", ") + " }"
}

func (e *Enum) sameAs(other *Enum) bool {
	return e == other || (e != nil && other != nil && e.fingerprint == other.fingerprint)
}
