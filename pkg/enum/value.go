package enum

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/funvibe/sumtype/internal/diagnostics"
	"github.com/funvibe/sumtype/internal/typesystem"
)

// Value is one instance of an enumeration. Its variant and payload are fixed
// at construction; every accessor returns copies. The zero Value is invalid.
type Value struct {
	enum   *Enum
	index  int
	fields []interface{}
}

// New constructs the named variant from positional payload values. Record
// variants take their fields in declaration order.
func (e *Enum) New(variant string, args ...interface{}) (Value, error) {
	idx, ok := e.byName[variant]
	if !ok {
		return Value{}, diagnostics.NewError(diagnostics.ErrD003, e.name, variant)
	}
	v := e.variants[idx]
	if len(args) != len(v.Fields) {
		return Value{}, diagnostics.NewError(diagnostics.ErrD004, e.name+"::"+v.Name, len(v.Fields), len(args))
	}
	for i, f := range v.Fields {
		if err := conform(f.Type, args[i]); err != nil {
			return Value{}, fmt.Errorf("%s::%s %s: %w", e.name, v.Name, fieldLabel(f, i), err)
		}
	}
	return Value{enum: e, index: idx, fields: append([]interface{}(nil), args...)}, nil
}

// NewRecord constructs a record variant from named fields. Every declared
// field must be given and no other.
func (e *Enum) NewRecord(variant string, fields map[string]interface{}) (Value, error) {
	idx, ok := e.byName[variant]
	if !ok {
		return Value{}, diagnostics.NewError(diagnostics.ErrD003, e.name, variant)
	}
	v := e.variants[idx]
	if v.Shape != ShapeRecord {
		return Value{}, fmt.Errorf("%s::%s is a %s variant: %w", e.name, v.Name, v.Shape,
			diagnostics.NewError(diagnostics.ErrD004, e.name+"::"+v.Name, len(v.Fields), 0))
	}

	declared := make(map[string]bool, len(v.Fields))
	args := make([]interface{}, len(v.Fields))
	for i, f := range v.Fields {
		declared[f.Name] = true
		val, ok := fields[f.Name]
		if !ok {
			return Value{}, fmt.Errorf("%s::%s: missing field %s: %w", e.name, v.Name, f.Name,
				diagnostics.NewError(diagnostics.ErrD004, e.name+"::"+v.Name, len(v.Fields), len(fields)))
		}
		args[i] = val
	}
	for name := range fields {
		if !declared[name] {
			return Value{}, diagnostics.NewError(diagnostics.ErrD008, e.name+"::"+v.Name, name)
		}
	}
	return e.New(variant, args...)
}

// MustNew is like New but panics on error.
func (e *Enum) MustNew(variant string, args ...interface{}) Value {
	v, err := e.New(variant, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func fieldLabel(f Field, i int) string {
	if f.Name != "" {
		return "field " + f.Name
	}
	return fmt.Sprintf("field %d", i)
}

// conform checks that the Go value v represents payload type t.
func conform(t Type, v interface{}) error {
	if ok, isBase := typesystem.AcceptsValue(t, v); isBase {
		if ok {
			return nil
		}
		return mismatch(t, v)
	}

	val, isValue := v.(Value)
	if !isValue || !val.IsValid() {
		return mismatch(t, v)
	}
	if err := typesystem.Unify(t, val.Type()); err != nil {
		return err
	}
	return requireRegistered(t, val)
}

// requireRegistered rejects a value whose enumeration only shares its name
// with the schema registered for t.
func requireRegistered(t Type, val Value) error {
	if !typesystem.IsNamed(t) {
		return nil
	}
	registered, ok := DefaultRegistry.Lookup(t.String())
	if !ok || registered.sameAs(val.enum) {
		return nil
	}
	return diagnostics.NewError(diagnostics.ErrT001, "the registered "+t.String(), "a value of another "+val.enum.name+" schema")
}

func mismatch(want Type, v interface{}) error {
	if val, ok := v.(Value); ok && val.IsValid() {
		return typesystem.Unify(want, val.Type())
	}
	if got, ok := typesystem.TypeOfValue(v); ok {
		return typesystem.Unify(want, got)
	}
	return diagnostics.NewError(diagnostics.ErrT001, want, fmt.Sprintf("%T", v))
}

// IsValid reports whether v was built by a constructor.
func (v Value) IsValid() bool {
	return v.enum != nil
}

// Enum returns the enumeration v belongs to.
func (v Value) Enum() *Enum {
	return v.enum
}

// Type returns the payload type of v, as used in field declarations.
func (v Value) Type() Type {
	if v.enum == nil {
		return nil
	}
	return v.enum.Type()
}

// Tag returns the name of the active variant.
func (v Value) Tag() string {
	if v.enum == nil {
		return ""
	}
	return v.enum.variants[v.index].Name
}

// Index returns the declaration index of the active variant, or -1.
func (v Value) Index() int {
	if v.enum == nil {
		return -1
	}
	return v.index
}

// Variant returns the active variant.
func (v Value) Variant() Variant {
	if v.enum == nil {
		return Variant{Index: -1}
	}
	return v.enum.variants[v.index]
}

// Is reports whether the active variant is called tag.
func (v Value) Is(tag string) bool {
	return v.enum != nil && v.Tag() == tag
}

// Len returns the number of payload values.
func (v Value) Len() int {
	return len(v.fields)
}

// Field returns the i-th payload value, or nil when out of range.
func (v Value) Field(i int) interface{} {
	if i < 0 || i >= len(v.fields) {
		return nil
	}
	return v.fields[i]
}

// FieldByName returns a record field.
func (v Value) FieldByName(name string) (interface{}, bool) {
	if v.enum == nil {
		return nil, false
	}
	for i, f := range v.enum.variants[v.index].Fields {
		if f.Name != "" && f.Name == name {
			return v.fields[i], true
		}
	}
	return nil, false
}

// Fields returns a copy of the payload.
func (v Value) Fields() []interface{} {
	return append([]interface{}(nil), v.fields...)
}

// Equal reports whether both values have the same enumeration, variant and payload.
func (v Value) Equal(other Value) bool {
	if !v.enum.sameAs(other.enum) || v.index != other.index || len(v.fields) != len(other.fields) {
		return false
	}
	for i := range v.fields {
		if !equalPayload(v.fields[i], other.fields[i]) {
			return false
		}
	}
	return true
}

func equalPayload(a, b interface{}) bool {
	if av, ok := a.(Value); ok {
		bv, ok := b.(Value)
		return ok && av.Equal(bv)
	}
	return reflect.DeepEqual(a, b)
}

// String renders v the way it would be written: Quit, Write("hi"),
// ChangeColor(0, 160, 255), Move { x: 1, y: 2 }.
func (v Value) String() string {
	if v.enum == nil {
		return "<invalid>"
	}
	variant := v.enum.variants[v.index]
	switch variant.Shape {
	case ShapeUnit:
		return variant.Name
	case ShapeRecord:
		parts := make([]string, len(v.fields))
		for i, f := range variant.Fields {
			parts[i] = f.Name + ": " + formatPayload(v.fields[i])
		}
		return variant.Name + " { " + strings.Join(parts, ", ") + " }"
	default:
		parts := make([]string, len(v.fields))
		for i, f := range v.fields {
			parts[i] = formatPayload(f)
		}
		return variant.Name + "(" + strings.Join(parts, ", ") + ")"
	}
}

func formatPayload(p interface{}) string {
	switch x := p.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case Value:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
