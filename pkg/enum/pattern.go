package enum

import (
	"fmt"
	"strings"

	"github.com/funvibe/sumtype/internal/config"
	"github.com/funvibe/sumtype/internal/diagnostics"
)

// Pattern selects values of an enumeration. Patterns are built with Wild,
// Case and CaseFields.
type Pattern interface {
	isPattern()
	String() string
}

// Sub is a pattern for a single payload value.
type Sub interface {
	isSub()
	String() string
}

type wildcardPattern struct{}

type casePattern struct {
	tag    string
	subs   []Sub
	fields []FieldPattern // set for CaseFields
	named  bool
}

// FieldPattern matches one record field by name.
type FieldPattern struct {
	Name string
	Sub  Sub
}

type bindSub struct{ name string }

type ignoreSub struct{}

type litSub struct{ value interface{} }

type nestedSub struct{ pattern Pattern }

func (wildcardPattern) isPattern() {}
func (casePattern) isPattern()     {}

func (bindSub) isSub()   {}
func (ignoreSub) isSub() {}
func (litSub) isSub()    {}
func (nestedSub) isSub() {}

// Wild matches every value.
func Wild() Pattern {
	return wildcardPattern{}
}

// Case matches the variant called tag. Subs match the payload positionally;
// with no subs the payload is ignored.
func Case(tag string, subs ...Sub) Pattern {
	return casePattern{tag: tag, subs: append([]Sub(nil), subs...)}
}

// CaseFields matches a record variant by field name. Fields that are not
// listed are ignored.
func CaseFields(tag string, fields ...FieldPattern) Pattern {
	return casePattern{tag: tag, fields: append([]FieldPattern(nil), fields...), named: true}
}

// F pairs a record field name with a sub-pattern.
func F(name string, sub Sub) FieldPattern {
	return FieldPattern{Name: name, Sub: sub}
}

// Bind matches any payload value and makes it available to the handler under name.
func Bind(name string) Sub {
	return bindSub{name: name}
}

// Ignore matches any payload value without binding it.
func Ignore() Sub {
	return ignoreSub{}
}

// Lit matches a payload value equal to v.
func Lit(v interface{}) Sub {
	return litSub{value: v}
}

// Nested matches a payload value that is itself an enum value against p.
func Nested(p Pattern) Sub {
	return nestedSub{pattern: p}
}

func (wildcardPattern) String() string { return config.WildcardName }

func (p casePattern) String() string {
	if p.named {
		if len(p.fields) == 0 {
			return p.tag + " { .. }"
		}
		parts := make([]string, len(p.fields))
		for i, f := range p.fields {
			parts[i] = f.Name + ": " + f.Sub.String()
		}
		return p.tag + " { " + strings.Join(parts, ", ") + ", .. }"
	}
	if len(p.subs) == 0 {
		return p.tag
	}
	parts := make([]string, len(p.subs))
	for i, s := range p.subs {
		parts[i] = s.String()
	}
	return p.tag + "(" + strings.Join(parts, ", ") + ")"
}

func (s bindSub) String() string   { return s.name }
func (ignoreSub) String() string   { return config.WildcardName }
func (s litSub) String() string    { return formatPayload(s.value) }
func (s nestedSub) String() string { return s.pattern.String() }

// Bindings holds the payload values bound by the matching pattern.
type Bindings map[string]interface{}

// Get returns the binding called name as a T.
func Get[T any](b Bindings, name string) (T, bool) {
	raw, ok := b[name]
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// MustGet is like Get but panics when the binding is missing or not a T.
func MustGet[T any](b Bindings, name string) T {
	raw, ok := b[name]
	if !ok {
		panic(fmt.Sprintf("enum: no binding %q", name))
	}
	v, ok := raw.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("enum: binding %q is %T, not %T", name, raw, zero))
	}
	return v
}

// patternInfo is the result of checking a pattern against a schema.
type patternInfo struct {
	wildcard    bool
	index       int  // variant index for Case patterns
	irrefutable bool // matches every value of the variant (or of the enum, for wildcards)
}

// checkPattern validates p against e. names collects binding names across
// the whole pattern, nested ones included.
func checkPattern(e *Enum, p Pattern, names map[string]bool) (patternInfo, error) {
	switch pat := p.(type) {
	case wildcardPattern:
		return patternInfo{wildcard: true, index: -1, irrefutable: true}, nil

	case casePattern:
		idx, ok := e.byName[pat.tag]
		if !ok {
			return patternInfo{}, diagnostics.NewError(diagnostics.ErrD003, e.name, pat.tag)
		}
		variant := e.variants[idx]
		info := patternInfo{index: idx, irrefutable: true}

		if pat.named {
			if variant.Shape != ShapeRecord {
				return patternInfo{}, fmt.Errorf("%s::%s is a %s variant: %w", e.name, variant.Name, variant.Shape,
					diagnostics.NewError(diagnostics.ErrD004, e.name+"::"+variant.Name, len(variant.Fields), len(pat.fields)))
			}
			for _, fp := range pat.fields {
				fi := fieldIndex(variant, fp.Name)
				if fi < 0 {
					return patternInfo{}, diagnostics.NewError(diagnostics.ErrD008, e.name+"::"+variant.Name, fp.Name)
				}
				irrefutable, err := checkSub(variant.Fields[fi].Type, fp.Sub, names)
				if err != nil {
					return patternInfo{}, fmt.Errorf("%s::%s field %s: %w", e.name, variant.Name, fp.Name, err)
				}
				info.irrefutable = info.irrefutable && irrefutable
			}
			return info, nil
		}

		if len(pat.subs) == 0 {
			return info, nil
		}
		if len(pat.subs) != len(variant.Fields) {
			return patternInfo{}, diagnostics.NewError(diagnostics.ErrD004, e.name+"::"+variant.Name, len(variant.Fields), len(pat.subs))
		}
		for i, sub := range pat.subs {
			irrefutable, err := checkSub(variant.Fields[i].Type, sub, names)
			if err != nil {
				return patternInfo{}, fmt.Errorf("%s::%s %s: %w", e.name, variant.Name, fieldLabel(variant.Fields[i], i), err)
			}
			info.irrefutable = info.irrefutable && irrefutable
		}
		return info, nil

	default:
		return patternInfo{}, fmt.Errorf("unsupported pattern %T", p)
	}
}

func checkSub(t Type, s Sub, names map[string]bool) (irrefutable bool, err error) {
	switch sub := s.(type) {
	case bindSub:
		if names[sub.name] {
			return false, diagnostics.NewError(diagnostics.ErrD007, sub.name)
		}
		if !isIdent(sub.name) {
			return false, diagnostics.NewError(diagnostics.ErrD006, sub.name)
		}
		names[sub.name] = true
		return true, nil

	case ignoreSub:
		return true, nil

	case litSub:
		if err := conform(t, sub.value); err != nil {
			return false, err
		}
		return false, nil

	case nestedSub:
		inner, err := DefaultRegistry.Resolve(t)
		if err != nil {
			return false, err
		}
		info, err := checkPattern(inner, sub.pattern, names)
		if err != nil {
			return false, err
		}
		return info.wildcard || (info.irrefutable && inner.Len() == 1), nil

	default:
		return false, fmt.Errorf("unsupported sub-pattern %T", s)
	}
}

func fieldIndex(v Variant, name string) int {
	for i, f := range v.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// matchPattern reports whether v matches p, recording bindings in b.
// p must have been validated against v's enumeration.
func matchPattern(p Pattern, v Value, b Bindings) bool {
	switch pat := p.(type) {
	case wildcardPattern:
		return true

	case casePattern:
		if !v.IsValid() || v.Tag() != pat.tag {
			return false
		}
		if pat.named {
			variant := v.Variant()
			for _, fp := range pat.fields {
				fi := fieldIndex(variant, fp.Name)
				if fi < 0 || fi >= len(v.fields) || !matchSub(fp.Sub, v.fields[fi], b) {
					return false
				}
			}
			return true
		}
		if len(pat.subs) > len(v.fields) {
			return false
		}
		for i, sub := range pat.subs {
			if !matchSub(sub, v.fields[i], b) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func matchSub(s Sub, payload interface{}, b Bindings) bool {
	switch sub := s.(type) {
	case bindSub:
		b[sub.name] = payload
		return true
	case ignoreSub:
		return true
	case litSub:
		return equalPayload(sub.value, payload)
	case nestedSub:
		inner, ok := payload.(Value)
		if !ok || !inner.IsValid() {
			return false
		}
		expected, err := DefaultRegistry.Resolve(inner.Type())
		if err != nil || !expected.sameAs(inner.enum) {
			return false
		}
		return matchPattern(sub.pattern, inner, b)
	default:
		return false
	}
}
