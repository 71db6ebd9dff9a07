package typesystem

import (
	"strings"

	"github.com/funvibe/sumtype/internal/config"
)

// Type is the interface for all payload types.
type Type interface {
	String() string
	Equal(Type) bool
}

// TCon is a nullary type constructor: a base type (I8, String, ...) or a
// reference to a named enumeration.
type TCon struct {
	Name string
}

func (t TCon) String() string {
	return t.Name
}

func (t TCon) Equal(other Type) bool {
	o, ok := other.(TCon)
	return ok && o.Name == t.Name
}

// TApp is a type constructor applied to arguments, e.g. Option<I8>.
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	if len(t.Args) == 0 {
		return t.Constructor.String()
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return t.Constructor.String() + "<" + strings.Join(args, ", ") + ">"
}

func (t TApp) Equal(other Type) bool {
	o, ok := other.(TApp)
	if !ok || len(o.Args) != len(t.Args) || !t.Constructor.Equal(o.Constructor) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Base types
var (
	Any    = TCon{Name: "Any"}
	Bool   = TCon{Name: "Bool"}
	Int    = TCon{Name: "Int"}
	I8     = TCon{Name: "I8"}
	I16    = TCon{Name: "I16"}
	I32    = TCon{Name: "I32"}
	I64    = TCon{Name: "I64"}
	U8     = TCon{Name: "U8"}
	U16    = TCon{Name: "U16"}
	U32    = TCon{Name: "U32"}
	U64    = TCon{Name: "U64"}
	Float  = TCon{Name: "Float"}
	String = TCon{Name: "String"}
)

var baseTypes = map[string]TCon{}

var numericTypes = map[string]bool{
	"Int": true, "I8": true, "I16": true, "I32": true, "I64": true,
	"U8": true, "U16": true, "U32": true, "U64": true, "Float": true,
}

func init() {
	for _, t := range []TCon{Any, Bool, Int, I8, I16, I32, I64, U8, U16, U32, U64, Float, String} {
		baseTypes[t.Name] = t
	}
}

// Named returns a reference to the enumeration called name.
func Named(name string) TCon {
	return TCon{Name: name}
}

// OptionOf returns Option<elem>.
func OptionOf(elem Type) TApp {
	return TApp{
		Constructor: TCon{Name: config.OptionTypeName},
		Args:        []Type{elem},
	}
}

// OptionElem returns T when t is Option<T>.
func OptionElem(t Type) (Type, bool) {
	app, ok := t.(TApp)
	if !ok || len(app.Args) != 1 {
		return nil, false
	}
	con, ok := app.Constructor.(TCon)
	if !ok || con.Name != config.OptionTypeName {
		return nil, false
	}
	return app.Args[0], true
}

// IsBase reports whether t is one of the built-in base types.
func IsBase(t Type) bool {
	con, ok := t.(TCon)
	if !ok {
		return false
	}
	_, ok = baseTypes[con.Name]
	return ok
}

// IsNumeric reports whether t supports arithmetic.
func IsNumeric(t Type) bool {
	con, ok := t.(TCon)
	return ok && numericTypes[con.Name]
}

// IsNamed reports whether t refers to a named enumeration.
func IsNamed(t Type) bool {
	_, ok := t.(TCon)
	return ok && !IsBase(t)
}

// Lookup returns the base type called name.
func Lookup(name string) (TCon, bool) {
	t, ok := baseTypes[name]
	return t, ok
}
