package typesystem

import (
	"github.com/funvibe/sumtype/internal/diagnostics"
)

// Unify checks that a value of type got can be used where want is expected.
// There is no implicit conversion between Option<T> and T in either
// direction: such a pair fails with T002, every other mismatch with T001.
func Unify(want, got Type) error {
	if want == nil || got == nil {
		return diagnostics.NewError(diagnostics.ErrT001, typeName(want), typeName(got))
	}
	if want.Equal(Any) || want.Equal(got) {
		return nil
	}

	if elem, ok := OptionElem(want); ok && elem.Equal(got) {
		return diagnostics.NewError(diagnostics.ErrT002, got, want)
	}
	if elem, ok := OptionElem(got); ok && elem.Equal(want) {
		return diagnostics.NewError(diagnostics.ErrT002, got, want)
	}

	wantApp, ok1 := want.(TApp)
	gotApp, ok2 := got.(TApp)
	if ok1 && ok2 && len(wantApp.Args) == len(gotApp.Args) && wantApp.Constructor.Equal(gotApp.Constructor) {
		for i := range wantApp.Args {
			if err := Unify(wantApp.Args[i], gotApp.Args[i]); err != nil {
				return diagnostics.NewError(diagnostics.ErrT001, want, got)
			}
		}
		return nil
	}

	return diagnostics.NewError(diagnostics.ErrT001, want, got)
}

func typeName(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// CheckBinary returns the result type of `left op right`.
// Arithmetic needs two operands of the same numeric type; comparison needs
// two operands of the same type and yields Bool.
func CheckBinary(op string, left, right Type) (Type, error) {
	switch op {
	case "+", "-", "*", "/", "%":
		if err := Unify(left, right); err != nil {
			return nil, err
		}
		if !IsNumeric(left) {
			if op == "+" && left.Equal(String) {
				return String, nil
			}
			return nil, diagnostics.NewError(diagnostics.ErrT001, "numeric operands for "+op, left)
		}
		return left, nil
	case "==", "!=", "<", "<=", ">", ">=":
		if err := Unify(left, right); err != nil {
			return nil, err
		}
		return Bool, nil
	default:
		return nil, diagnostics.NewError(diagnostics.ErrT001, "a binary operator", op)
	}
}

// AcceptsValue reports whether the Go value v is a valid representation of the
// base type t. The second result is false when t is not a base type.
func AcceptsValue(t Type, v interface{}) (accepted bool, isBase bool) {
	con, ok := t.(TCon)
	if !ok {
		return false, false
	}
	if _, ok := baseTypes[con.Name]; !ok {
		return false, false
	}

	switch con.Name {
	case Any.Name:
		return true, true
	case Bool.Name:
		_, ok = v.(bool)
	case Int.Name:
		_, ok = v.(int)
	case I8.Name:
		_, ok = v.(int8)
	case I16.Name:
		_, ok = v.(int16)
	case I32.Name:
		_, ok = v.(int32)
	case I64.Name:
		_, ok = v.(int64)
	case U8.Name:
		_, ok = v.(uint8)
	case U16.Name:
		_, ok = v.(uint16)
	case U32.Name:
		_, ok = v.(uint32)
	case U64.Name:
		_, ok = v.(uint64)
	case Float.Name:
		_, ok = v.(float64)
	case String.Name:
		_, ok = v.(string)
	}
	return ok, true
}

// TypeOfValue returns the base type whose Go representation is v's dynamic type.
func TypeOfValue(v interface{}) (Type, bool) {
	switch v.(type) {
	case bool:
		return Bool, true
	case int:
		return Int, true
	case int8:
		return I8, true
	case int16:
		return I16, true
	case int32:
		return I32, true
	case int64:
		return I64, true
	case uint8:
		return U8, true
	case uint16:
		return U16, true
	case uint32:
		return U32, true
	case uint64:
		return U64, true
	case float64:
		return Float, true
	case string:
		return String, true
	default:
		return nil, false
	}
}
