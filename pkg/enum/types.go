package enum

import "github.com/funvibe/sumtype/internal/typesystem"

// Type is a payload type.
type Type = typesystem.Type

// Payload types and their Go representations.
var (
	Any    Type = typesystem.Any    // any value
	Bool   Type = typesystem.Bool   // bool
	Int    Type = typesystem.Int    // int
	I8     Type = typesystem.I8     // int8
	I16    Type = typesystem.I16    // int16
	I32    Type = typesystem.I32    // int32
	I64    Type = typesystem.I64    // int64
	U8     Type = typesystem.U8     // uint8
	U16    Type = typesystem.U16    // uint16
	U32    Type = typesystem.U32    // uint32
	U64    Type = typesystem.U64    // uint64
	Float  Type = typesystem.Float  // float64
	String Type = typesystem.String // string
)

// Named refers to the enumeration called name. Values of such a field are
// Values of that enumeration.
func Named(name string) Type {
	return typesystem.Named(name)
}

// OptionType returns Option<elem>. Values of such a field are Values of OptionOf(elem).
func OptionType(elem Type) Type {
	return typesystem.OptionOf(elem)
}
