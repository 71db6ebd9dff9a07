package strict

type Token interface {
	token()
}

type Ident string
type Number int

func (Ident) token()  {}
func (Number) token() {}

func Kind(t Token) string {
	switch t.(type) { // want `missing Number`
	case Ident:
		return "ident"
	default:
		return "other"
	}
}
