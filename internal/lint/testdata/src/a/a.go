package a

type Shape interface {
	isShape()
}

type Circle struct{ R float64 }
type Square struct{ Side float64 }
type Triangle struct{ A, B, C float64 }

func (Circle) isShape()   {}
func (*Square) isShape()  {}
func (Triangle) isShape() {}

// Open is not sealed.
type Open interface {
	Area() float64
}

func Complete(s Shape) string {
	switch s.(type) {
	case Circle:
		return "circle"
	case *Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return ""
}

func Missing(s Shape) string {
	switch v := s.(type) { // want `non-exhaustive type switch on a.Shape: missing Square, Triangle`
	case Circle:
		return v.String()
	}
	return ""
}

func (c Circle) String() string { return "circle" }

func WithDefault(s Shape) int {
	switch s.(type) {
	case Circle:
		return 1
	default:
		return 0
	}
}

func ListsInterface(x interface{}) int {
	switch x.(type) {
	case Shape:
		return 1
	}
	return 0
}

func NotSealed(o Open) int {
	switch o.(type) {
	case nil:
		return 0
	}
	return 1
}

func MultiType(s Shape) int {
	switch s.(type) { // want `missing Triangle`
	case Circle, *Square:
		return 1
	case nil:
		return 0
	}
	return 2
}
