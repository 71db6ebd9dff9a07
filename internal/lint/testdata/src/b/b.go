package b

import "a"

func Name(s a.Shape) string {
	switch s.(type) { // want `non-exhaustive type switch on a.Shape: missing Circle`
	case *a.Square:
		return "square"
	case a.Triangle:
		return "triangle"
	}
	return ""
}

func All(s a.Shape) string {
	switch s.(type) {
	case a.Circle, *a.Square, a.Triangle:
		return "shape"
	}
	return ""
}
