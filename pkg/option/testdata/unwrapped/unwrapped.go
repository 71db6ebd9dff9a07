package unwrapped

import "github.com/funvibe/sumtype/pkg/option"

func Sum(x int8, y option.Option[int8]) int8 {
	return x + y.UnwrapOr(0)
}
