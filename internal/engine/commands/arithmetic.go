// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/scope"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/type/list"
	"github.com/michaelmacinnis/lispy/internal/type/num"
)

type operator func(x, y int64) (int64, *errval.T)

func add(_ scope.T, args *list.T) cell.T {
	return fold("+", args, func(x, y int64) (int64, *errval.T) {
		return x + y, nil
	})
}

func div(_ scope.T, args *list.T) cell.T {
	return fold("/", args, func(x, y int64) (int64, *errval.T) {
		if y == 0 {
			return 0, errval.New(errval.DivisionByZero)
		}

		return x / y, nil
	})
}

func maximum(_ scope.T, args *list.T) cell.T {
	return fold("max", args, func(x, y int64) (int64, *errval.T) {
		if y > x {
			return y, nil
		}

		return x, nil
	})
}

func minimum(_ scope.T, args *list.T) cell.T {
	return fold("min", args, func(x, y int64) (int64, *errval.T) {
		if y < x {
			return y, nil
		}

		return x, nil
	})
}

func mod(_ scope.T, args *list.T) cell.T {
	return fold("%", args, func(x, y int64) (int64, *errval.T) {
		if y == 0 {
			return 0, errval.New(errval.DivisionByZero)
		}

		return x % y, nil
	})
}

func mul(_ scope.T, args *list.T) cell.T {
	return fold("*", args, func(x, y int64) (int64, *errval.T) {
		return x * y, nil
	})
}

func pow(_ scope.T, args *list.T) cell.T {
	return fold("^", args, func(x, y int64) (int64, *errval.T) {
		if y < 0 {
			return 0, &errval.T{Kind: errval.NegativeExpo, Func: "^"}
		}

		r := int64(1)
		for ; y > 0; y >>= 1 {
			if y&1 == 1 {
				r *= x
			}

			x *= x
		}

		return r, nil
	})
}

func sub(_ scope.T, args *list.T) cell.T {
	if args.Len() == 1 && num.Is(args.Cell(0)) {
		x := num.To(args.Take(0))
		return num.New(-x.Int())
	}

	return fold("-", args, func(x, y int64) (int64, *errval.T) {
		return x - y, nil
	})
}

// fold applies op from left to right starting with the first argument.
// Integer overflow wraps around.
func fold(name string, args *list.T, op operator) cell.T {
	err := check(
		atLeast(name, args, 1),
		numbers(name, args),
	)
	if err != nil {
		return fail(args, err)
	}

	acc := num.To(args.Pop(0)).Int()

	for args.Len() > 0 {
		y := num.To(args.Pop(0)).Int()

		acc, err = op(acc, y)
		if err != nil {
			return fail(args, err)
		}
	}

	return num.New(acc)
}
