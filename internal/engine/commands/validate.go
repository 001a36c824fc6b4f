// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/type/list"
	"github.com/michaelmacinnis/lispy/internal/type/num"
)

// check returns the first non-nil error from checks, in order.
// Later checks are not run once one fails.
func check(checks ...func() *errval.T) *errval.T {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}

	return nil
}

// fail consumes args and returns the error e.
func fail(args *list.T, e *errval.T) cell.T {
	args.Clear()
	return e
}

func atLeast(name string, args *list.T, n int) func() *errval.T {
	return func() *errval.T {
		if args.Len() < n {
			return errval.Arguments(name, args.Len(), n)
		}

		return nil
	}
}

func every(name string, args *list.T, expected string, is func(cell.T) bool) func() *errval.T {
	return func() *errval.T {
		for i := 0; i < args.Len(); i++ {
			if err := typed(name, args, i, expected, is)(); err != nil {
				return err
			}
		}

		return nil
	}
}

func fixed(name string, args *list.T, n int) func() *errval.T {
	return func() *errval.T {
		if args.Len() != n {
			return errval.Arguments(name, args.Len(), n)
		}

		return nil
	}
}

func nonEmpty(name string, args *list.T, i int) func() *errval.T {
	return func() *errval.T {
		if list.To(args.Cell(i)).Len() == 0 {
			return errval.Empty(name, i)
		}

		return nil
	}
}

func numbers(name string, args *list.T) func() *errval.T {
	return every(name, args, num.Name, num.Is)
}

func qexprs(name string, args *list.T) func() *errval.T {
	return every(name, args, list.QexprName, list.IsQexpr)
}

func typed(name string, args *list.T, i int, expected string, is func(cell.T) bool) func() *errval.T {
	return func() *errval.T {
		c := args.Cell(i)
		if !is(c) {
			return errval.Type(name, i, c.Name(), expected)
		}

		return nil
	}
}
