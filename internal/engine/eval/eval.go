// Released under an MIT license. See LICENSE.

// Package eval reduces lispy values to normal form.
package eval

import (
	"fortio.org/log"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
	"github.com/michaelmacinnis/lispy/internal/interface/scope"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/type/fn"
	"github.com/michaelmacinnis/lispy/internal/type/list"
	"github.com/michaelmacinnis/lispy/internal/type/sym"
)

// Reduce evaluates c in the scope s and returns its normal form.
// Reduce takes ownership of c.
//
// Symbols are looked up. S-expressions have every child reduced, left to
// right, before the first error among them is returned. An empty
// S-expression is returned as is and a singleton reduces to its only child.
// Otherwise the head must be a function, which is applied to the rest.
// All other values are already in normal form.
func Reduce(s scope.T, c cell.T) cell.T {
	switch {
	case sym.Is(c):
		v := s.Get(sym.To(c).String())
		if log.LogVerbose() {
			log.LogVf("lookup %s -> %s", literal.String(c), literal.String(v))
		}

		return v
	case list.IsSexpr(c):
		return sexpr(s, list.To(c))
	}

	return c
}

func sexpr(s scope.T, l *list.T) cell.T {
	for i := 0; i < l.Len(); i++ {
		l.SetCell(i, Reduce(s, l.Cell(i)))
	}

	for i := 0; i < l.Len(); i++ {
		if errval.Is(l.Cell(i)) {
			return l.Take(i)
		}
	}

	switch l.Len() {
	case 0:
		return l
	case 1:
		return l.Take(0)
	}

	f := l.Pop(0)
	if !fn.Is(f) {
		l.Clear()

		return &errval.T{
			Kind:     errval.NotFunction,
			Got:      f.Name(),
			Expected: fn.Name,
		}
	}

	if log.LogVerbose() {
		log.LogVf("apply %s to %s", fn.To(f).String(), literal.String(l))
	}

	return fn.To(f).Call(s, l)
}
