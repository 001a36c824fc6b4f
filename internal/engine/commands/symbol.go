// Released under an MIT license. See LICENSE.

package commands

import (
	"fortio.org/log"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
	"github.com/michaelmacinnis/lispy/internal/interface/scope"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/type/list"
	"github.com/michaelmacinnis/lispy/internal/type/sym"
)

// def binds each symbol in its first argument to the corresponding value
// in the rest. Nothing is bound unless every check passes.
func def(s scope.T, args *list.T) cell.T {
	err := check(
		atLeast("def", args, 1),
		typed("def", args, 0, list.QexprName, list.IsQexpr),
	)
	if err != nil {
		return fail(args, err)
	}

	syms := list.To(args.Cell(0))

	for i := 0; i < syms.Len(); i++ {
		c := syms.Cell(i)
		if !sym.Is(c) {
			return fail(args, &errval.T{
				Kind:     errval.NonSymbol,
				Func:     "def",
				Index:    i,
				Got:      c.Name(),
				Expected: sym.Name,
			})
		}
	}

	if n := args.Len() - 1; n != syms.Len() {
		return fail(args, &errval.T{
			Kind:          errval.SymbolCount,
			Func:          "def",
			GotCount:      n,
			ExpectedCount: syms.Len(),
		})
	}

	for i := 0; i < syms.Len(); i++ {
		k := sym.To(syms.Cell(i)).String()
		v := args.Cell(i + 1)

		log.Debugf("def %s = %s", k, literal.String(v))
		s.Put(k, v)
	}

	args.Clear()

	return list.Sexp()
}
