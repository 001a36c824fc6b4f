// Released under an MIT license. See LICENSE.

// Package convert turns a syntax tree into lispy values.
package convert

import (
	"strings"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/reader/ast"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/type/list"
	"github.com/michaelmacinnis/lispy/internal/type/num"
	"github.com/michaelmacinnis/lispy/internal/type/sym"
)

// Node converts the tree rooted at n to a value.
//
// Numbers that cannot be represented become invalid number errors. The root
// and S-expression nodes become S-expressions and Q-expression nodes become
// Q-expressions. Children keep their order; delimiters and anchors are dropped.
func Node(n *ast.Node) cell.T {
	switch {
	case strings.Contains(n.Tag, ast.Number):
		v, err := num.Parse(n.Contents)
		if err != nil {
			return errval.New(errval.InvalidNumber)
		}

		return v
	case strings.Contains(n.Tag, ast.Symbol):
		return sym.New(n.Contents)
	}

	var l *list.T

	switch {
	case n.Tag == ast.Root, strings.Contains(n.Tag, ast.Sexpr):
		l = list.Sexp()
	case strings.Contains(n.Tag, ast.Qexpr):
		l = list.Qexp()
	default:
		return errval.New(errval.Unknown)
	}

	for _, c := range n.Children {
		if skip(c) {
			continue
		}

		l.Append(Node(c))
	}

	return l
}

func skip(n *ast.Node) bool {
	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}

	return n.Tag == ast.Anchor
}
