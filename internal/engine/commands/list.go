// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/scope"
	"github.com/michaelmacinnis/lispy/internal/type/list"
)

func evaluate(s scope.T, args *list.T) cell.T {
	err := check(
		fixed("eval", args, 1),
		typed("eval", args, 0, list.QexprName, list.IsQexpr),
	)
	if err != nil {
		return fail(args, err)
	}

	x := list.To(args.Take(0))

	return eval.Reduce(s, x.SetKind(list.Sexpr))
}

func head(_ scope.T, args *list.T) cell.T {
	err := check(
		fixed("head", args, 1),
		typed("head", args, 0, list.QexprName, list.IsQexpr),
		nonEmpty("head", args, 0),
	)
	if err != nil {
		return fail(args, err)
	}

	v := list.To(args.Take(0))
	h := v.Pop(0)

	v.Clear()

	return v.Append(h)
}

func join(_ scope.T, args *list.T) cell.T {
	err := check(
		atLeast("join", args, 1),
		qexprs("join", args),
	)
	if err != nil {
		return fail(args, err)
	}

	x := list.To(args.Pop(0))
	for args.Len() > 0 {
		x.Join(list.To(args.Pop(0)))
	}

	return x
}

func makeList(_ scope.T, args *list.T) cell.T {
	return args.SetKind(list.Qexpr)
}

func tail(_ scope.T, args *list.T) cell.T {
	err := check(
		fixed("tail", args, 1),
		typed("tail", args, 0, list.QexprName, list.IsQexpr),
		nonEmpty("tail", args, 0),
	)
	if err != nil {
		return fail(args, err)
	}

	v := list.To(args.Take(0))
	v.Pop(0)

	return v
}
