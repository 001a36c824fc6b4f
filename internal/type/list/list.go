// Released under an MIT license. See LICENSE.

// Package list provides lispy's S-expression and Q-expression types.
//
// A list exclusively owns its children. Operations that move children out
// of a list (Pop, Take, Join) transfer ownership: the moved children are no
// longer reachable from the list they came from.
package list

import (
	"strings"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
)

// Type names reported in errors.
const (
	SexprName = "S-Expression"
	QexprName = "Q-Expression"
)

// Kind distinguishes evaluable lists from deferred lists.
type Kind int

// List kinds.
const (
	Sexpr Kind = iota // Evaluable: reduced by applying its head.
	Qexpr             // Deferred: evaluates to itself.
)

// T (list) is an ordered sequence of owned cells.
type T struct {
	cells []cell.T
	kind  Kind
}

type list = T

// New creates a list of kind k containing cells.
func New(k Kind, cells ...cell.T) *T {
	l := &list{kind: k}
	if len(cells) > 0 {
		l.cells = append(make([]cell.T, 0, len(cells)), cells...)
	}

	return l
}

// Sexp creates an S-expression containing cells.
func Sexp(cells ...cell.T) *T {
	return New(Sexpr, cells...)
}

// Qexp creates a Q-expression containing cells.
func Qexp(cells ...cell.T) *T {
	return New(Qexpr, cells...)
}

// Append adds c to the end of l and returns l.
func (l *list) Append(c cell.T) *T {
	l.cells = append(l.cells, c)
	return l
}

// Cell returns the child at index i. The child is still owned by l.
func (l *list) Cell(i int) cell.T {
	return l.cells[i]
}

// Copy returns a deep copy of l.
func (l *list) Copy() cell.T {
	c := &list{kind: l.kind}
	if len(l.cells) > 0 {
		c.cells = make([]cell.T, len(l.cells))
		for i, v := range l.cells {
			c.cells[i] = v.Copy()
		}
	}

	return c
}

// Equal returns true if c is a list of the same kind with equal children.
func (l *list) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if l.kind != o.kind || len(l.cells) != len(o.cells) {
		return false
	}

	for i, v := range l.cells {
		if !v.Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Join moves every child of o to the end of l, leaving o empty. Returns l.
func (l *list) Join(o *T) *T {
	l.cells = append(l.cells, o.cells...)
	o.Clear()

	return l
}

// Kind returns the kind of the list l.
func (l *list) Kind() Kind {
	return l.kind
}

// Len returns the number of children in l.
func (l *list) Len() int {
	return len(l.cells)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	opening, closing := "(", ")"
	if l.kind == Qexpr {
		opening, closing = "{", "}"
	}

	var b strings.Builder

	b.WriteString(opening)

	for i, v := range l.cells {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(literal.String(v))
	}

	b.WriteString(closing)

	return b.String()
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	if l.kind == Qexpr {
		return QexprName
	}

	return SexprName
}

// Pop removes and returns the child at index i, shifting the rest left.
// Ownership of the child passes to the caller.
func (l *list) Pop(i int) cell.T {
	c := l.cells[i]

	copy(l.cells[i:], l.cells[i+1:])
	l.cells[len(l.cells)-1] = nil
	l.cells = l.cells[:len(l.cells)-1]

	return c
}

// SetCell replaces the child at index i with c.
func (l *list) SetCell(i int, c cell.T) {
	l.cells[i] = c
}

// SetKind reclassifies l as a list of kind k.
func (l *list) SetKind(k Kind) *T {
	l.kind = k
	return l
}

// String returns the text of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Take pops the child at index i and consumes the rest of l.
func (l *list) Take(i int) cell.T {
	c := l.Pop(i)
	l.Clear()

	return c
}

// Clear consumes l, dropping every child it owns.
func (l *list) Clear() {
	for i := range l.cells {
		l.cells[i] = nil
	}

	l.cells = nil
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*list)
	return ok
}

// IsQexpr returns true if c is a Q-expression.
func IsQexpr(c cell.T) bool {
	l, ok := c.(*list)
	return ok && l.kind == Qexpr
}

// IsSexpr returns true if c is an S-expression.
func IsSexpr(c cell.T) bool {
	l, ok := c.(*list)
	return ok && l.kind == Sexpr
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if l, ok := c.(*list); ok {
		return l
	}

	panic("not a list")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.T(&t)

	// The list type has a literal representation.
	_ = literal.T(&t)
}
