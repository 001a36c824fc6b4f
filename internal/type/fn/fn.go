// Released under an MIT license. See LICENSE.

// Package fn provides lispy's built-in function type.
package fn

import (
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
	"github.com/michaelmacinnis/lispy/internal/interface/scope"
	"github.com/michaelmacinnis/lispy/internal/type/list"
)

// Name is the type name reported in errors.
const Name = "Function"

// Builtin is the signature shared by every primitive operation.
// A builtin owns args once called and returns a freshly produced result.
type Builtin func(s scope.T, args *list.T) cell.T

// T (fn) is a reference to a builtin.
type T struct {
	call Builtin
	name string
}

type fn = T

// New creates a fn named name that calls b.
func New(name string, b Builtin) *T {
	return &fn{call: b, name: name}
}

// Call applies f to args in the scope s.
func (f *fn) Call(s scope.T, args *list.T) cell.T {
	return f.call(s, args)
}

// Copy returns a new fn referring to the same builtin.
func (f *fn) Copy() cell.T {
	return &fn{call: f.call, name: f.name}
}

// Equal returns true if c is a fn for the same builtin name.
func (f *fn) Equal(c cell.T) bool {
	return Is(c) && f.name == To(c).name
}

// Literal returns the literal representation of the fn f.
func (f *fn) Literal() string {
	return "<function>"
}

// Name returns the type name for the fn f.
func (f *fn) Name() string {
	return Name
}

// String returns the name of the builtin f refers to.
func (f *fn) String() string {
	return f.name
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*fn)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if f, ok := c.(*fn); ok {
		return f
	}

	panic("not a " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fn

	// The fn type is a cell.
	_ = cell.T(&t)

	// The fn type has a literal representation.
	_ = literal.T(&t)
}
