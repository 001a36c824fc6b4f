// Released under an MIT license. See LICENSE.

// Package num provides lispy's integer number type.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
)

// Name is the type name reported in errors.
const Name = "Number"

// T (num) wraps Go's int64 type.
type T int64

type num = T

// New creates a num cell.
func New(i int64) *T {
	n := num(i)
	return &n
}

// Parse creates a num from the base-10 text s.
func Parse(s string) (*T, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}

	return New(i), nil
}

// Copy returns a new num with the same value as n.
func (n *num) Copy() cell.T {
	return New(n.Int())
}

// Equal returns true if c is a num with the same value as n.
func (n *num) Equal(c cell.T) bool {
	return Is(c) && n.Int() == To(c).Int()
}

// Int returns the value of the num n.
func (n *num) Int() int64 {
	return int64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return strconv.FormatInt(n.Int(), 10)
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return Name
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Literal()
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*num)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*num); ok {
		return n
	}

	panic("not a " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.T(&t)

	// The num type has a literal representation.
	_ = literal.T(&t)
}
