// Released under an MIT license. See LICENSE.

// Package literal defines the interface for lispy types that can be rendered as text.
package literal

import (
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
)

// T (literal) is any type that has a canonical printed form.
type T interface {
	Literal() string
}

// String returns the canonical printed form for a cell, if possible.
func String(c cell.T) string {
	if c == nil {
		return "()"
	}

	l, ok := c.(T)
	if !ok {
		// Every lispy type is a literal. This should never happen.
		panic(c.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
