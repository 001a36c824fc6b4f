// Released under an MIT license. See LICENSE.

// Package scope defines the interface for lispy's environments.
package scope

import (
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
)

// T (scope) binds names to values.
//
// Get returns an independent copy of the bound value or an unbound symbol
// error. Put stores an independent copy of v, replacing any prior binding.
type T interface {
	Get(k string) cell.T
	Put(k string, v cell.T)
}
