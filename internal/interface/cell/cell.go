// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lispy values.
package cell

// T (cell) is the basic unit of storage in lispy.
//
// Every cell exclusively owns the cells it contains. Copy returns a deep
// copy that shares nothing mutable with the original.
type T interface {
	Copy() T
	Equal(c T) bool
	Name() string
}
