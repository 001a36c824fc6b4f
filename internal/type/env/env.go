// Released under an MIT license. See LICENSE.

// Package env provides lispy's environment type.
package env

import (
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/scope"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
)

// T (env) maps names to values. Bindings are kept in insertion order.
//
// An env is owned by a single session and is not safe for concurrent use.
type T struct {
	names  []string
	values []cell.T
}

type env = T

// New creates a new, empty env.
func New() *T {
	return &env{}
}

// Copy creates an independent copy of the env e and every value it binds.
func (e *env) Copy() *T {
	c := &env{
		names:  make([]string, len(e.names)),
		values: make([]cell.T, len(e.values)),
	}

	copy(c.names, e.names)

	for i, v := range e.values {
		c.values[i] = v.Copy()
	}

	return c
}

// Get returns a copy of the value bound to k or an unbound symbol error.
func (e *env) Get(k string) cell.T {
	if i := e.index(k); i >= 0 {
		return e.values[i].Copy()
	}

	return errval.Unbound(k)
}

// Len returns the number of bindings in the env e.
func (e *env) Len() int {
	return len(e.names)
}

// Names returns the bound names in insertion order.
func (e *env) Names() []string {
	names := make([]string, len(e.names))
	copy(names, e.names)

	return names
}

// Put binds k to a copy of v, replacing any existing binding for k.
func (e *env) Put(k string, v cell.T) {
	if i := e.index(k); i >= 0 {
		e.values[i] = v.Copy()
		return
	}

	e.names = append(e.names, k)
	e.values = append(e.values, v.Copy())
}

func (e *env) index(k string) int {
	for i, n := range e.names {
		if n == k {
			return i
		}
	}

	return -1
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a scope.
	_ = scope.T(&t)
}
