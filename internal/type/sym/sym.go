// Released under an MIT license. See LICENSE.

// Package sym provides lispy's symbol cell type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
)

// Name is the type name reported in errors.
const Name = "Symbol"

// T (sym) wraps Go's string type. Short strings are interned.
type T string

type sym = T

// Names no longer than this are interned.
const interned = 3

// New creates a sym cell. Calls with the same short name return the same *T.
func New(v string) *T {
	p, ok := symtry(v)
	if ok {
		return p
	}

	if len(v) > interned {
		s := sym(v)
		return &s
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	p = &s

	cache[v] = p

	return p
}

// Copy returns s. Symbols are immutable.
func (s *sym) Copy() cell.T {
	return s
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.T) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return Name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symtry(v string) (p *sym, ok bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	p, ok = cache[v]

	return
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*sym)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if s, ok := c.(*sym); ok {
		return s
	}

	panic("not a " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.T(&t)

	// The sym type has a literal representation.
	_ = literal.T(&t)
}
