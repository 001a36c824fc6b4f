// Released under an MIT license. See LICENSE.

// Package errval provides lispy's error value type.
//
// An error is a first-class value, not a Go error. It carries a kind and the
// typed details of the failure and is only turned into text when rendered.
package errval

import (
	"fmt"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
)

// Name is the type name reported in errors.
const Name = "Error"

// Kind classifies an error value.
type Kind int

// Error kinds.
const (
	Unknown Kind = iota

	Arity          // Wrong number of arguments.
	DivisionByZero // Division or remainder by zero.
	EmptyList      // A non-empty Q-expression was required.
	InvalidNumber  // A number literal could not be represented.
	NegativeExpo   // Power with a negative exponent.
	NonSymbol      // def was asked to bind something that is not a symbol.
	NotFunction    // The head of an S-expression is not a function.
	SymbolCount    // def was given a different number of symbols and values.
	TypeMismatch   // An argument had the wrong type.
	UnboundSymbol  // Lookup of an undefined name.
)

// T (errval) is an error value.
type T struct {
	Kind Kind

	Func   string // Function that detected the error.
	Index  int    // Offending argument index.
	Symbol string // Offending symbol.

	Got      string // Actual type name.
	Expected string // Expected type name.

	GotCount      int
	ExpectedCount int
}

type errval = T

// New creates an error value of kind k with no details.
func New(k Kind) *T {
	return &errval{Kind: k}
}

// Arguments creates an arity error for the function f.
func Arguments(f string, got, expected int) *T {
	return &errval{
		Kind:          Arity,
		Func:          f,
		GotCount:      got,
		ExpectedCount: expected,
	}
}

// Empty creates an empty list error for argument i of the function f.
func Empty(f string, i int) *T {
	return &errval{Kind: EmptyList, Func: f, Index: i}
}

// Type creates a type mismatch error for argument i of the function f.
func Type(f string, i int, got, expected string) *T {
	return &errval{
		Kind:     TypeMismatch,
		Func:     f,
		Index:    i,
		Got:      got,
		Expected: expected,
	}
}

// Unbound creates an unbound symbol error for the name s.
func Unbound(s string) *T {
	return &errval{Kind: UnboundSymbol, Symbol: s}
}

// Copy returns a new errval with the same details as e.
func (e *errval) Copy() cell.T {
	c := *e
	return &c
}

// Equal returns true if c is an errval with the same details as e.
func (e *errval) Equal(c cell.T) bool {
	return Is(c) && *e == *To(c)
}

// Literal returns the literal representation of the errval e.
func (e *errval) Literal() string {
	return "Error: " + e.Message()
}

// Message returns the human-readable description of e.
func (e *errval) Message() string {
	switch e.Kind {
	case Arity:
		return fmt.Sprintf(
			"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			e.Func, e.GotCount, e.ExpectedCount,
		)
	case DivisionByZero:
		return "division by zero"
	case EmptyList:
		return fmt.Sprintf("Function '%s' passed {} for argument %d.", e.Func, e.Index)
	case InvalidNumber:
		return "invalid number"
	case NegativeExpo:
		return fmt.Sprintf("Function '%s' passed a negative exponent.", e.Func)
	case NonSymbol:
		return fmt.Sprintf(
			"Function '%s' cannot define non-symbol. Got %s, Expected %s.",
			e.Func, e.Got, e.Expected,
		)
	case NotFunction:
		return fmt.Sprintf(
			"S-Expression starts with incorrect type. Got %s, Expected %s.",
			e.Got, e.Expected,
		)
	case SymbolCount:
		return fmt.Sprintf(
			"Function '%s' passed incorrect number of values for symbols. Got %d, Expected %d.",
			e.Func, e.GotCount, e.ExpectedCount,
		)
	case TypeMismatch:
		return fmt.Sprintf(
			"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			e.Func, e.Index, e.Got, e.Expected,
		)
	case UnboundSymbol:
		return fmt.Sprintf("Unbound symbol '%s'", e.Symbol)
	case Unknown:
	}

	return "unknown error"
}

// Name returns the type name for the errval e.
func (e *errval) Name() string {
	return Name
}

// String returns the text of the errval e.
func (e *errval) String() string {
	return e.Literal()
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*errval)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if e, ok := c.(*errval); ok {
		return e
	}

	panic("not an " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t errval

	// The errval type is a cell.
	_ = cell.T(&t)

	// The errval type has a literal representation.
	_ = literal.T(&t)
}
