// Released under an MIT license. See LICENSE.

// Package commands provides lispy's builtins.
//
// Every builtin takes ownership of its argument list. On success the list
// is either returned, reused as part of the result, or cleared. On failure
// it is cleared and an error value is returned.
package commands

import (
	"github.com/michaelmacinnis/lispy/internal/type/fn"
)

// Builtins returns the builtins registered in every global environment.
func Builtins() map[string]fn.Builtin {
	return map[string]fn.Builtin{
		// Variables.
		"def": def,

		// Lists.
		"eval": evaluate,
		"head": head,
		"join": join,
		"list": makeList,
		"tail": tail,

		// Arithmetic.
		"%":   mod,
		"*":   mul,
		"+":   add,
		"-":   sub,
		"/":   div,
		"^":   pow,
		"max": maximum,
		"min": minimum,
	}
}
