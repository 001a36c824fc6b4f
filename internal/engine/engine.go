// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lispy code.
package engine

import (
	"sort"
	"sync"

	"fortio.org/log"
	"github.com/google/uuid"

	"github.com/michaelmacinnis/lispy/internal/engine/commands"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
	"github.com/michaelmacinnis/lispy/internal/interface/scope"
	"github.com/michaelmacinnis/lispy/internal/reader"
	"github.com/michaelmacinnis/lispy/internal/reader/ast"
	"github.com/michaelmacinnis/lispy/internal/reader/convert"
	"github.com/michaelmacinnis/lispy/internal/type/env"
	"github.com/michaelmacinnis/lispy/internal/type/fn"
)

// T (engine) is a facade in front of the machinery for evaluating lispy
// code. Each T is a session with its own global environment.
type T struct {
	env *env.T
	id  string
}

//nolint:gochecknoglobals
var base = sync.OnceValue(Environment)

// New creates a new session. Each session starts with its own copy of
// the builtins.
func New() *T {
	e := &T{env: base().Copy(), id: uuid.NewString()}

	log.Debugf("session %s started with %d builtins", e.id, e.env.Len())

	return e
}

// Environment creates a global environment with every builtin registered.
func Environment() *env.T {
	e := env.New()

	builtins := commands.Builtins()

	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}

	sort.Strings(names)

	for _, k := range names {
		e.Put(k, fn.New(k, builtins[k]))
	}

	return e
}

// Evaluate converts the syntax tree n to a value and reduces it in s.
func Evaluate(s scope.T, n *ast.Node) cell.T {
	return eval.Reduce(s, convert.Node(n))
}

// Evaluate evaluates the syntax tree n in the session's environment.
func (e *T) Evaluate(n *ast.Node) cell.T {
	v := Evaluate(e.env, n)

	if log.LogVerbose() {
		log.LogVf("session %s: %s", e.id, literal.String(v))
	}

	return v
}

// ID returns the session's identifier.
func (e *T) ID() string {
	return e.id
}

// Names returns the names bound in the session's environment.
func (e *T) Names() []string {
	return e.env.Names()
}

// Run parses and evaluates the complete text s.
func (e *T) Run(label, s string) (cell.T, error) {
	n, err := reader.Parse(label, s)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(n), nil
}
