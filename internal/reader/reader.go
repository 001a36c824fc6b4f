// Released under an MIT license. See LICENSE.

// Package reader encapsulates the lispy lexer and parser.
package reader

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/lispy/internal/reader/ast"
	"github.com/michaelmacinnis/lispy/internal/reader/lexer"
	"github.com/michaelmacinnis/lispy/internal/reader/parser"
	"github.com/michaelmacinnis/lispy/internal/reader/token"
)

// T (reader) turns lines of text into syntax trees.
// Input that ends inside an open list is held until later lines close it.
type T struct {
	label  string
	lexer  *lexer.T
	tokens []*token.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{label: name, lexer: lexer.New(name)}
}

// Parse parses the complete text s. Unbalanced input is reported as
// parser.ErrIncomplete.
func Parse(name, s string) (*ast.Node, error) {
	r := New(name)

	n, err := r.Scan(s)
	if err != nil {
		return nil, err
	}

	if n == nil && r.Pending() {
		return nil, parser.ErrIncomplete
	}

	if n == nil {
		// Nothing but whitespace.
		return parser.New(func() *token.T { return nil }).Parse()
	}

	return n, nil
}

// Pending returns true if the reader is holding an incomplete expression.
func (r *reader) Pending() bool {
	return len(r.tokens) > 0
}

// Reset discards any incomplete expression.
func (r *reader) Reset() {
	r.tokens = nil
	r.lexer = lexer.New(r.label)
}

// Scan reads the line and returns a syntax tree on a complete parse or nil
// otherwise. If scan encounters a syntax error it discards the pending
// input and returns the error.
func (r *reader) Scan(line string) (*ast.Node, error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	r.lexer.Scan(line)

	for t := r.lexer.Token(); t != nil; t = r.lexer.Token() {
		r.tokens = append(r.tokens, t)
	}

	if len(r.tokens) == 0 {
		return nil, nil
	}

	i := 0
	p := parser.New(func() *token.T {
		if i == len(r.tokens) {
			return nil
		}

		t := r.tokens[i]
		i++

		return t
	})

	n, err := p.Parse()
	if errors.Is(err, parser.ErrIncomplete) {
		return nil, nil
	}

	r.tokens = nil

	return n, err
}
