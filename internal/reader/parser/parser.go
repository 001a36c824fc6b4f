// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lispy language.
package parser

import (
	"errors"

	"github.com/michaelmacinnis/lispy/internal/reader/ast"
	"github.com/michaelmacinnis/lispy/internal/reader/token"
	"github.com/michaelmacinnis/lispy/internal/type/loc"
)

// ErrIncomplete is returned when input ends inside an open list.
var ErrIncomplete = errors.New("incomplete input")

// Error is a syntax error at a specific source location.
type Error struct {
	Source loc.T
	Msg    string
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Msg
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes tokens produced by item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes tokens until there are no more and returns the root node.
// If the tokens run out inside a list, Parse returns ErrIncomplete.
func (p *T) Parse() (root *ast.Node, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		root, err = nil, e
	}()

	root = ast.New(ast.Root, "", loc.T{})
	root.Add(ast.New(ast.Anchor, "", loc.T{}))

	for t := p.peek(); t != nil; t = p.peek() {
		root.Add(p.expr())
	}

	return root.Add(ast.New(ast.Anchor, "", loc.T{})), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic(errors.New("nothing to consume"))
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(t *token.T, msg string) {
	panic(&Error{Source: *t.Source(), Msg: msg})
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <expr> ::= Number | Symbol | <sexpr> | <qexpr> .
func (p *T) expr() *ast.Node {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()
		return ast.New(ast.Number, t.Value(), *t.Source())
	case t.Is(token.Symbol):
		p.consume()
		return ast.New(ast.Symbol, t.Value(), *t.Source())
	case t.Is('('):
		return p.list(ast.Sexpr, ')')
	case t.Is('{'):
		return p.list(ast.Qexpr, '}')
	case t.Is(')', '}'):
		p.fail(t, "unexpected '"+t.Value()+"'")
	}

	p.fail(t, "unexpected character '"+t.Value()+"'")

	return nil
}

// <sexpr> ::= '(' <expr>* ')' .
// <qexpr> ::= '{' <expr>* '}' .
func (p *T) list(tag string, closing token.Class) *ast.Node {
	t := p.consume()

	n := ast.New(tag, "", *t.Source())
	n.Add(ast.New(ast.Delimiter, t.Value(), *t.Source()))

	for {
		t = p.peek()

		switch {
		case t == nil:
			panic(ErrIncomplete)
		case t.Is(closing):
			p.consume()
			return n.Add(ast.New(ast.Delimiter, t.Value(), *t.Source()))
		case t.Is(')', '}'):
			p.fail(t, "expected '"+string(rune(closing))+"' got '"+t.Value()+"'")
		}

		n.Add(p.expr())
	}
}
