// Released under an MIT license. See LICENSE.

// Package ast defines the syntax tree handed from the parser to the evaluator.
//
// A node is classified by its tag. Number and symbol nodes carry their
// literal text as contents. List and root nodes carry an ordered sequence of
// children which includes their bracket delimiters and, for the root, the
// start and end anchors.
package ast

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lispy/internal/type/loc"
)

// Node tags.
const (
	Anchor    = "regex"
	Delimiter = "char"
	Number    = "number"
	Qexpr     = "qexpr"
	Root      = ">"
	Sexpr     = "sexpr"
	Symbol    = "symbol"
)

// Node is an element of the syntax tree.
type Node struct {
	Tag      string
	Contents string
	Source   loc.T
	Children []*Node
}

// New creates a node with the tag tag and the literal text contents.
func New(tag, contents string, source loc.T) *Node {
	return &Node{Tag: tag, Contents: contents, Source: source}
}

// Add appends c to the children of n and returns n.
func (n *Node) Add(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

// String returns an indented dump of the tree rooted at n. Useful for debugging.
func (n *Node) String() string {
	var b strings.Builder

	n.dump(&b, 0)

	return b.String()
}

func (n *Node) dump(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)

	if n.Contents != "" {
		b.WriteString(" ")
		b.WriteString(adapted.CanonicalString(n.Contents))
	}

	b.WriteString("\n")

	for _, c := range n.Children {
		c.dump(b, depth+1)
	}
}
