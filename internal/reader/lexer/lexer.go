// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lispy language.
//
// The lispy lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/lispy/internal/reader/token"
	"github.com/michaelmacinnis/lispy/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace
	l.tokens = make(chan *token.T, 1)

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// A token that straddles the end of the available input is held back
// until more input arrives.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state == nil {
				return nil
			}

			l.state = state
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")

	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// IsSymbolRune returns true if r can appear in a symbol or number.
func IsSymbolRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	}

	return strings.ContainsRune(`_+-*/\=<>!&%^`, r)
}

// IsNumber returns true if s is an optional minus sign followed by digits.
func IsNumber(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// T states.

func scanSymbol(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case IsSymbolRune(rune(r)):
		l.accept(r, w)
		return scanSymbol
	}

	s := l.Text()
	if IsNumber(s) {
		l.emit(token.Number, s)
	} else {
		l.emit(token.Symbol, s)
	}

	return skipWhitespace
}

func skipWhitespace(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '\t', '\n', '\r', ' ':
		l.accept(r, w)
		l.skip()
	case '(', ')', '{', '}':
		l.accept(r, w)
		l.emit(r, l.Text())
	default:
		l.accept(r, w)

		if IsSymbolRune(rune(r)) {
			return scanSymbol
		}

		l.emit(token.Error, l.Text())
	}

	return skipWhitespace
}
