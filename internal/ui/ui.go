// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lispy language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/lispy/internal/interface/cell"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
	"github.com/michaelmacinnis/lispy/internal/reader"
	"github.com/michaelmacinnis/lispy/internal/reader/ast"
	"github.com/michaelmacinnis/lispy/internal/reader/lexer"
	"github.com/michaelmacinnis/lispy/internal/system/config"
	"github.com/michaelmacinnis/lispy/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed input.
type Evaluator interface {
	Evaluate(n *ast.Node) cell.T
	Names() []string
}

// Run launches the interactive prompt which sends input to the Evaluator.
func Run(e Evaluator, c *config.T) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Names(), line, pos)
	})

	if err := history.Load(c.History, cli.ReadHistory); err != nil {
		log.Warnf("%v", err)
	}

	defer func() {
		if err := history.Save(c.History, cli.WriteHistory); err != nil {
			log.Warnf("%v", err)
		}
	}()

	r := reader.New("stdin")
	continuation := strings.Repeat(".", len(strings.TrimRight(c.Prompt, " "))) + " "

	for {
		prompt := c.Prompt
		if r.Pending() {
			prompt = continuation
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		default:
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		evaluate(e, r, line, os.Stdout)
	}
}

// Stream evaluates every complete expression read from in, writing each
// result to out. Syntax errors are reported and evaluation continues.
func Stream(e Evaluator, name string, in io.Reader, out io.Writer) error {
	r := reader.New(name)

	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)

	for s.Scan() {
		evaluate(e, r, s.Text(), out)
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	if r.Pending() {
		return fmt.Errorf("%s: unexpected end of input", name)
	}

	return nil
}

func complete(names []string, line string, pos int) (string, []string, string) {
	// The cursor position is in runes.
	runes := []rune(line)
	head, tail := string(runes[:pos]), string(runes[pos:])

	start := len(head)
	for start > 0 && lexer.IsSymbolRune(rune(head[start-1])) {
		start--
	}

	prefix := head[start:]
	pattern := escape(prefix) + "*"

	var candidates []string

	for _, n := range names {
		if ok, _ := adapted.Match(pattern, n); ok {
			candidates = append(candidates, n)
		}
	}

	return head[:start], candidates, tail
}

func escape(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}

func evaluate(e Evaluator, r *reader.T, line string, out io.Writer) {
	n, err := r.Scan(line)
	if err != nil {
		fmt.Fprintln(out, err.Error())
		return
	}

	if n == nil {
		return
	}

	if log.LogDebug() {
		log.Debugf("parsed:\n%s", n)
	}

	fmt.Fprintln(out, literal.String(e.Evaluate(n)))
}
