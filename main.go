/*
Lispy is a small Lisp. It evaluates numbers, symbols, S-expressions and
Q-expressions using a fixed set of builtins:

	lispy> + 1 2 3
	6
	lispy> def {x y} 10 20
	()
	lispy> join (list x) {y}
	{10 y}
	lispy> eval (head {(* x 2) 7})
	20
	lispy> / 10 0
	Error: division by zero

Lispy is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/log"

	"github.com/michaelmacinnis/lispy/internal/engine"
	"github.com/michaelmacinnis/lispy/internal/interface/literal"
	"github.com/michaelmacinnis/lispy/internal/system/config"
	"github.com/michaelmacinnis/lispy/internal/system/options"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/ui"
)

func main() {
	opts := options.Parse()

	c, err := config.Load(opts.Config)
	if err != nil {
		log.Errf("%v", err)
		os.Exit(1)
	}

	level := c.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	l, err := config.Level(level)
	if err != nil {
		log.Warnf("%v", err)
	}

	log.SetLogLevel(l)

	e := engine.New()

	prelude(e, c.Prelude)

	switch {
	case opts.Command != "":
		err = ui.Stream(e, "command", strings.NewReader(opts.Command), os.Stdout)
	case opts.Script != "":
		err = script(e, opts.Script)
	case opts.Interactive:
		fmt.Println(options.Version)
		fmt.Println("Press Ctrl+D to exit")
		fmt.Println()

		err = ui.Run(e, c)
	default:
		err = ui.Stream(e, "stdin", os.Stdin, os.Stdout)
	}

	if err != nil {
		log.Errf("%v", err)
		os.Exit(1)
	}
}

func prelude(e *engine.T, exprs []string) {
	for i, s := range exprs {
		label := fmt.Sprintf("prelude[%d]", i)

		v, err := e.Run(label, s)
		if err != nil {
			log.Warnf("%v", err)
			continue
		}

		if errval.Is(v) {
			log.Warnf("%s: %s", label, literal.String(v))
		}
	}
}

func script(e *engine.T, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ui.Stream(e, path, f, os.Stdout)
}
