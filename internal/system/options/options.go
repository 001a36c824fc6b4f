// Released under an MIT license. See LICENSE.

// Package options parses lispy's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "lispy 0.0.7"

const usage = `lispy

Usage:
  lispy [--config=FILE] [--log-level=LEVEL] SCRIPT
  lispy [--config=FILE] [--log-level=LEVEL] -c EXPRESSION
  lispy [--config=FILE] [--log-level=LEVEL] [-i]
  lispy -h
  lispy -v

Arguments:
  SCRIPT  Path to a lispy script. Each expression is evaluated in turn.

Options:
  -c, --command=EXPRESSION  Evaluate the specified expression.
  --config=FILE             Configuration file [default: ~/.lispy.yaml].
  -i, --interactive         Invert interactive mode.
  --log-level=LEVEL         One of debug, verbose, info, warning, error.
  -h, --help                Display this help.
  -v, --version             Print lispy version.

If lispy's stdin is a TTY and lispy was invoked with no script or command,
the interactive prompt is enabled. Otherwise it is disabled.
`

// T (options) holds the parsed command line.
type T struct {
	Command     string
	Config      string
	Interactive bool
	LogLevel    string
	Script      string
}

type options = T

// Parse parses the process's command line.
func Parse() *T {
	o, err := ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	return o
}

// ParseArgs parses argv. The value of tty decides the default for
// interactive mode when no script or command is given.
func ParseArgs(argv []string, tty bool) (*T, error) {
	// A nil argv would make docopt read os.Args.
	if argv == nil {
		argv = []string{}
	}

	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &options{}

	o.Command, _ = opts.String("--command")
	o.Config, _ = opts.String("--config")
	o.LogLevel, _ = opts.String("--log-level")
	o.Script, _ = opts.String("SCRIPT")

	if o.Script == "" && o.Command == "" {
		o.Interactive = tty
	}

	invert, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invert

	return o, nil
}
