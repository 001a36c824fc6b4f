// Released under an MIT license. See LICENSE.

// Package config loads lispy's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultHistory  = "~/.lispy_history"
	DefaultLogLevel = "warning"
	DefaultPrompt   = "lispy> "
)

// T (config) holds settings that can be changed without recompiling.
type T struct {
	History  string   `yaml:"history"`
	LogLevel string   `yaml:"log-level"`
	Prelude  []string `yaml:"prelude"`
	Prompt   string   `yaml:"prompt"`
}

type config = T

// Default returns the configuration used when no file exists.
func Default() *T {
	return &config{
		History:  Expand(DefaultHistory),
		LogLevel: DefaultLogLevel,
		Prompt:   DefaultPrompt,
	}
}

// Load reads the configuration file at path. A missing file is not an
// error; the defaults are returned. Unset fields keep their defaults.
func Load(path string) (*T, error) {
	c := Default()

	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(Expand(path))
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := Parse(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes the YAML document b over the values already in c.
func Parse(b []byte, c *T) error {
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	c.History = Expand(c.History)

	return nil
}

// Expand replaces a leading "~/" in path with the user's home directory.
func Expand(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}

// Level returns the log level named s.
func Level(s string) (log.Level, error) {
	l, ok := map[string]log.Level{
		"debug":   log.Debug,
		"verbose": log.Verbose,
		"info":    log.Info,
		"warning": log.Warning,
		"error":   log.Error,
	}[strings.ToLower(s)]
	if !ok {
		return log.Warning, fmt.Errorf("unknown log level %q", s)
	}

	return l, nil
}
