package config

import (
	"os"
	"path/filepath"
	"testing"

	"fortio.org/log"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Prompt != DefaultPrompt {
		t.Fatalf("expected %q, got %q", DefaultPrompt, c.Prompt)
	}

	if c.LogLevel != DefaultLogLevel {
		t.Fatalf("expected %q, got %q", DefaultLogLevel, c.LogLevel)
	}

	if c.History != Expand(DefaultHistory) {
		t.Fatalf("expected %q, got %q", Expand(DefaultHistory), c.History)
	}
}

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if p := Expand("~/x"); p != filepath.Join(home, "x") {
		t.Fatalf("expected %q, got %q", filepath.Join(home, "x"), p)
	}

	for _, p := range []string{"/tmp/x", "x", "~x", ""} {
		if e := Expand(p); e != p {
			t.Fatalf("expected %q to be unchanged, got %q", p, e)
		}
	}
}

func TestParse(t *testing.T) {
	c := Default()

	err := Parse([]byte(`
prompt: "> "
log-level: debug
prelude:
  - def {one} 1
  - def {two} 2
`), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != "> " {
		t.Fatalf("expected %q, got %q", "> ", c.Prompt)
	}

	if c.LogLevel != "debug" {
		t.Fatalf("expected debug, got %q", c.LogLevel)
	}

	if len(c.Prelude) != 2 || c.Prelude[1] != "def {two} 2" {
		t.Fatalf("unexpected prelude %v", c.Prelude)
	}

	if c.History != Expand(DefaultHistory) {
		t.Fatalf("expected history to keep its default, got %q", c.History)
	}
}

func TestParseError(t *testing.T) {
	if err := Parse([]byte("prompt: [unterminated"), Default()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != DefaultPrompt {
		t.Fatalf("expected defaults for a missing file, got %q", c.Prompt)
	}

	path := filepath.Join(dir, "lispy.yaml")

	err = os.WriteFile(path, []byte("history: "+filepath.Join(dir, "h")+"\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	c, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.History != filepath.Join(dir, "h") {
		t.Fatalf("expected %q, got %q", filepath.Join(dir, "h"), c.History)
	}

	if c.Prompt != DefaultPrompt {
		t.Fatalf("expected unset prompt to keep its default, got %q", c.Prompt)
	}
}

func TestLevel(t *testing.T) {
	for s, expected := range map[string]log.Level{
		"debug":   log.Debug,
		"Verbose": log.Verbose,
		"info":    log.Info,
		"WARNING": log.Warning,
		"error":   log.Error,
	} {
		l, err := Level(s)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}

		if l != expected {
			t.Fatalf("%s: expected %v, got %v", s, expected, l)
		}
	}

	if _, err := Level("loud"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
