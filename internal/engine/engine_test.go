package engine

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/lispy/internal/interface/literal"
	"github.com/michaelmacinnis/lispy/internal/reader"
	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/type/fn"
)

func run(t *testing.T, e *T, s string) string {
	t.Helper()

	v, err := e.Run("test", s)
	if err != nil {
		t.Fatalf("unexpected error running %q: %v", s, err)
	}

	return literal.String(v)
}

func TestEnvironment(t *testing.T) {
	e := Environment()

	for _, k := range strings.Fields("+ - * / list head tail eval join def") {
		if !fn.Is(e.Get(k)) {
			t.Errorf("expected %s to be bound to a function", k)
		}
	}
}

func TestEvaluate(t *testing.T) {
	e := Environment()

	n, err := reader.Parse("test", "(+ 1 2 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := literal.String(Evaluate(e, n)); s != "6" {
		t.Fatalf("expected 6, got %s", s)
	}
}

func TestProperties(t *testing.T) {
	e := New()

	for _, x := range []struct {
		input    string
		expected string
	}{
		{"(+ 1 2 3)", "6"},
		{"(head {1 2 3})", "{1}"},
		{"(tail {1 2 3})", "{2 3}"},
		{"(join (list 1 2) (list 3))", "{1 2 3}"},
		{"(eval (list + 1 2))", "3"},
		{"(def {x y} 10 20)", "()"},
		{"x", "10"},
		{"(def {x} 99)", "()"},
		{"x", "99"},
		{"y", "20"},
	} {
		if actual := run(t, e, x.input); actual != x.expected {
			t.Fatalf("%s: expected %s, got %s", x.input, x.expected, actual)
		}
	}
}

func TestErrorProperties(t *testing.T) {
	e := New()

	if s := run(t, e, "(/ 10 0)"); !strings.Contains(s, "division by zero") {
		t.Fatalf("expected division by zero, got %s", s)
	}

	v, err := e.Run("test", "(head {})")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !errval.Is(v) {
		t.Fatalf("expected an error, got %v", v)
	}

	v, err = e.Run("test", "(1 2 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !errval.Is(v) || errval.To(v).Kind != errval.NotFunction {
		t.Fatalf("expected a type mismatch error, got %v", v)
	}
}

func TestNumberRoundTrip(t *testing.T) {
	e := New()

	for _, s := range []string{"0", "12345", "-12345", "9223372036854775807"} {
		if actual := run(t, e, s); actual != s {
			t.Fatalf("expected %s, got %s", s, actual)
		}
	}

	if actual := run(t, e, "99999999999999999999"); actual != "Error: invalid number" {
		t.Fatalf("expected invalid number, got %s", actual)
	}
}

func TestIdempotent(t *testing.T) {
	e := New()

	for _, s := range []string{"5", "{1 (+ 1 1) x}", "{}", "+", "(/ 1 0)"} {
		first := run(t, e, s)
		second := run(t, e, s)

		if first != second {
			t.Fatalf("expected %s to evaluate the same way twice, got %s and %s", s, first, second)
		}
	}

	if s := run(t, e, "{1 (+ 1 1) x}"); s != "{1 (+ 1 1) x}" {
		t.Fatalf("expected Q-expression to be left alone, got %s", s)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := New()
	b := New()

	if a.ID() == b.ID() {
		t.Fatal("expected sessions to have different ids")
	}

	run(t, a, "def {z} 1")

	if s := run(t, b, "z"); s != "Error: Unbound symbol 'z'" {
		t.Fatalf("expected z to be unbound in another session, got %s", s)
	}

	if s := run(t, a, "z"); s != "1" {
		t.Fatalf("expected 1, got %s", s)
	}
}

func TestRebindingIsPerSession(t *testing.T) {
	a := New()

	run(t, a, "def {+} 1")

	if s := run(t, a, "+"); s != "1" {
		t.Fatalf("expected + to be rebound, got %s", s)
	}

	b := New()

	if s := run(t, b, "+ 1 2"); s != "3" {
		t.Fatalf("expected a new session to keep the + builtin, got %s", s)
	}
}

func TestNames(t *testing.T) {
	e := New()

	before := len(e.Names())

	run(t, e, "def {answer} 42")

	names := e.Names()
	if len(names) != before+1 || names[len(names)-1] != "answer" {
		t.Fatalf("expected answer to be appended to %v", names)
	}
}

func TestRunSyntaxError(t *testing.T) {
	e := New()

	if _, err := e.Run("test", "(+ 1 2"); err == nil {
		t.Fatal("expected an error for incomplete input")
	}

	if _, err := e.Run("test", "{1 2)"); err == nil {
		t.Fatal("expected a syntax error")
	}
}
