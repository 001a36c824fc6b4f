package errval

import (
	"strings"
	"testing"
)

func TestMessages(t *testing.T) {
	for _, c := range []struct {
		e        *T
		expected string
	}{
		{
			New(DivisionByZero),
			"Error: division by zero",
		},
		{
			New(InvalidNumber),
			"Error: invalid number",
		},
		{
			Unbound("foo"),
			"Error: Unbound symbol 'foo'",
		},
		{
			Arguments("head", 2, 1),
			"Error: Function 'head' passed incorrect number of arguments. Got 2, Expected 1.",
		},
		{
			Type("+", 1, "Q-Expression", "Number"),
			"Error: Function '+' passed incorrect type for argument 1. Got Q-Expression, Expected Number.",
		},
		{
			Empty("tail", 0),
			"Error: Function 'tail' passed {} for argument 0.",
		},
		{
			&T{Kind: NotFunction, Got: "Number", Expected: "Function"},
			"Error: S-Expression starts with incorrect type. Got Number, Expected Function.",
		},
		{
			&T{Kind: SymbolCount, Func: "def", GotCount: 1, ExpectedCount: 2},
			"Error: Function 'def' passed incorrect number of values for symbols. Got 1, Expected 2.",
		},
	} {
		if actual := c.e.Literal(); actual != c.expected {
			t.Errorf("expected %q, got %q", c.expected, actual)
		}
	}
}

func TestCopy(t *testing.T) {
	e := Type("join", 2, "Number", "Q-Expression")

	c := To(e.Copy())
	if c == e {
		t.Fatal("copy returned the original")
	}

	if !c.Equal(e) {
		t.Fatalf("expected %v to equal %v", c, e)
	}

	if c.Equal(Type("join", 1, "Number", "Q-Expression")) {
		t.Fatal("errors with different details should not be equal")
	}
}

func TestUnknown(t *testing.T) {
	if s := New(Unknown).Message(); !strings.Contains(s, "unknown") {
		t.Fatalf("expected unknown error message, got %q", s)
	}
}
