package env

import (
	"testing"

	"github.com/michaelmacinnis/lispy/internal/type/errval"
	"github.com/michaelmacinnis/lispy/internal/type/list"
	"github.com/michaelmacinnis/lispy/internal/type/num"
)

func TestGetUnbound(t *testing.T) {
	e := New()

	v := e.Get("x")
	if !errval.Is(v) {
		t.Fatalf("expected an error, got %v", v)
	}

	expected := "Error: Unbound symbol 'x'"
	if s := errval.To(v).Literal(); s != expected {
		t.Fatalf("expected %q, got %q", expected, s)
	}
}

func TestPutReplaces(t *testing.T) {
	e := New()

	e.Put("x", num.New(10))
	e.Put("y", num.New(20))
	e.Put("x", num.New(99))

	if e.Len() != 2 {
		t.Fatalf("expected 2 bindings, got %d", e.Len())
	}

	if v := e.Get("x"); !v.Equal(num.New(99)) {
		t.Fatalf("expected 99, got %v", v)
	}

	names := e.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Fatalf("expected [x y], got %v", names)
	}
}

func TestNoAliasing(t *testing.T) {
	e := New()

	l := list.Qexp(num.New(1), num.New(2))
	e.Put("l", l)

	// Changing the original must not change the binding.
	l.Pop(0)

	a := list.To(e.Get("l"))
	if a.Len() != 2 {
		t.Fatalf("expected binding to keep 2 children, got %d", a.Len())
	}

	// Changing a looked up value must not change the binding.
	a.Pop(0)

	b := list.To(e.Get("l"))
	if b.Len() != 2 {
		t.Fatalf("expected binding to keep 2 children, got %d", b.Len())
	}
}

func TestCopy(t *testing.T) {
	e := New()
	e.Put("x", num.New(1))

	c := e.Copy()
	c.Put("x", num.New(2))
	c.Put("y", num.New(3))

	if v := e.Get("x"); !v.Equal(num.New(1)) {
		t.Fatalf("expected original to keep 1, got %v", v)
	}

	if !errval.Is(e.Get("y")) {
		t.Fatal("expected y to be unbound in the original")
	}
}
