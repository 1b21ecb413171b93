package boolexpr_test

import (
	"testing"

	"github.com/exprlab/boolexpr"
)

func TestRegistry_Literal(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		reg := boolexpr.NewRegistry()
		for _, u := range []int{1, -1, 5, -5, 1000} {
			if reg.Literal(u) != reg.Literal(u) {
				t.Fatalf("expected identical nodes for uniqid %d", u)
			}
		}
	})

	t.Run("Kind", func(t *testing.T) {
		reg := boolexpr.NewRegistry()
		if k := reg.Literal(3).Kind(); k != boolexpr.KindVar {
			t.Fatalf("unexpected kind: %s", k)
		}
		if k := reg.Literal(-3).Kind(); k != boolexpr.KindComp {
			t.Fatalf("unexpected kind: %s", k)
		}
	})

	t.Run("Complement", func(t *testing.T) {
		reg := boolexpr.NewRegistry()
		v := reg.Literal(9)
		c := reg.Literal(-9)
		if boolexpr.Not(v) != c {
			t.Fatal("expected Not(v) to be the interned complement")
		}
		if boolexpr.Not(c) != v {
			t.Fatal("expected Not(c) to be the interned variable")
		}
	})

	t.Run("UniqID", func(t *testing.T) {
		reg := boolexpr.NewRegistry()
		if id := reg.Literal(-12).UniqID(); id != -12 {
			t.Fatalf("unexpected uniqid: %d", id)
		}
	})

	t.Run("IndependentRegistries", func(t *testing.T) {
		ra, rb := boolexpr.NewRegistry(), boolexpr.NewRegistry()
		if ra.Literal(1) == rb.Literal(1) {
			t.Fatal("expected distinct universes to intern distinct nodes")
		}
	})

	t.Run("Zero", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		boolexpr.NewRegistry().Literal(0)
	})
}

func TestRegistry_Len(t *testing.T) {
	reg := boolexpr.NewRegistry()
	reg.Literal(1)
	reg.Literal(1)
	reg.Literal(-1)
	reg.Literal(40)
	if n := reg.Len(); n != 3 {
		t.Fatalf("unexpected length: %d", n)
	}
}
