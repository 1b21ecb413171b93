package boolexpr_test

import (
	"testing"

	"github.com/exprlab/boolexpr"
)

func TestConstructors_DegenerateArity(t *testing.T) {
	reg := boolexpr.NewRegistry()
	x := reg.Literal(1)

	t.Run("Or", func(t *testing.T) {
		if boolexpr.Or() != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
		if boolexpr.Or(x) != x {
			t.Fatal("expected the single argument")
		}
	})
	t.Run("And", func(t *testing.T) {
		if boolexpr.And() != boolexpr.One {
			t.Fatal("expected One")
		}
		if boolexpr.And(x) != x {
			t.Fatal("expected the single argument")
		}
	})
	t.Run("Xor", func(t *testing.T) {
		if boolexpr.Xor() != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
		if boolexpr.Xor(x) != x {
			t.Fatal("expected the single argument")
		}
	})
	t.Run("Equal", func(t *testing.T) {
		if boolexpr.Equal() != boolexpr.One {
			t.Fatal("expected One")
		}
		if boolexpr.Equal(x) != boolexpr.One {
			t.Fatal("expected One")
		}
	})
}

func TestConstructors_IdentityDominator(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b := reg.Literal(1), reg.Literal(2)

	t.Run("OrIdentity", func(t *testing.T) {
		if boolexpr.Or(a, boolexpr.Zero) != a {
			t.Fatal("expected identity to vanish")
		}
	})
	t.Run("OrDominator", func(t *testing.T) {
		if boolexpr.Or(a, boolexpr.One, b) != boolexpr.One {
			t.Fatal("expected One")
		}
	})
	t.Run("AndIdentity", func(t *testing.T) {
		if boolexpr.And(a, boolexpr.One) != a {
			t.Fatal("expected identity to vanish")
		}
	})
	t.Run("AndDominator", func(t *testing.T) {
		if boolexpr.And(a, boolexpr.Zero, b) != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
	})
}

func TestConstructors_IdempotenceAnnihilation(t *testing.T) {
	reg := boolexpr.NewRegistry()
	x := reg.Literal(1)
	nx := reg.Literal(-1)

	t.Run("OrIdempotent", func(t *testing.T) {
		if boolexpr.Or(x, x) != x {
			t.Fatal("expected x")
		}
	})
	t.Run("OrAnnihilates", func(t *testing.T) {
		if boolexpr.Or(x, nx) != boolexpr.One {
			t.Fatal("expected One")
		}
		// Annihilation wins over everything accumulated so far.
		if boolexpr.Or(reg.Literal(2), x, nx, reg.Literal(3)) != boolexpr.One {
			t.Fatal("expected One")
		}
	})
	t.Run("AndAnnihilates", func(t *testing.T) {
		if boolexpr.And(x, nx) != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
	})
	t.Run("XorSelfCancels", func(t *testing.T) {
		if boolexpr.Xor(x, x) != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
	})
	t.Run("XorComplement", func(t *testing.T) {
		if boolexpr.Xor(x, nx) != boolexpr.One {
			t.Fatal("expected One")
		}
		if boolexpr.Xor(nx, x) != boolexpr.One {
			t.Fatal("expected One")
		}
	})
	t.Run("EqualComplement", func(t *testing.T) {
		if boolexpr.Equal(x, nx) != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
	})
	t.Run("EqualDuplicate", func(t *testing.T) {
		if boolexpr.Equal(x, x) != boolexpr.One {
			t.Fatal("expected One")
		}
	})
}

func TestConstructors_Flattening(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b, c, d := reg.Literal(1), reg.Literal(2), reg.Literal(3), reg.Literal(4)

	t.Run("Or", func(t *testing.T) {
		nested := boolexpr.Or(boolexpr.Or(a, b), boolexpr.Or(c, d))
		flat := boolexpr.Or(a, b, c, d)
		if nested.Kind() != boolexpr.KindOr {
			t.Fatalf("unexpected kind: %s", nested.Kind())
		}
		if len(nested.Args()) != 4 {
			t.Fatalf("unexpected arity: %d", len(nested.Args()))
		}
		if !boolexpr.Similar(nested, flat) {
			t.Fatalf("expected similar structures: %s vs %s", nested, flat)
		}
	})
	t.Run("XorParity", func(t *testing.T) {
		// Xnor flattens into Xor with one extra inversion.
		x := boolexpr.Xor(a, boolexpr.Xnor(b, c))
		if x.Kind() != boolexpr.KindNot {
			t.Fatalf("unexpected kind: %s", x.Kind())
		}
		inner := x.Args()[0]
		if inner.Kind() != boolexpr.KindXor || len(inner.Args()) != 3 {
			t.Fatalf("unexpected inner node: %s", inner)
		}
	})
}

func TestConstructors_EqualReductions(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b := reg.Literal(1), reg.Literal(2)

	t.Run("WithZero", func(t *testing.T) {
		// Equal(0, a) = ~a
		x := boolexpr.Equal(boolexpr.Zero, a)
		if x != reg.Literal(-1) {
			t.Fatalf("unexpected node: %s", x)
		}
	})
	t.Run("WithOne", func(t *testing.T) {
		// Equal(1, a) = a
		if boolexpr.Equal(boolexpr.One, a) != a {
			t.Fatal("expected a")
		}
	})
	t.Run("WithBothConstants", func(t *testing.T) {
		if boolexpr.Equal(boolexpr.Zero, boolexpr.One, a) != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
	})
	t.Run("ZeroWithMany", func(t *testing.T) {
		// Equal(0, a, b) = ~(a | b)
		x := boolexpr.Equal(boolexpr.Zero, a, b)
		if x.Kind() != boolexpr.KindNot {
			t.Fatalf("unexpected kind: %s", x.Kind())
		}
		if inner := x.Args()[0]; inner.Kind() != boolexpr.KindOr {
			t.Fatalf("unexpected inner kind: %s", inner.Kind())
		}
	})
	t.Run("OneWithMany", func(t *testing.T) {
		// Equal(1, a, b) = a & b
		x := boolexpr.Equal(boolexpr.One, a, b)
		expect := boolexpr.And(a, b)
		if !boolexpr.Similar(x, expect) {
			t.Fatalf("unexpected node: %s", x)
		}
	})
}

func TestConstructors_Negated(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b := reg.Literal(1), reg.Literal(2)

	t.Run("Nor", func(t *testing.T) {
		x := boolexpr.Nor(a, b)
		if x.Kind() != boolexpr.KindNot || x.Args()[0].Kind() != boolexpr.KindOr {
			t.Fatalf("unexpected node: %s", x)
		}
	})
	t.Run("Nand", func(t *testing.T) {
		x := boolexpr.Nand(a, b)
		if x.Kind() != boolexpr.KindNot || x.Args()[0].Kind() != boolexpr.KindAnd {
			t.Fatalf("unexpected node: %s", x)
		}
	})
	t.Run("NorEmpty", func(t *testing.T) {
		if boolexpr.Nor() != boolexpr.One {
			t.Fatal("expected One")
		}
	})
	t.Run("UnequalComplement", func(t *testing.T) {
		if boolexpr.Unequal(a, boolexpr.Not(a)) != boolexpr.One {
			t.Fatal("expected One")
		}
	})
}

func TestNot(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b := reg.Literal(1), reg.Literal(2)

	t.Run("Constants", func(t *testing.T) {
		if boolexpr.Not(boolexpr.Zero) != boolexpr.One {
			t.Fatal("expected One")
		}
		if boolexpr.Not(boolexpr.One) != boolexpr.Zero {
			t.Fatal("expected Zero")
		}
	})
	t.Run("DoubleNegation", func(t *testing.T) {
		or := boolexpr.Or(a, b)
		if boolexpr.Not(boolexpr.Not(or)) != or {
			t.Fatal("expected the original node")
		}
	})
}
