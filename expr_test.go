package boolexpr_test

import (
	"testing"

	"github.com/exprlab/boolexpr"
	"github.com/google/go-cmp/cmp"
)

func TestKind_String(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		if s := boolexpr.KindOr.String(); s != "or" {
			t.Fatalf("unexpected string: %s", s)
		}
	})
	t.Run("Unknown", func(t *testing.T) {
		if s := boolexpr.Kind(100).String(); s != "Kind<100>" {
			t.Fatalf("unexpected string: %s", s)
		}
	})
}

func TestBoolExpr_Metrics(t *testing.T) {
	reg := boolexpr.NewRegistry()
	x0, x1 := reg.Literal(1), reg.Literal(2)
	x2, x3 := reg.Literal(3), reg.Literal(4)

	a0 := boolexpr.And(x0, x1)
	a1 := boolexpr.And(x2, x3)
	nor := boolexpr.Nor(a0, a1)

	if d := nor.Depth(); d != 2 {
		t.Fatalf("unexpected depth: %d", d)
	}
	if n := nor.Size(); n != 7 {
		t.Fatalf("unexpected size: %d", n)
	}
	if n := nor.AtomCount(); n != 4 {
		t.Fatalf("unexpected atom count: %d", n)
	}
	if n := nor.OpCount(); n != 3 {
		t.Fatalf("unexpected op count: %d", n)
	}
}

func TestBoolExpr_String(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a := reg.Literal(1)
	na := reg.Literal(-1)
	if s := a.String(); s != "x1" {
		t.Fatalf("unexpected string: %s", s)
	}
	if s := na.String(); s != "~x1" {
		t.Fatalf("unexpected string: %s", s)
	}
	if s := boolexpr.Zero.String(); s != "0" {
		t.Fatalf("unexpected string: %s", s)
	}
	and := boolexpr.And(a, na)
	if s := and.String(); s != "0" {
		t.Fatalf("unexpected string: %s", s)
	}
}

func TestBoolExpr_IsDNF(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b, c := reg.Literal(1), reg.Literal(2), reg.Literal(3)

	t.Run("Literal", func(t *testing.T) {
		if !a.IsDNF() {
			t.Fatal("expected true")
		}
	})
	t.Run("Constant", func(t *testing.T) {
		if !boolexpr.Zero.IsDNF() || !boolexpr.One.IsDNF() {
			t.Fatal("expected true")
		}
	})
	t.Run("Clause", func(t *testing.T) {
		and := boolexpr.And(a, b)
		if !and.IsDNF() {
			t.Fatal("expected true")
		}
	})
	t.Run("OrOfClauses", func(t *testing.T) {
		x := boolexpr.Or(boolexpr.And(a, b), c)
		if !x.IsDNF() {
			t.Fatal("expected true")
		}
		if x.IsCNF() {
			t.Fatal("expected false")
		}
	})
	t.Run("Mixed", func(t *testing.T) {
		x := boolexpr.And(boolexpr.Or(a, b), c)
		if x.IsDNF() {
			t.Fatal("expected false")
		}
		if !x.IsCNF() {
			t.Fatal("expected true")
		}
	})
}

func TestBoolExpr_Iterate(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b, c := reg.Literal(1), reg.Literal(2), reg.Literal(3)
	or := boolexpr.Or(a, b)
	root := boolexpr.And(or, c)

	var seq []*boolexpr.BoolExpr
	it := root.Iterate()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		seq = append(seq, node)
	}

	if len(seq) != 5 {
		t.Fatalf("unexpected length: %d", len(seq))
	}
	if seq[len(seq)-1] != root {
		t.Fatal("expected root last")
	}

	pos := make(map[*boolexpr.BoolExpr]int)
	for i, node := range seq {
		if _, ok := pos[node]; ok {
			t.Fatalf("node visited twice: %s", node)
		}
		pos[node] = i
	}
	for node, i := range pos {
		for _, arg := range node.Args() {
			if pos[arg] >= i {
				t.Fatalf("child after parent: %s", node)
			}
		}
	}

	// A fresh iterator restarts the sequence.
	it = root.Iterate()
	node, ok := it.Next()
	if !ok || node != seq[0] {
		t.Fatal("expected restarted sequence")
	}
}

func TestSimilar(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b, c := reg.Literal(1), reg.Literal(2), reg.Literal(3)

	t.Run("SameNode", func(t *testing.T) {
		if !boolexpr.Similar(a, a) {
			t.Fatal("expected true")
		}
	})
	t.Run("OrderInsensitive", func(t *testing.T) {
		x := boolexpr.And(boolexpr.Or(a, b), c)
		y := boolexpr.And(c, boolexpr.Or(b, a))
		if !boolexpr.Similar(x, y) {
			t.Fatal("expected true")
		}
	})
	t.Run("KindMismatch", func(t *testing.T) {
		if boolexpr.Similar(boolexpr.Or(a, b), boolexpr.And(a, b)) {
			t.Fatal("expected false")
		}
	})
	t.Run("ArityMismatch", func(t *testing.T) {
		if boolexpr.Similar(boolexpr.Or(a, b), boolexpr.Or(a, b, c)) {
			t.Fatal("expected false")
		}
	})
}

func TestBoolExpr_RefCount(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b := reg.Literal(1), reg.Literal(2)
	or := boolexpr.Or(a, b)
	or.IncRef()
	or.DecRef()
	or.DecRef()

	t.Run("DoubleRelease", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		or.DecRef()
	})
}

func TestSupport(t *testing.T) {
	reg := boolexpr.NewRegistry()
	a, b, c := reg.Literal(1), reg.Literal(-2), reg.Literal(7)
	x := boolexpr.Or(boolexpr.And(a, b), c, b)
	if diff := cmp.Diff([]int{1, 2, 7}, boolexpr.Support(x)); diff != "" {
		t.Fatal(diff)
	}
}
