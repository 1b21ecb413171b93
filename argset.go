package boolexpr

// The argset accumulators fold a multiset of operands into canonical form
// while an N-ary operator is being assembled. They are transient: seed one
// with insert, consume it exactly once with reduce. The reduction steps must
// run in order (dominator and annihilation checks, then associative
// flattening, then idempotent insertion) because the later steps assume the
// earlier ones already eliminated constants and complementary pairs.

// containsComplement returns true if set holds the complement of x: the
// opposite literal, the child of a Not, or a Not node wrapping x.
func containsComplement(set *Set, x *BoolExpr) bool {
	if c := x.complement(); c != nil {
		return set.Contains(c)
	}
	found := false
	set.Range(func(m *BoolExpr) bool {
		if m.kind == KindNot && m.args[0] == x {
			found = true
		}
		return !found
	})
	return found
}

// complementMember returns the member of set that is the complement of x, or
// nil if there is none.
func complementMember(set *Set, x *BoolExpr) *BoolExpr {
	if c := x.complement(); c != nil {
		if set.Contains(c) {
			return c
		}
		return nil
	}
	var found *BoolExpr
	set.Range(func(m *BoolExpr) bool {
		if m.kind == KindNot && m.args[0] == x {
			found = m
		}
		return found == nil
	})
	return found
}

// orAndArgSet accumulates the operands of an Or or And node. min holds while
// the accumulated value still equals the identity constant; max holds once
// the dominator constant has been forced.
type orAndArgSet struct {
	kind Kind
	min  bool
	max  bool
	set  *Set
}

func newOrAndArgSet(kind Kind) *orAndArgSet {
	assert(kind == KindOr || kind == KindAnd, "argset: bad or/and kind: %s", kind)
	return &orAndArgSet{kind: kind, min: true, set: NewSet()}
}

func (as *orAndArgSet) insert(x *BoolExpr) {
	if as.max || x == as.kind.identity() {
		return
	}
	// Annihilation wins over everything accumulated so far.
	if x == as.kind.dominator() || containsComplement(as.set, x) {
		as.min, as.max = false, true
		as.set.Clear()
		return
	}
	// Associative flattening: Or(a, Or(b, c)) = Or(a, b, c).
	if x.kind == as.kind {
		for _, arg := range x.args {
			as.insert(arg)
			if as.max {
				return
			}
		}
		return
	}
	as.min = false
	as.set.Insert(x)
}

func (as *orAndArgSet) reduce() *BoolExpr {
	defer as.set.Clear()
	if as.max {
		return as.kind.dominator().IncRef()
	}
	if as.min {
		return as.kind.identity().IncRef()
	}
	if as.set.Len() == 1 {
		return as.set.items()[0].IncRef()
	}
	return newOpNode(as.kind, as.set.items())
}

// xorArgSet accumulates the operands of an Xor node. parity is true while an
// even number of inversions has been absorbed; constants and annihilating
// complementary pairs fold into it.
type xorArgSet struct {
	parity bool
	set    *Set
}

func newXorArgSet() *xorArgSet {
	return &xorArgSet{parity: true, set: NewSet()}
}

func (as *xorArgSet) insert(x *BoolExpr) {
	if x == Zero {
		return
	}
	if x == One {
		as.parity = !as.parity
		return
	}
	// Xor(y, ~y) = 1, folded into the parity.
	if c := complementMember(as.set, x); c != nil {
		as.set.Remove(c)
		as.parity = !as.parity
		return
	}
	// Xor(y, y) = 0.
	if as.set.Contains(x) {
		as.set.Remove(x)
		return
	}
	if x.kind == KindXor {
		for _, arg := range x.args {
			as.insert(arg)
		}
		return
	}
	// Xnor flattens like Xor with one more inversion.
	if x.kind == KindNot && x.args[0].kind == KindXor {
		as.parity = !as.parity
		for _, arg := range x.args[0].args {
			as.insert(arg)
		}
		return
	}
	as.set.Insert(x)
}

func (as *xorArgSet) reduce() *BoolExpr {
	defer as.set.Clear()
	switch as.set.Len() {
	case 0:
		if as.parity {
			return Zero.IncRef()
		}
		return One.IncRef()
	case 1:
		survivor := as.set.items()[0]
		if as.parity {
			return survivor.IncRef()
		}
		return Not(survivor)
	default:
		node := newOpNode(KindXor, as.set.items())
		if as.parity {
			return node
		}
		neg := Not(node)
		node.DecRef()
		return neg
	}
}

// equalArgSet accumulates the operands of an Equal node. zero and one record
// which constants have been absorbed; both at once encode a contradiction.
type equalArgSet struct {
	zero bool
	one  bool
	set  *Set
}

func newEqualArgSet() *equalArgSet {
	return &equalArgSet{set: NewSet()}
}

func (as *equalArgSet) insert(x *BoolExpr) {
	if x == Zero {
		if as.one {
			as.set.Clear()
		}
		as.zero = true
		return
	}
	if x == One {
		if as.zero {
			as.set.Clear()
		}
		as.one = true
		return
	}
	// Equal(y, ~y) = 0, encoded as both constants forced.
	if x.IsLiteral() && as.set.Contains(x.complement()) {
		as.zero, as.one = true, true
		as.set.Clear()
		return
	}
	as.set.Insert(x)
}

func (as *equalArgSet) reduce() *BoolExpr {
	defer as.set.Clear()
	n := as.set.Len()
	total := n
	if as.zero {
		total++
	}
	if as.one {
		total++
	}
	switch {
	case as.zero && as.one:
		return Zero.IncRef()
	case total < 2:
		return One.IncRef()
	case as.zero && n == 1:
		return Not(as.set.items()[0])
	case as.one && n == 1:
		return as.set.items()[0].IncRef()
	case as.zero:
		or := Or(as.set.items()...)
		neg := Not(or)
		or.DecRef()
		return neg
	case as.one:
		return And(as.set.items()...)
	default:
		return newOpNode(KindEqual, as.set.items())
	}
}

// Or returns the disjunction of xs, reduced to canonical form. Or of nothing
// is Zero; Or of one argument is that argument.
func Or(xs ...*BoolExpr) *BoolExpr {
	as := newOrAndArgSet(KindOr)
	for _, x := range xs {
		as.insert(x)
	}
	return as.reduce()
}

// And returns the conjunction of xs, reduced to canonical form. And of
// nothing is One; And of one argument is that argument.
func And(xs ...*BoolExpr) *BoolExpr {
	as := newOrAndArgSet(KindAnd)
	for _, x := range xs {
		as.insert(x)
	}
	return as.reduce()
}

// Xor returns the exclusive disjunction of xs, reduced to canonical form.
func Xor(xs ...*BoolExpr) *BoolExpr {
	as := newXorArgSet()
	for _, x := range xs {
		as.insert(x)
	}
	return as.reduce()
}

// Equal returns the all-equal comparison of xs, reduced to canonical form.
func Equal(xs ...*BoolExpr) *BoolExpr {
	as := newEqualArgSet()
	for _, x := range xs {
		as.insert(x)
	}
	return as.reduce()
}

// Nor returns the negated disjunction of xs.
func Nor(xs ...*BoolExpr) *BoolExpr {
	or := Or(xs...)
	defer or.DecRef()
	return Not(or)
}

// Nand returns the negated conjunction of xs.
func Nand(xs ...*BoolExpr) *BoolExpr {
	and := And(xs...)
	defer and.DecRef()
	return Not(and)
}

// Xnor returns the negated exclusive disjunction of xs.
func Xnor(xs ...*BoolExpr) *BoolExpr {
	xor := Xor(xs...)
	defer xor.DecRef()
	return Not(xor)
}

// Unequal returns the negated all-equal comparison of xs.
func Unequal(xs ...*BoolExpr) *BoolExpr {
	eq := Equal(xs...)
	defer eq.DecRef()
	return Not(eq)
}

// Not returns the negation of x. Constants map to their fixed images,
// literals to their interned complement, and double negation collapses; only
// operator arguments materialize a Not node.
func Not(x *BoolExpr) *BoolExpr {
	switch x.kind {
	case KindZero:
		return One.IncRef()
	case KindOne:
		return Zero.IncRef()
	case KindLogical:
		return Logical.IncRef()
	case KindIllogical:
		return Illogical.IncRef()
	case KindVar, KindComp:
		return x.reg.Literal(-x.uniqid)
	case KindNot:
		return x.args[0].IncRef()
	default:
		return newOpNode(KindNot, []*BoolExpr{x})
	}
}

// Implies returns the implication p -> q. Constant folding happens in
// Simplify.
func Implies(p, q *BoolExpr) *BoolExpr {
	return newOpNode(KindImplies, []*BoolExpr{p, q})
}

// Ite returns the if-then-else of the selector s and the branches d1 and d0.
// Constant folding happens in Simplify.
func Ite(s, d1, d0 *BoolExpr) *BoolExpr {
	return newOpNode(KindIte, []*BoolExpr{s, d1, d0})
}
