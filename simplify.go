package boolexpr

// isComplement returns true if a and b are cheap complements of one another.
func isComplement(a, b *BoolExpr) bool {
	return a.complement() == b || b.complement() == a
}

// Simplify returns the canonical fixed point of the algebraic reduction
// rules, as a new reference. A node already marked simple returns
// immediately. Children are simplified first, then the per-kind rule runs on
// the rebuilt operator.
func (x *BoolExpr) Simplify() *BoolExpr {
	if x.flags&FlagSimple != 0 {
		return x.IncRef()
	}
	t := transform(x, (*BoolExpr).Simplify)
	defer t.DecRef()

	var r *BoolExpr
	switch t.kind {
	case KindOr, KindAnd:
		as := newOrAndArgSet(t.kind)
		for _, arg := range t.args {
			as.insert(arg)
		}
		r = as.reduce()
	case KindXor:
		as := newXorArgSet()
		for _, arg := range t.args {
			as.insert(arg)
		}
		r = as.reduce()
	case KindEqual:
		as := newEqualArgSet()
		for _, arg := range t.args {
			as.insert(arg)
		}
		r = as.reduce()
	case KindNot:
		r = Not(t.args[0])
	case KindImplies:
		r = simplifyImplies(t.args[0], t.args[1])
	case KindIte:
		r = simplifyIte(t.args[0], t.args[1], t.args[2])
	default:
		// Atoms are born simple and never reach this point.
		panic("unreachable")
	}
	markFlags(r, FlagSimple)
	return r
}

func simplifyImplies(p, q *BoolExpr) *BoolExpr {
	switch {
	case p == Zero || q == One:
		return One.IncRef()
	case p == One:
		return q.IncRef()
	case q == Zero:
		return Not(p)
	case p == q:
		return One.IncRef()
	case isComplement(p, q):
		// p -> ~p reduces to ~p.
		return q.IncRef()
	default:
		return newOpNode(KindImplies, []*BoolExpr{p, q})
	}
}

func simplifyIte(s, d1, d0 *BoolExpr) *BoolExpr {
	switch {
	case s == Zero:
		return d0.IncRef()
	case s == One:
		return d1.IncRef()
	case d1 == d0:
		return d1.IncRef()
	case d1 == One && d0 == Zero:
		return s.IncRef()
	case d1 == Zero && d0 == One:
		return Not(s)
	case d1 == One:
		return Or(s, d0)
	case d1 == Zero:
		ns := Not(s)
		defer ns.DecRef()
		return And(ns, d0)
	case d0 == One:
		ns := Not(s)
		defer ns.DecRef()
		return Or(ns, d1)
	case d0 == Zero:
		return And(s, d1)
	case s == d1:
		// ite(s, s, d0) = s | (~s & d0) = s | d0
		return Or(s, d0)
	case s == d0:
		// ite(s, d1, s) = (s & d1) | (~s & s) = s & d1
		return And(s, d1)
	default:
		return newOpNode(KindIte, []*BoolExpr{s, d1, d0})
	}
}

// PushDownNot distributes Not nodes through Or and And by De Morgan's laws
// and through Ite by negating both branches, recursively. All other kinds
// pass through untouched.
func (x *BoolExpr) PushDownNot() *BoolExpr {
	if x.kind.IsAtom() {
		return x.IncRef()
	}
	if x.kind == KindNot {
		y := x.args[0]
		switch y.kind {
		case KindOr, KindAnd:
			negs := make([]*BoolExpr, len(y.args))
			for i, arg := range y.args {
				negs[i] = Not(arg)
			}
			var node *BoolExpr
			if y.kind == KindOr {
				node = And(negs...)
			} else {
				node = Or(negs...)
			}
			for _, neg := range negs {
				neg.DecRef()
			}
			r := node.PushDownNot()
			node.DecRef()
			return r
		case KindIte:
			nd1 := Not(y.args[1])
			nd0 := Not(y.args[2])
			node := Ite(y.args[0], nd1, nd0)
			nd1.DecRef()
			nd0.DecRef()
			r := node.PushDownNot()
			node.DecRef()
			return r
		}
	}
	return transform(x, (*BoolExpr).PushDownNot)
}
