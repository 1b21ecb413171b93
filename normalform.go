package boolexpr

import "golang.org/x/exp/slices"

// ToBinary converts every commutative N-ary operator with more than two
// arguments into a balanced binary tree of the same operator. Equal with more
// than two arguments becomes the conjunction of all pairwise comparisons.
// Fixed-arity operators pass through unchanged.
func (x *BoolExpr) ToBinary() *BoolExpr {
	if x.kind.IsAtom() {
		return x.IncRef()
	}
	t := transform(x, (*BoolExpr).ToBinary)
	switch t.kind {
	case KindOr, KindAnd, KindXor:
		if len(t.args) <= 2 {
			return t
		}
		r := binify(t.kind, t.args)
		t.DecRef()
		return r
	case KindEqual:
		if len(t.args) <= 2 {
			return t
		}
		// Equal(a, b, c) = Equal(a, b) & Equal(a, c) & Equal(b, c)
		var pairs []*BoolExpr
		for i := 0; i < len(t.args); i++ {
			for j := i + 1; j < len(t.args); j++ {
				pairs = append(pairs, newOpNode(KindEqual, []*BoolExpr{t.args[i], t.args[j]}))
			}
		}
		r := binify(KindAnd, pairs)
		for _, pair := range pairs {
			pair.DecRef()
		}
		t.DecRef()
		return r
	default:
		return t
	}
}

// binify halves args into a balanced binary tree of kind.
func binify(kind Kind, args []*BoolExpr) *BoolExpr {
	switch len(args) {
	case 1:
		return args[0].IncRef()
	case 2:
		return newOpNode(kind, args)
	default:
		mid := len(args) / 2
		lo := binify(kind, args[:mid])
		hi := binify(kind, args[mid:])
		node := newOpNode(kind, []*BoolExpr{lo, hi})
		lo.DecRef()
		hi.DecRef()
		return node
	}
}

// ToNNF returns the negation normal form of x: only Or, And and literals
// remain. The result is simplified and marked with both flags.
func (x *BoolExpr) ToNNF() *BoolExpr {
	if x.flags&(FlagNNF|FlagSimple) == FlagNNF|FlagSimple {
		return x.IncRef()
	}
	n := nnfify(x)
	p := n.PushDownNot()
	n.DecRef()
	r := p.Simplify()
	p.DecRef()
	markFlags(r, FlagNNF|FlagSimple)
	return r
}

// nnfify rewrites Xor, Equal, Implies and Ite into Or/And/Not form, bottom
// up. Children are converted first, so every expansion sees NNF operands.
func nnfify(x *BoolExpr) *BoolExpr {
	if x.kind.IsAtom() {
		return x.IncRef()
	}
	switch x.kind {
	case KindOr, KindAnd:
		return transform(x, nnfify)
	case KindNot:
		c := nnfify(x.args[0])
		r := Not(c)
		c.DecRef()
		return r
	case KindXor:
		args := nnfifyAll(x.args)
		acc := args[0].IncRef()
		for _, arg := range args[1:] {
			next := expandXor2(acc, arg)
			acc.DecRef()
			acc = next
		}
		releaseAll(args)
		return acc
	case KindEqual:
		// Equal(a, b, ...) = (~a & ~b & ...) | (a & b & ...)
		args := nnfifyAll(x.args)
		negs := make([]*BoolExpr, len(args))
		for i, arg := range args {
			negs[i] = Not(arg)
		}
		allZero := And(negs...)
		allOne := And(args...)
		r := Or(allZero, allOne)
		allZero.DecRef()
		allOne.DecRef()
		releaseAll(negs)
		releaseAll(args)
		return r
	case KindImplies:
		p := nnfify(x.args[0])
		q := nnfify(x.args[1])
		np := Not(p)
		r := Or(np, q)
		np.DecRef()
		p.DecRef()
		q.DecRef()
		return r
	case KindIte:
		s := nnfify(x.args[0])
		d1 := nnfify(x.args[1])
		d0 := nnfify(x.args[2])
		ns := Not(s)
		var r *BoolExpr
		if preferConjunctive(d1, d0) {
			// (~s | d1) & (s | d0)
			c1 := Or(ns, d1)
			c2 := Or(s, d0)
			r = And(c1, c2)
			c1.DecRef()
			c2.DecRef()
		} else {
			// (s & d1) | (~s & d0)
			c1 := And(s, d1)
			c2 := And(ns, d0)
			r = Or(c1, c2)
			c1.DecRef()
			c2.DecRef()
		}
		ns.DecRef()
		s.DecRef()
		d1.DecRef()
		d0.DecRef()
		return r
	default:
		panic("unreachable")
	}
}

func nnfifyAll(args []*BoolExpr) []*BoolExpr {
	out := make([]*BoolExpr, len(args))
	for i, arg := range args {
		out[i] = nnfify(arg)
	}
	return out
}

func releaseAll(args []*BoolExpr) {
	for _, arg := range args {
		arg.DecRef()
	}
}

// preferConjunctive picks the expansion whose top-level operator merges with
// the majority of the operands, so fewer negations need pushing afterwards.
func preferConjunctive(args ...*BoolExpr) bool {
	ors, ands := 0, 0
	for _, arg := range args {
		switch arg.kind {
		case KindOr:
			ors++
		case KindAnd:
			ands++
		}
	}
	return ors > ands
}

// expandXor2 expands a two-argument Xor over NNF operands.
func expandXor2(a, b *BoolExpr) *BoolExpr {
	na := Not(a)
	nb := Not(b)
	var r *BoolExpr
	if preferConjunctive(a, b) {
		// (a | b) & (~a | ~b)
		c1 := Or(a, b)
		c2 := Or(na, nb)
		r = And(c1, c2)
		c1.DecRef()
		c2.DecRef()
	} else {
		// (a & ~b) | (~a & b)
		c1 := And(a, nb)
		c2 := And(na, b)
		r = Or(c1, c2)
		c1.DecRef()
		c2.DecRef()
	}
	na.DecRef()
	nb.DecRef()
	return r
}

// ToDNF returns the disjunctive normal form of x: an Or of And clauses, a
// single clause, a literal, or a constant.
func (x *BoolExpr) ToDNF() *BoolExpr {
	n := x.ToNNF()
	r := flattenTo(n, KindOr)
	n.DecRef()
	markFlags(r, FlagNNF|FlagSimple)
	return r
}

// ToCNF returns the conjunctive normal form of x: an And of Or clauses, a
// single clause, a literal, or a constant.
func (x *BoolExpr) ToCNF() *BoolExpr {
	n := x.ToNNF()
	r := flattenTo(n, KindAnd)
	n.DecRef()
	markFlags(r, FlagNNF|FlagSimple)
	return r
}

// flattenTo converts an NNF expression into outer-of-clauses form. Children
// are converted first; a node of the target kind then only needs absorption,
// while a node of the dual kind is distributed over its children.
func flattenTo(x *BoolExpr, outer Kind) *BoolExpr {
	if x.kind.IsAtom() {
		return x.IncRef()
	}
	t0 := transform(x, func(c *BoolExpr) *BoolExpr {
		return flattenTo(c, outer)
	})
	// Merge same-kind children reintroduced by the raw rebuild.
	t := t0.Simplify()
	t0.DecRef()

	var r *BoolExpr
	switch {
	case t.kind.IsAtom() || t.isClause(KindAnd) || t.isClause(KindOr):
		return t
	case t.kind == outer:
		r = absorb(t, outer)
	default:
		r = distribute(t, outer)
	}
	t.DecRef()
	markFlags(r, FlagSimple)
	return r
}

// distribute takes a node of the dual of outer whose children are literals,
// clauses, and outer-kind nodes, and expands the cartesian product of the
// children into outer-of-clauses form.
func distribute(t *BoolExpr, outer Kind) *BoolExpr {
	factors := make([][]*BoolExpr, len(t.args))
	for i, arg := range t.args {
		if arg.kind == outer {
			factors[i] = arg.args
		} else {
			factors[i] = []*BoolExpr{arg}
		}
	}

	products := [][]*BoolExpr{nil}
	for _, factor := range factors {
		next := make([][]*BoolExpr, 0, len(products)*len(factor))
		for _, p := range products {
			for _, f := range factor {
				combo := make([]*BoolExpr, len(p), len(p)+1)
				copy(combo, p)
				next = append(next, append(combo, f))
			}
		}
		products = next
	}

	clauses := make([]*BoolExpr, len(products))
	for i, p := range products {
		if outer == KindOr {
			clauses[i] = And(p...)
		} else {
			clauses[i] = Or(p...)
		}
	}
	var combined *BoolExpr
	if outer == KindOr {
		combined = Or(clauses...)
	} else {
		combined = And(clauses...)
	}
	releaseAll(clauses)

	if combined.kind != outer {
		return combined
	}
	r := absorb(combined, outer)
	combined.DecRef()
	return r
}

// absorb drops every clause of t whose literal set is a superset of another
// surviving clause's, then rebuilds the node from the survivors.
func absorb(t *BoolExpr, outer Kind) *BoolExpr {
	lits := make([][]int, len(t.args))
	for i, arg := range t.args {
		lits[i] = clauseLits(arg)
	}

	keep := make([]bool, len(t.args))
	for i := range keep {
		keep[i] = true
	}
	for i := range t.args {
		for j := range t.args {
			if i == j || !keep[j] {
				continue
			}
			switch subsetCompare(lits[i], lits[j]) {
			case cmpSuperset:
				keep[i] = false
			case cmpEqualSets:
				if j < i {
					keep[i] = false
				}
			}
			if !keep[i] {
				break
			}
		}
	}

	survivors := make([]*BoolExpr, 0, len(t.args))
	for i, arg := range t.args {
		if keep[i] {
			survivors = append(survivors, arg)
		}
	}
	if len(survivors) == len(t.args) {
		return t.IncRef()
	}
	if len(survivors) == 1 {
		return survivors[0].IncRef()
	}
	return newOpNode(outer, survivors)
}

// clauseLits returns the literal identifiers of a literal or clause, sorted
// with each variable adjacent to its complement.
func clauseLits(x *BoolExpr) []int {
	var ids []int
	if x.IsLiteral() {
		ids = []int{x.uniqid}
	} else {
		ids = make([]int, len(x.args))
		for i, arg := range x.args {
			ids[i] = arg.uniqid
		}
	}
	slices.SortFunc(ids, func(a, b int) int {
		return uniqid2index(a) - uniqid2index(b)
	})
	return ids
}

const (
	cmpEqualSets = iota
	cmpSubset
	cmpSuperset
	cmpIncomparable
)

// subsetCompare classifies two sorted literal lists as equal, subset,
// superset, or incomparable in one merge pass.
func subsetCompare(a, b []int) int {
	aExtra, bExtra := false, false
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ka, kb := uniqid2index(a[i]), uniqid2index(b[j])
		switch {
		case ka == kb:
			i++
			j++
		case ka < kb:
			aExtra = true
			i++
		default:
			bExtra = true
			j++
		}
	}
	if i < len(a) {
		aExtra = true
	}
	if j < len(b) {
		bExtra = true
	}
	switch {
	case !aExtra && !bExtra:
		return cmpEqualSets
	case !aExtra:
		return cmpSubset
	case !bExtra:
		return cmpSuperset
	default:
		return cmpIncomparable
	}
}

// CompleteSum returns the disjunction of all prime implicants of x, computed
// by recursive Shannon cofactoring. The result enumerates primes, not a
// minimal cover, and is exponential in the worst case.
func (x *BoolExpr) CompleteSum() *BoolExpr {
	dnf := x.ToDNF()
	r := completeSum(dnf)
	dnf.DecRef()
	return r
}

func completeSum(f *BoolExpr) *BoolExpr {
	if f.Depth() <= 1 {
		return f.IncRef()
	}

	// Split on the variable of the first literal of the first term.
	term := f
	if f.kind == KindOr {
		term = f.args[0]
	}
	lit := term
	if !lit.IsLiteral() {
		lit = term.args[0]
	}
	uniqid := lit.uniqid
	if uniqid < 0 {
		uniqid = -uniqid
	}
	v := lit.reg.Literal(uniqid)

	m0 := NewDict()
	m0.Insert(v, Zero)
	f0 := f.Restrict(m0)
	m0.Clear()
	m1 := NewDict()
	m1.Insert(v, One)
	f1 := f.Restrict(m1)
	m1.Clear()

	cs0 := completeSum(f0)
	cs1 := completeSum(f1)
	f0.DecRef()
	f1.DecRef()

	// (v | CS(f|v=0)) & (~v | CS(f|v=1)), reflattened to DNF.
	nv := Not(v)
	left := Or(v, cs0)
	right := Or(nv, cs1)
	cs0.DecRef()
	cs1.DecRef()
	nv.DecRef()
	prod := And(left, right)
	left.DecRef()
	right.DecRef()
	r := prod.ToDNF()
	prod.DecRef()
	v.DecRef()
	return r
}
