package boolexpr

// Registry interns the literal nodes of one universe of variables. Two
// requests for the same nonzero identifier always return the same node, so
// pointer identity doubles as value identity for literals. A registry is
// caller owned and passed to every literal construction; independent
// registries describe independent universes and their literals must not be
// mixed in one expression.
type Registry struct {
	lits []*BoolExpr
}

// NewRegistry returns an empty literal registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// uniqid2index maps a signed nonzero identifier to a dense table index,
// interleaving each variable with its complement so that the pair stays
// adjacent: 1 -> 0, -1 -> 1, 2 -> 2, -2 -> 3, ...
func uniqid2index(uniqid int) int {
	if uniqid > 0 {
		return 2*uniqid - 2
	}
	return -2*uniqid - 1
}

// Literal returns a new reference to the canonical literal node for uniqid.
// Positive identifiers name variables, negative identifiers their
// complements. A zero identifier is a caller bug and panics.
func (r *Registry) Literal(uniqid int) *BoolExpr {
	return r.lit(uniqid).IncRef()
}

// lit returns the interned literal without taking a reference, creating it on
// first request. The registry keeps one reference to every stored literal.
func (r *Registry) lit(uniqid int) *BoolExpr {
	assert(uniqid != 0, "Literal: zero uniqid")
	idx := uniqid2index(uniqid)
	if idx >= len(r.lits) {
		grown := make([]*BoolExpr, idx+1)
		copy(grown, r.lits)
		r.lits = grown
	}
	if r.lits[idx] == nil {
		kind := KindVar
		if uniqid < 0 {
			kind = KindComp
		}
		r.lits[idx] = newAtom(kind, uniqid, r)
	}
	return r.lits[idx]
}

// Len returns the number of interned literals.
func (r *Registry) Len() int {
	n := 0
	for _, lit := range r.lits {
		if lit != nil {
			n++
		}
	}
	return n
}

// Clear releases the registry's references to all interned literals. Literals
// still referenced elsewhere stay valid; the registry itself is empty again.
func (r *Registry) Clear() {
	for _, lit := range r.lits {
		if lit != nil {
			lit.DecRef()
		}
	}
	r.lits = nil
}
