package boolexpr

// Compose substitutes sub-expressions for variables. The mapping is keyed by
// Var nodes; a Comp node is replaced by the negation of its variable's
// mapping. Unmapped literals and constants pass through, and operators are
// rebuilt only if a child actually changed.
func (x *BoolExpr) Compose(m *Dict) *BoolExpr {
	switch x.kind {
	case KindZero, KindOne, KindLogical, KindIllogical:
		return x.IncRef()
	case KindVar:
		if v, ok := m.Get(x); ok {
			return v.IncRef()
		}
		return x.IncRef()
	case KindComp:
		if v, ok := m.Get(x.reg.lit(-x.uniqid)); ok {
			return Not(v)
		}
		return x.IncRef()
	default:
		return transform(x, func(c *BoolExpr) *BoolExpr {
			return c.Compose(m)
		})
	}
}

// Restrict substitutes constants for variables and simplifies the result.
func (x *BoolExpr) Restrict(m *Dict) *BoolExpr {
	c := x.Compose(m)
	r := c.Simplify()
	c.DecRef()
	return r
}
