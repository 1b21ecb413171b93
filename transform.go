package boolexpr

// transform applies f to every child of the operator node x, where f returns
// a new reference. If no child changed, the original node is returned as a
// fresh reference and nothing is allocated, which preserves DAG sharing
// across no-op passes. Otherwise a raw node of the same kind is rebuilt from
// the new children; canonicalization is the caller's business.
func transform(x *BoolExpr, f func(*BoolExpr) *BoolExpr) *BoolExpr {
	args := make([]*BoolExpr, len(x.args))
	changed := false
	for i, arg := range x.args {
		args[i] = f(arg)
		if args[i] != arg {
			changed = true
		}
	}
	if !changed {
		for _, arg := range args {
			arg.DecRef()
		}
		return x.IncRef()
	}
	node := newOpNode(x.kind, args)
	for _, arg := range args {
		arg.DecRef()
	}
	return node
}

// markFlags sets flags on x and all its descendants. A subtree that already
// carries all requested flags is skipped: flags are monotonic, so such a
// subtree cannot contain an unmarked descendant.
func markFlags(x *BoolExpr, flags uint8) {
	if x.flags&flags == flags {
		return
	}
	x.flags |= flags
	for _, arg := range x.args {
		markFlags(arg, flags)
	}
}
