package boolexpr

import (
	"bytes"
	"fmt"
	"sync/atomic"
)

// BoolExpr is a node of a Boolean expression DAG. The kind of a node is
// immutable after creation. Nodes are shared freely between parents; sharing
// is tracked by a reference count. A parent operator owns one counted
// reference to each of its children for as long as the parent is live.
type BoolExpr struct {
	id     uint64 // allocation identity, used by Set/Dict hashing
	kind   Kind
	flags  uint8
	refs   int32
	uniqid int       // literals only, nonzero
	reg    *Registry // literals only
	args   []*BoolExpr
}

// nextID assigns a process-unique identity to every allocated node.
var nextID uint64

// newAtom returns a constant or literal node holding one reference.
// Atoms are born simplified and in negation normal form.
func newAtom(kind Kind, uniqid int, reg *Registry) *BoolExpr {
	return &BoolExpr{
		id:     atomic.AddUint64(&nextID, 1),
		kind:   kind,
		flags:  FlagSimple | FlagNNF,
		refs:   1,
		uniqid: uniqid,
		reg:    reg,
	}
}

// newOpNode returns an operator node holding one reference. The node takes a
// counted reference to each argument; the caller keeps its own references.
func newOpNode(kind Kind, args []*BoolExpr) *BoolExpr {
	assert(kind.IsOperator(), "newOpNode: non-operator kind: %s", kind)
	owned := make([]*BoolExpr, len(args))
	for i, arg := range args {
		owned[i] = arg.IncRef()
	}
	return &BoolExpr{
		id:   atomic.AddUint64(&nextID, 1),
		kind: kind,
		refs: 1,
		args: owned,
	}
}

// Kind returns the kind of the node.
func (x *BoolExpr) Kind() Kind { return x.kind }

// UniqID returns the signed identifier of a literal node. It panics for any
// other kind.
func (x *BoolExpr) UniqID() int {
	assert(x.kind.IsLiteral(), "UniqID: non-literal kind: %s", x.kind)
	return x.uniqid
}

// Args returns the ordered children of an operator node. The returned slice
// must not be modified.
func (x *BoolExpr) Args() []*BoolExpr { return x.args }

// IsConstant returns true for the Zero, One, Logical and Illogical singletons.
func (x *BoolExpr) IsConstant() bool { return x.kind.IsConstant() }

// IsLiteral returns true for Var and Comp nodes.
func (x *BoolExpr) IsLiteral() bool { return x.kind.IsLiteral() }

// IsAtom returns true for constants and literals.
func (x *BoolExpr) IsAtom() bool { return x.kind.IsAtom() }

// IncRef increments the reference count of x and returns x so that calls can
// be chained. It panics if the count was not positive.
func (x *BoolExpr) IncRef() *BoolExpr {
	n := atomic.AddInt32(&x.refs, 1)
	assert(n > 1, "IncRef: node %s had refcount %d", x.kind, n-1)
	return x
}

// DecRef releases one reference to x. When the last reference is released the
// node gives up its references to its children. Releasing a constant's last
// reference, or a reference that was never held, is a caller bug and panics.
func (x *BoolExpr) DecRef() {
	n := atomic.AddInt32(&x.refs, -1)
	assert(n >= 0, "DecRef: node %s refcount below zero", x.kind)
	if n == 0 {
		assert(!x.kind.IsConstant(), "DecRef: constant %s dropped to zero", x.kind)
		for _, arg := range x.args {
			arg.DecRef()
		}
		x.args = nil
	}
}

// complement returns the canonical complement of x when it is cheap to
// obtain: the opposite literal for Var/Comp, the child of a Not node. It
// returns nil otherwise. No reference is taken.
func (x *BoolExpr) complement() *BoolExpr {
	switch x.kind {
	case KindVar, KindComp:
		return x.reg.lit(-x.uniqid)
	case KindNot:
		return x.args[0]
	default:
		return nil
	}
}

// Depth returns the number of operator levels below x. Atoms have depth zero.
// Not nodes are complement markers and do not add a level.
func (x *BoolExpr) Depth() int {
	if x.kind == KindNot {
		return x.args[0].Depth()
	}
	if x.kind.IsAtom() {
		return 0
	}
	max := 0
	for _, arg := range x.args {
		if d := arg.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Size returns the number of atom occurrences plus the number of operator
// occurrences in the tree rooted at x.
func (x *BoolExpr) Size() int {
	return x.AtomCount() + x.OpCount()
}

// AtomCount returns the number of constant and literal occurrences in x.
func (x *BoolExpr) AtomCount() int {
	if x.kind.IsAtom() {
		return 1
	}
	n := 0
	for _, arg := range x.args {
		n += arg.AtomCount()
	}
	return n
}

// OpCount returns the number of operator occurrences in x. Not nodes are
// complement markers and are not counted.
func (x *BoolExpr) OpCount() int {
	if x.kind.IsAtom() {
		return 0
	}
	n := 0
	if x.kind != KindNot {
		n = 1
	}
	for _, arg := range x.args {
		n += arg.OpCount()
	}
	return n
}

// isClause returns true if x is an operator of the given kind whose every
// child is a literal.
func (x *BoolExpr) isClause(kind Kind) bool {
	if x.kind != kind {
		return false
	}
	for _, arg := range x.args {
		if !arg.IsLiteral() {
			return false
		}
	}
	return true
}

// IsDNF returns true if x is in disjunctive normal form: a constant Zero or
// One, a literal, a single clause, or an Or of literals and And clauses.
func (x *BoolExpr) IsDNF() bool {
	switch {
	case x.kind == KindZero || x.kind == KindOne:
		return true
	case x.IsLiteral():
		return true
	case x.isClause(KindAnd) || x.isClause(KindOr):
		return true
	case x.kind == KindOr:
		for _, arg := range x.args {
			if !arg.IsLiteral() && !arg.isClause(KindAnd) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsCNF returns true if x is in conjunctive normal form: a constant Zero or
// One, a literal, a single clause, or an And of literals and Or clauses.
func (x *BoolExpr) IsCNF() bool {
	switch {
	case x.kind == KindZero || x.kind == KindOne:
		return true
	case x.IsLiteral():
		return true
	case x.isClause(KindAnd) || x.isClause(KindOr):
		return true
	case x.kind == KindAnd:
		for _, arg := range x.args {
			if !arg.IsLiteral() && !arg.isClause(KindOr) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns the s-expression representation of the node.
func (x *BoolExpr) String() string {
	switch x.kind {
	case KindZero:
		return "0"
	case KindOne:
		return "1"
	case KindLogical:
		return "X"
	case KindIllogical:
		return "?"
	case KindVar:
		return fmt.Sprintf("x%d", x.uniqid)
	case KindComp:
		return fmt.Sprintf("~x%d", -x.uniqid)
	default:
		var buf bytes.Buffer
		buf.WriteRune('(')
		buf.WriteString(x.kind.String())
		for _, arg := range x.args {
			buf.WriteRune(' ')
			buf.WriteString(arg.String())
		}
		buf.WriteRune(')')
		return buf.String()
	}
}

// Similar reports whether a and b are structurally similar: the same node, or
// operators of the same kind whose child multisets match pairwise under
// Similar, regardless of order.
func Similar(a, b *BoolExpr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	if a.kind.IsLiteral() {
		return a.uniqid == b.uniqid
	}
	if a.kind.IsConstant() {
		return false // constants are singletons, a != b means distinct
	}
	if len(a.args) != len(b.args) {
		return false
	}
	used := make([]bool, len(b.args))
	for _, aa := range a.args {
		found := false
		for j, bb := range b.args {
			if !used[j] && Similar(aa, bb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Iter is a restartable post-order iterator over a node and its descendants:
// children are visited before parents, left to right among siblings, and the
// root comes last. Every occurrence is visited exactly once.
type Iter struct {
	stack []iterFrame
}

type iterFrame struct {
	node *BoolExpr
	next int // index of the next child to descend into
}

// Iterate returns a new post-order iterator rooted at x. Re-create the
// iterator to restart the sequence.
func (x *BoolExpr) Iterate() *Iter {
	return &Iter{stack: []iterFrame{{node: x}}}
}

// Next returns the next node of the sequence, or nil and false when the
// sequence is exhausted.
func (it *Iter) Next() (*BoolExpr, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.next < len(top.node.args) {
			child := top.node.args[top.next]
			top.next++
			it.stack = append(it.stack, iterFrame{node: child})
			continue
		}
		node := top.node
		it.stack = it.stack[:len(it.stack)-1]
		return node, true
	}
	return nil, false
}
