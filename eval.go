package boolexpr

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"
)

// Assignment is a persistent mapping from variables to truth values. With
// returns an extended assignment and leaves the receiver untouched, so a
// caller enumerating a cube of assignments can branch without copying.
type Assignment struct {
	m *immutable.SortedMap
}

// NewAssignment returns an empty assignment.
func NewAssignment() Assignment {
	return Assignment{m: immutable.NewSortedMap(&intComparer{})}
}

// With returns a copy of a that binds the variable v to value. v must be a
// Var node.
func (a Assignment) With(v *BoolExpr, value bool) Assignment {
	assert(v.kind == KindVar, "Assignment.With: non-variable node: %s", v.kind)
	return Assignment{m: a.m.Set(v.uniqid, value)}
}

// WithID returns a copy of a that binds the variable with the given positive
// identifier to value.
func (a Assignment) WithID(uniqid int, value bool) Assignment {
	assert(uniqid > 0, "Assignment.WithID: non-positive uniqid: %d", uniqid)
	return Assignment{m: a.m.Set(uniqid, value)}
}

// Value returns the binding for the variable with the given positive
// identifier.
func (a Assignment) Value(uniqid int) (bool, bool) {
	v, ok := a.m.Get(uniqid)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

// intComparer compares two ints. Implements immutable.Comparer.
type intComparer struct{}

func (c *intComparer) Compare(a, b interface{}) int {
	if i, j := a.(int), b.(int); i < j {
		return -1
	} else if i > j {
		return 1
	}
	return 0
}

// Eval evaluates x under the assignment a. It returns ErrUnboundVariable if a
// variable of x has no binding and ErrIndeterminate for the Logical and
// Illogical constants.
func Eval(x *BoolExpr, a Assignment) (bool, error) {
	switch x.kind {
	case KindZero:
		return false, nil
	case KindOne:
		return true, nil
	case KindLogical, KindIllogical:
		return false, ErrIndeterminate
	case KindVar:
		v, ok := a.Value(x.uniqid)
		if !ok {
			return false, ErrUnboundVariable
		}
		return v, nil
	case KindComp:
		v, ok := a.Value(-x.uniqid)
		if !ok {
			return false, ErrUnboundVariable
		}
		return !v, nil
	case KindOr:
		for _, arg := range x.args {
			v, err := Eval(arg, a)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	case KindAnd:
		for _, arg := range x.args {
			v, err := Eval(arg, a)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case KindXor:
		parity := false
		for _, arg := range x.args {
			v, err := Eval(arg, a)
			if err != nil {
				return false, err
			}
			if v {
				parity = !parity
			}
		}
		return parity, nil
	case KindEqual:
		if len(x.args) == 0 {
			return true, nil
		}
		first, err := Eval(x.args[0], a)
		if err != nil {
			return false, err
		}
		for _, arg := range x.args[1:] {
			v, err := Eval(arg, a)
			if err != nil {
				return false, err
			}
			if v != first {
				return false, nil
			}
		}
		return true, nil
	case KindNot:
		v, err := Eval(x.args[0], a)
		return !v, err
	case KindImplies:
		p, err := Eval(x.args[0], a)
		if err != nil {
			return false, err
		}
		q, err := Eval(x.args[1], a)
		if err != nil {
			return false, err
		}
		return !p || q, nil
	case KindIte:
		s, err := Eval(x.args[0], a)
		if err != nil {
			return false, err
		}
		if s {
			return Eval(x.args[1], a)
		}
		return Eval(x.args[2], a)
	default:
		panic("unreachable")
	}
}

// Support returns the sorted positive identifiers of the variables x depends
// on, each reported once.
func Support(x *BoolExpr) []int {
	seen := map[int]struct{}{}
	it := x.Iterate()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		if node.IsLiteral() {
			id := node.uniqid
			if id < 0 {
				id = -id
			}
			seen[id] = struct{}{}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
