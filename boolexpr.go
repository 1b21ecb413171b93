// Package boolexpr implements a symbolic Boolean expression engine. It builds,
// canonicalizes, and rewrites Boolean formulas represented as a reference
// counted directed acyclic graph, and provides the normal form pipeline
// (Simplify, PushDownNot, ToBinary, ToNNF, ToDNF, ToCNF, CompleteSum) that
// downstream tools consume.
package boolexpr

import (
	"errors"
	"fmt"
)

// Kind identifies the variant of a node.
type Kind uint8

// Node kinds. Constants come first, then literals, then operators.
const (
	KindZero = Kind(iota)
	KindOne
	KindLogical
	KindIllogical
	KindComp
	KindVar
	KindOr
	KindAnd
	KindXor
	KindEqual
	KindNot
	KindImplies
	KindIte
)

var kindNames = [...]string{
	KindZero:      "zero",
	KindOne:       "one",
	KindLogical:   "logical",
	KindIllogical: "illogical",
	KindComp:      "comp",
	KindVar:       "var",
	KindOr:        "or",
	KindAnd:       "and",
	KindXor:       "xor",
	KindEqual:     "equal",
	KindNot:       "not",
	KindImplies:   "implies",
	KindIte:       "ite",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind<%d>", k)
}

// IsConstant returns true if k is one of the four constant kinds.
func (k Kind) IsConstant() bool { return k <= KindIllogical }

// IsLiteral returns true if k is a variable or a complemented variable.
func (k Kind) IsLiteral() bool { return k == KindComp || k == KindVar }

// IsAtom returns true if k is a constant or a literal.
func (k Kind) IsAtom() bool { return k <= KindVar }

// IsOperator returns true if k is an operator kind.
func (k Kind) IsOperator() bool { return k >= KindOr }

// dual returns the dual operator of an Or or And kind.
func (k Kind) dual() Kind {
	switch k {
	case KindOr:
		return KindAnd
	case KindAnd:
		return KindOr
	default:
		panic(fmt.Sprintf("dual: non-dualizable kind: %s", k))
	}
}

// identity returns the identity constant of an Or, And or Xor kind.
func (k Kind) identity() *BoolExpr {
	switch k {
	case KindOr, KindXor:
		return Zero
	case KindAnd:
		return One
	default:
		panic(fmt.Sprintf("identity: kind has no identity: %s", k))
	}
}

// dominator returns the dominator constant of an Or or And kind.
func (k Kind) dominator() *BoolExpr {
	switch k {
	case KindOr:
		return One
	case KindAnd:
		return Zero
	default:
		panic(fmt.Sprintf("dominator: kind has no dominator: %s", k))
	}
}

// Node flags. Flags are a cache, not semantics: once set on a node they hold
// for the entire subtree below it and are never cleared.
const (
	// FlagSimple marks a subtree that is the fixed point of Simplify.
	FlagSimple = uint8(1 << 0)

	// FlagNNF marks a subtree in negation normal form.
	FlagNNF = uint8(1 << 1)
)

var (
	// ErrUnboundVariable is returned by Eval when the assignment does not
	// cover a variable of the expression.
	ErrUnboundVariable = errors.New("boolexpr: unbound variable")

	// ErrIndeterminate is returned by Eval for the Logical and Illogical
	// constants, which have no two-valued interpretation.
	ErrIndeterminate = errors.New("boolexpr: indeterminate constant")
)

// Process-wide constant singletons. Their reference count never reaches zero.
var (
	Zero      = newAtom(KindZero, 0, nil)
	One       = newAtom(KindOne, 0, nil)
	Logical   = newAtom(KindLogical, 0, nil)
	Illogical = newAtom(KindIllogical, 0, nil)
)

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
