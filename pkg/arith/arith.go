// Package arith is a small-step evaluator for an arithmetic and boolean
// expression language: conditionals, naturals built from zero and
// successor, and a zero test. The language has no binders, so evaluation
// is plain structural rewriting with none of the index bookkeeping the
// lambda calculus needs.
package arith

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoRuleApplies signals that no evaluation rule applies to a term.
// Eval treats it as normal termination.
var ErrNoRuleApplies = errors.New("no rule applies")

// Term is a term of the arith language.
type Term interface {
	Eq(Term) bool
	fmt.Stringer
}

type True struct{}

func (True) Eq(other Term) bool { _, ok := other.(True); return ok }
func (True) String() string     { return "true" }

type False struct{}

func (False) Eq(other Term) bool { _, ok := other.(False); return ok }
func (False) String() string     { return "false" }

type If struct {
	Cond Term
	Then Term
	Else Term
}

func (t If) Eq(other Term) bool {
	o, ok := other.(If)
	return ok && t.Cond.Eq(o.Cond) && t.Then.Eq(o.Then) && t.Else.Eq(o.Else)
}

func (t If) String() string {
	return fmt.Sprintf("(if %s then %s else %s)", t.Cond, t.Then, t.Else)
}

type Zero struct{}

func (Zero) Eq(other Term) bool { _, ok := other.(Zero); return ok }
func (Zero) String() string     { return "0" }

type Succ struct{ Arg Term }

func (t Succ) Eq(other Term) bool {
	o, ok := other.(Succ)
	return ok && t.Arg.Eq(o.Arg)
}

func (t Succ) String() string { return fmt.Sprintf("(succ %s)", t.Arg) }

type Pred struct{ Arg Term }

func (t Pred) Eq(other Term) bool {
	o, ok := other.(Pred)
	return ok && t.Arg.Eq(o.Arg)
}

func (t Pred) String() string { return fmt.Sprintf("(pred %s)", t.Arg) }

type IsZero struct{ Arg Term }

func (t IsZero) Eq(other Term) bool {
	o, ok := other.(IsZero)
	return ok && t.Arg.Eq(o.Arg)
}

func (t IsZero) String() string { return fmt.Sprintf("(iszero %s)", t.Arg) }

// IsNumeric reports whether t is a numeric value: zero or a successor of
// a numeric value.
func IsNumeric(t Term) bool {
	switch t := t.(type) {
	case Zero:
		return true
	case Succ:
		return IsNumeric(t.Arg)
	default:
		return false
	}
}

// Eval1 performs a single evaluation step. Conditionals reduce their
// guard first; succ, pred and iszero reduce their argument until it is a
// numeric value. Terms like (succ true) are stuck: no rule matches and
// ErrNoRuleApplies comes back.
func Eval1(t Term) (Term, error) {
	switch t := t.(type) {
	case If:
		switch t.Cond.(type) {
		case True:
			return t.Then, nil
		case False:
			return t.Else, nil
		}
		cond, err := Eval1(t.Cond)
		if err != nil {
			return nil, err
		}
		return If{Cond: cond, Then: t.Then, Else: t.Else}, nil
	case Succ:
		arg, err := Eval1(t.Arg)
		if err != nil {
			return nil, err
		}
		return Succ{Arg: arg}, nil
	case Pred:
		switch arg := t.Arg.(type) {
		case Zero:
			return Zero{}, nil
		case Succ:
			if IsNumeric(arg.Arg) {
				return arg.Arg, nil
			}
		}
		arg, err := Eval1(t.Arg)
		if err != nil {
			return nil, err
		}
		return Pred{Arg: arg}, nil
	case IsZero:
		switch arg := t.Arg.(type) {
		case Zero:
			return True{}, nil
		case Succ:
			if IsNumeric(arg.Arg) {
				return False{}, nil
			}
		}
		arg, err := Eval1(t.Arg)
		if err != nil {
			return nil, err
		}
		return IsZero{Arg: arg}, nil
	default:
		return nil, errors.Wrapf(ErrNoRuleApplies, "%s", t)
	}
}

// Eval drives t to a normal form, value or stuck, and returns the last
// term reached.
func Eval(t Term) Term {
	for {
		next, err := Eval1(t)
		if err != nil {
			return t
		}
		t = next
	}
}
