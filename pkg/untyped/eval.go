package untyped

import "github.com/pkg/errors"

// ErrNoRuleApplies signals that no reduction rule applies to a term: it
// is either a value or stuck. Eval treats it as normal termination, not
// as a failure.
var ErrNoRuleApplies = errors.New("no rule applies")

// IsValue reports whether t is a value under call-by-value semantics.
// Abstractions are the only values in the pure calculus.
func IsValue(t Term) bool {
	_, ok := t.(Abs)
	return ok
}

// Eval1 performs a single call-by-value reduction step. Beta-reduction
// fires only once the argument is a value; until then the head reduces
// first, then the argument. Anything that is not an application, and any
// application whose head can never become an abstraction, gets
// ErrNoRuleApplies.
//
// Evaluation never consults a Context and never reads CtxLen: free
// variables are treated as opaque stuck heads, so terms need not be
// closed before evaluating.
func Eval1(t Term) (Term, error) {
	app, ok := t.(App)
	if !ok {
		return nil, errors.Wrapf(ErrNoRuleApplies, "%s", t)
	}
	switch {
	case IsValue(app.Fun) && IsValue(app.Arg):
		return substTop(app.Fun.(Abs).Body, app.Arg), nil
	case IsValue(app.Fun):
		arg, err := Eval1(app.Arg)
		if err != nil {
			return nil, err
		}
		return App{Fun: app.Fun, Arg: arg}, nil
	default:
		fun, err := Eval1(app.Fun)
		if err != nil {
			return nil, err
		}
		return App{Fun: fun, Arg: app.Arg}, nil
	}
}

// Eval drives t to a normal form or a stuck state and returns the last
// term reached. It never fails; it also never terminates on divergent
// terms, so callers needing a bound must impose one externally by driving
// Eval1 themselves.
func Eval(t Term) Term {
	for {
		next, err := Eval1(t)
		if err != nil {
			return t
		}
		t = next
	}
}
