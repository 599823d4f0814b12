package untyped

import "fmt"

// Shift renumbers t for relocation under d additional enclosing binders
// (d may be negative). A cutoff counts the binders entered inside t:
// variables at or above it are free with respect to the shift and have
// their index moved by d. Every variable's recorded context length moves
// by d regardless, since CtxLen tracks total enclosing scope rather than
// binder-local depth.
func Shift(t Term, d int) Term {
	return shiftAbove(t, d, 0)
}

func shiftAbove(t Term, d, cutoff int) Term {
	switch t := t.(type) {
	case Var:
		idx := t.Index
		if idx >= cutoff {
			idx += d
		}
		return Var{Index: idx, CtxLen: t.CtxLen + d}
	case Abs:
		return Abs{Name: t.Name, Body: shiftAbove(t.Body, d, cutoff+1)}
	case App:
		return App{Fun: shiftAbove(t.Fun, d, cutoff), Arg: shiftAbove(t.Arg, d, cutoff)}
	default:
		panic(fmt.Sprintf("shift: unhandled term %T", t))
	}
}

// Subst replaces free occurrences of variable j in t with s. An
// occurrence matches at j plus the binder depth where it sits, and the
// replacement is shifted by that depth so its own indices stay correct
// once relocated. No renaming happens anywhere: indices are positional,
// which is the entire reason for the representation.
func Subst(t Term, j int, s Term) Term {
	return substWalk(t, j, s, 0)
}

func substWalk(t Term, j int, s Term, depth int) Term {
	switch t := t.(type) {
	case Var:
		if t.Index == j+depth {
			return Shift(s, depth)
		}
		return t
	case Abs:
		return Abs{Name: t.Name, Body: substWalk(t.Body, j, s, depth+1)}
	case App:
		return App{Fun: substWalk(t.Fun, j, s, depth), Arg: substWalk(t.Arg, j, s, depth)}
	default:
		panic(fmt.Sprintf("subst: unhandled term %T", t))
	}
}

// substTop contracts (λ.body) arg. The argument is first shifted up past
// the binder about to be removed, substituted for index 0, and the result
// shifted back down one level. The three steps must happen in exactly
// this order.
func substTop(body, arg Term) Term {
	return Shift(Subst(body, 0, Shift(arg, 1)), -1)
}
