// Package untyped implements a call-by-value interpreter for the untyped
// lambda calculus. Terms use de Bruijn indices, so substitution is
// capture-avoiding by construction and no alpha-renaming ever happens;
// names only reappear at display time, via a Context that never touches
// evaluation.
package untyped

import (
	"fmt"
	"strconv"
)

// Term is a term of the untyped lambda calculus in de Bruijn form.
// Terms are immutable: every transformation in this package allocates new
// nodes and never writes through an existing one.
type Term interface {
	// Eq reports structural equality. Binder names participate, so two
	// abstractions differing only in their display name compare unequal
	// even though they are semantically the same term.
	Eq(Term) bool
	// Clone returns a deep copy of the term.
	Clone() Term
	fmt.Stringer
}

// Var is a variable occurrence. Index counts binders outward from the
// innermost enclosing abstraction (0 = nearest). CtxLen records the total
// number of binders in scope when the node was built; it is never
// consulted during evaluation, only checked at display time to catch
// terms rendered under the wrong context.
type Var struct {
	Index  int
	CtxLen int
}

func (v Var) Eq(other Term) bool {
	o, ok := other.(Var)
	return ok && v == o
}

func (v Var) Clone() Term { return v }

func (v Var) String() string { return strconv.Itoa(v.Index) }

// Abs is a lambda abstraction. Name is cosmetic: it seeds the display
// name chosen by Show and carries no semantic weight.
type Abs struct {
	Name string
	Body Term
}

func (a Abs) Eq(other Term) bool {
	o, ok := other.(Abs)
	return ok && a.Name == o.Name && a.Body.Eq(o.Body)
}

func (a Abs) Clone() Term { return Abs{Name: a.Name, Body: a.Body.Clone()} }

func (a Abs) String() string { return fmt.Sprintf("(λ%s. %s)", a.Name, a.Body) }

// App is function application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) Eq(other Term) bool {
	o, ok := other.(App)
	return ok && a.Fun.Eq(o.Fun) && a.Arg.Eq(o.Arg)
}

func (a App) Clone() Term { return App{Fun: a.Fun.Clone(), Arg: a.Arg.Clone()} }

func (a App) String() string { return fmt.Sprintf("(%s %s)", a.Fun, a.Arg) }
