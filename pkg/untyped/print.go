package untyped

import (
	"fmt"

	"github.com/pkg/errors"
)

// Show renders t as a fully parenthesized string, using ctx to name free
// variables and freshening binder names that would shadow something in
// scope.
//
// Every variable records the context length it was built against; if that
// disagrees with the context actually in scope at the occurrence, the
// term and context were computed against different binder depths.
// Rendering anyway would silently print the wrong name, so Show refuses
// with an error instead. Such a mismatch is a bug in whatever constructed
// the term, not a condition to recover from.
func Show(t Term, ctx Context) (string, error) {
	switch t := t.(type) {
	case Var:
		if t.CtxLen != ctx.Len() {
			return "", errors.Errorf("bad index: context has %d names but variable was built against %d", ctx.Len(), t.CtxLen)
		}
		if t.Index < 0 || t.Index >= ctx.Len() {
			return "", errors.Errorf("variable %d out of range for context of %d names", t.Index, ctx.Len())
		}
		return ctx.indexToName(t.Index), nil
	case Abs:
		inner, name := ctx.pickFreshName(t.Name)
		body, err := Show(t.Body, inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(λ%s. %s)", name, body), nil
	case App:
		fun, err := Show(t.Fun, ctx)
		if err != nil {
			return "", err
		}
		arg, err := Show(t.Arg, ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s)", fun, arg), nil
	default:
		return "", errors.Errorf("term of type %T is unhandled", t)
	}
}
