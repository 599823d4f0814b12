package untyped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		term Term
		d    int
		want Term
	}{
		{
			// ↑2 (λ.λ. 1 (0 2)) => λ.λ. 1 (0 4)
			name: "free variable under two binders",
			term: abs("a", abs("b", app(Var{1, 100}, app(Var{0, 100}, Var{2, 100})))),
			d:    2,
			want: abs("a", abs("b", app(Var{1, 102}, app(Var{0, 102}, Var{4, 102})))),
		},
		{
			// ↑2 (λ. 0 1 (λ. 0 1 2)) => λ. 0 3 (λ. 0 1 4)
			name: "cutoff follows binder depth",
			term: abs("a", app(app(Var{0, 100}, Var{1, 100}), abs("b", app(app(Var{0, 100}, Var{1, 100}), Var{2, 100})))),
			d:    2,
			want: abs("a", app(app(Var{0, 102}, Var{3, 102}), abs("b", app(app(Var{0, 102}, Var{1, 102}), Var{4, 102})))),
		},
		{
			name: "negative shift undoes a binder level",
			term: app(Var{1, 3}, abs("x", Var{2, 4})),
			d:    -1,
			want: app(Var{0, 2}, abs("x", Var{1, 3})),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shift(tt.term, tt.d)
			require.True(t, got.Eq(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestShiftComposes(t *testing.T) {
	terms := []Term{
		Var{0, 1},
		abs("a", abs("b", app(Var{1, 100}, app(Var{0, 100}, Var{2, 100})))),
		app(abs("x", Var{0, 3}), app(Var{1, 2}, Var{0, 2})),
	}
	for _, term := range terms {
		composed := Shift(Shift(term, 1), 2)
		atOnce := Shift(term, 3)
		assert.True(t, composed.Eq(atOnce), "shift by 1 then 2 differs from shift by 3 on %s", term)
	}
}

func TestSubst(t *testing.T) {
	tests := []struct {
		name string
		term Term
		j    int
		s    Term
		want Term
	}{
		{
			// [0 -> 1](0 λ.λ. 2) => 1 (λ.λ. 3)
			name: "replacement shifted under binders",
			term: app(Var{0, 100}, abs("x", abs("y", Var{2, 100}))),
			j:    0,
			s:    Var{1, 100},
			want: app(Var{1, 100}, abs("x", abs("y", Var{3, 102}))),
		},
		{
			// [0 -> 1 λ. 2](0 λ. 1) => (1 λ.2) (λ. (2 λ. 3))
			name: "compound replacement",
			term: app(Var{0, 100}, abs("x", Var{1, 100})),
			j:    0,
			s:    app(Var{1, 100}, abs("z", Var{2, 100})),
			want: app(app(Var{1, 100}, abs("z", Var{2, 100})), abs("x", app(Var{2, 101}, abs("z", Var{3, 101})))),
		},
		{
			name: "untouched variables keep their recorded context length",
			term: app(Var{0, 7}, Var{1, 7}),
			j:    1,
			s:    Var{0, 7},
			want: app(Var{0, 7}, Var{0, 7}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subst(tt.term, tt.j, tt.s)
			require.True(t, got.Eq(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestSubstTop(t *testing.T) {
	// ((λx. x) v) contracts to v itself
	v := abs("v", Var{0, 1})
	got := substTop(Var{0, 1}, v)
	require.True(t, got.Eq(v), "got %s", got)

	// ((λx. λy. x) v): the shift/unshift pair nets out to zero on the
	// body's own numbering, leaving only the substituted occurrence
	got = substTop(abs("y", Var{1, 2}), v)
	want := abs("y", abs("v", Var{0, 2}))
	require.True(t, got.Eq(want), "got %s, want %s", got, want)
}
