package untyped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ctx   Context
		want  Term
	}{
		{
			name:  "identity",
			input: `\x. x`,
			ctx:   NewContext(),
			want:  abs("x", Var{0, 1}),
		},
		{
			name:  "unicode lambda",
			input: `λx. x`,
			ctx:   NewContext(),
			want:  abs("x", Var{0, 1}),
		},
		{
			name:  "identity applied to identity",
			input: `(\x. x) (\y. y)`,
			ctx:   NewContext(),
			want:  app(abs("x", Var{0, 1}), abs("y", Var{0, 1})),
		},
		{
			name:  "application is left associative",
			input: `\f. \x. f x x`,
			ctx:   NewContext(),
			want:  abs("f", abs("x", app(app(Var{1, 2}, Var{0, 2}), Var{0, 2}))),
		},
		{
			name:  "abstraction extends right",
			input: `\f. f \x. x f`,
			ctx:   NewContext(),
			want:  abs("f", app(Var{0, 1}, abs("x", app(Var{0, 2}, Var{1, 2})))),
		},
		{
			name:  "free variables resolve against the context",
			input: `f (g \x. x)`,
			ctx:   NewContext("f", "g"),
			want:  app(Var{1, 2}, app(Var{0, 2}, abs("x", Var{0, 3}))),
		},
		{
			name:  "inner binder shadows outer",
			input: `\x. \x. x`,
			ctx:   NewContext(),
			want:  abs("x", abs("x", Var{0, 2})),
		},
		{
			name:  "binder shadows free name",
			input: `\f. f`,
			ctx:   NewContext("f"),
			want:  abs("f", Var{0, 2}),
		},
		{
			name:  "primed identifiers",
			input: `\x'. x'`,
			ctx:   NewContext(),
			want:  abs("x'", Var{0, 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.ctx)
			require.NoError(t, err)
			require.True(t, got.Eq(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ctx     Context
		wantErr string
	}{
		{"unbound variable", `\x. y`, NewContext(), "unbound variable y"},
		{"missing dot", `\x x`, NewContext(), "expected '.'"},
		{"missing binder", `\. x`, NewContext(), "expected binder name"},
		{"unclosed paren", `(\x. x`, NewContext(), "expected ')'"},
		{"trailing garbage", `x) y`, NewContext("x"), "unexpected"},
		{"empty input", ``, NewContext(), "expected term"},
		{"stray character", `#`, NewContext(), "unexpected character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.ctx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseShowRoundTrip(t *testing.T) {
	ctx := NewContext("f", "g")

	tests := []struct {
		input string
		want  string
	}{
		{`\x. x`, "(λx. x)"},
		{`(\x. f x) g`, "((λx. (f x)) g)"},
		{`\f. f g`, "(λf'. (f' g))"},
	}

	for _, tt := range tests {
		term, err := Parse(tt.input, ctx)
		require.NoError(t, err)
		got, err := Show(term, ctx)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "round-tripping %q", tt.input)
	}
}

func TestParsedTermsEvaluate(t *testing.T) {
	ctx := NewContext()
	term, err := Parse(`(\f. \x. f x) (\z. \w. z) (\u. u)`, ctx)
	require.NoError(t, err)

	got, err := Show(Eval(term), ctx)
	require.NoError(t, err)
	assert.Equal(t, "(λw. (λu. u))", got)
}
