package untyped

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenLambda
	tokenDot
	tokenLParen
	tokenRParen
)

type token struct {
	typ tokenType
	lit string
}

func (t token) String() string {
	if t.typ == tokenEOF {
		return "end of input"
	}
	return t.lit
}

// parser is a recursive-descent parser that resolves names to de Bruijn
// indices as it goes: bound holds the binders entered so far (innermost
// last), and anything not on it is looked up in ctx as a free variable.
type parser struct {
	input   string
	pos     int
	current token
	ctx     Context
	bound   []string
}

// Parse reads a term from concrete syntax. Abstractions are written
// `\x. body` or `λx. body` and extend as far right as possible;
// application is juxtaposition and associates left. Free names must be
// present in ctx, outermost first; the resulting Var nodes record
// ctx.Len() plus their binder depth, so parsed terms always satisfy the
// context-length invariant checked by Show.
func Parse(input string, ctx Context) (Term, error) {
	p := &parser{input: input, ctx: ctx}
	if err := p.next(); err != nil {
		return nil, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.typ != tokenEOF {
		return nil, errors.Errorf("unexpected %s after term", p.current)
	}
	return t, nil
}

func (p *parser) next() error {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = token{typ: tokenEOF}
		return nil
	}

	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	switch {
	case r == '\\' || r == 'λ':
		p.current = token{typ: tokenLambda, lit: string(r)}
		p.pos += size
	case r == '.':
		p.current = token{typ: tokenDot, lit: "."}
		p.pos += size
	case r == '(':
		p.current = token{typ: tokenLParen, lit: "("}
		p.pos += size
	case r == ')':
		p.current = token{typ: tokenRParen, lit: ")"}
		p.pos += size
	case isIdentStart(r):
		start := p.pos
		for p.pos < len(p.input) {
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			if !isIdentPart(r) {
				break
			}
			p.pos += size
		}
		p.current = token{typ: tokenIdent, lit: p.input[start:p.pos]}
	default:
		return errors.Errorf("unexpected character %q", r)
	}
	return nil
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) && r != 'λ'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || r == '\'' || unicode.IsDigit(r)
}

// Term ::= Abs | App
func (p *parser) parseTerm() (Term, error) {
	if p.current.typ == tokenLambda {
		return p.parseAbs()
	}
	return p.parseApp()
}

// Abs ::= ('\' | 'λ') Ident '.' Term
func (p *parser) parseAbs() (Term, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.current.typ != tokenIdent {
		return nil, errors.Errorf("expected binder name, got %s", p.current)
	}
	name := p.current.lit
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.current.typ != tokenDot {
		return nil, errors.Errorf("expected '.' after binder %s, got %s", name, p.current)
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	p.bound = append(p.bound, name)
	body, err := p.parseTerm()
	p.bound = p.bound[:len(p.bound)-1]
	if err != nil {
		return nil, err
	}
	return Abs{Name: name, Body: body}, nil
}

// App ::= Atom+ with a trailing Abs allowed, since an abstraction in
// argument position extends to the end of the term: `f λx. x y` parses
// as `f (λx. x y)`.
func (p *parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.current.typ {
		case tokenLambda:
			arg, err := p.parseAbs()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: arg}, nil
		case tokenIdent, tokenLParen:
			arg, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			left = App{Fun: left, Arg: arg}
		default:
			return left, nil
		}
	}
}

// Atom ::= Ident | '(' Term ')'
func (p *parser) parseAtom() (Term, error) {
	switch p.current.typ {
	case tokenIdent:
		v, err := p.resolve(p.current.lit)
		if err != nil {
			return nil, err
		}
		return v, p.next()
	case tokenLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.typ != tokenRParen {
			return nil, errors.Errorf("expected ')', got %s", p.current)
		}
		return t, p.next()
	default:
		return nil, errors.Errorf("expected term, got %s", p.current)
	}
}

func (p *parser) resolve(name string) (Term, error) {
	ctxLen := p.ctx.Len() + len(p.bound)
	for i := len(p.bound) - 1; i >= 0; i-- {
		if p.bound[i] == name {
			return Var{Index: len(p.bound) - 1 - i, CtxLen: ctxLen}, nil
		}
	}
	if idx, ok := p.ctx.nameToIndex(name); ok {
		return Var{Index: len(p.bound) + idx, CtxLen: ctxLen}, nil
	}
	return nil, errors.Errorf("unbound variable %s", name)
}
