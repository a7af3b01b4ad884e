// Package parser compiles arithmetic equations over the scalar field
// into an R1CS. Grammar:
//
//	equation := expr "==" number
//	expr     := term ( ("+"|"-") term )*
//	term     := factor ( ("*"|"/") factor )*
//	factor   := ident | number | "(" expr ")"
package parser

import (
	"unicode"

	"github.com/wyf-zk/zksnark-core/snark"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEq
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	src []rune
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src)}
}

func (l *lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) next() (token, error) {
	for {
		r, ok := l.peekRune()
		if !ok {
			return token{kind: tokEOF, pos: l.pos}, nil
		}
		if unicode.IsSpace(r) {
			l.pos++
			continue
		}
		break
	}

	start := l.pos
	r, _ := l.peekRune()

	switch {
	case r == '+':
		l.pos++
		return token{kind: tokPlus, pos: start}, nil
	case r == '-':
		l.pos++
		return token{kind: tokMinus, pos: start}, nil
	case r == '*':
		l.pos++
		return token{kind: tokStar, pos: start}, nil
	case r == '/':
		l.pos++
		return token{kind: tokSlash, pos: start}, nil
	case r == '(':
		l.pos++
		return token{kind: tokLParen, pos: start}, nil
	case r == ')':
		l.pos++
		return token{kind: tokRParen, pos: start}, nil
	case r == '=':
		l.pos++
		if r2, ok := l.peekRune(); ok && r2 == '=' {
			l.pos++
			return token{kind: tokEq, pos: start}, nil
		}
		return token{}, &snark.ParseError{Pos: start, Message: "expected '==', got single '='"}
	case unicode.IsDigit(r):
		for {
			r, ok := l.peekRune()
			if !ok || !unicode.IsDigit(r) {
				break
			}
			l.pos++
		}
		return token{kind: tokNumber, text: string(l.src[start:l.pos]), pos: start}, nil
	case unicode.IsLetter(r) || r == '_':
		for {
			r, ok := l.peekRune()
			if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
				break
			}
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.src[start:l.pos]), pos: start}, nil
	default:
		return token{}, &snark.ParseError{Pos: start, Message: "unexpected character " + string(r)}
	}
}
