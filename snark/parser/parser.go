package parser

import "github.com/wyf-zk/zksnark-core/snark"

// Parser is a recursive-descent parser over a single equation.
type Parser struct {
	lex *lexer
	cur token
}

// ParseEquation parses "expr == number" and returns its AST.
func ParseEquation(src string) (*Equation, error) {
	p := &Parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEq {
		return nil, &snark.ParseError{Pos: p.cur.pos, Message: "expected '=='"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind != tokNumber {
		return nil, &snark.ParseError{Pos: p.cur.pos, Message: "expected a number after '=='"}
	}
	value := p.cur.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, &snark.ParseError{Pos: p.cur.pos, Message: "unexpected trailing input"}
	}
	return &Equation{LHS: lhs, Value: value}, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseExpr := term ( ("+"|"-") term )*
func (p *Parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := byte('+')
		if p.cur.kind == tokMinus {
			op = '-'
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &binNode{op: op, left: left, right: right}
	}
	return left, nil
}

// parseTerm := factor ( ("*"|"/") factor )*
func (p *Parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := byte('*')
		if p.cur.kind == tokSlash {
			op = '/'
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &binNode{op: op, left: left, right: right}
	}
	return left, nil
}

// parseFactor := ident | number | "(" expr ")"
func (p *Parser) parseFactor() (node, error) {
	switch p.cur.kind {
	case tokIdent:
		n := &varNode{name: p.cur.text}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case tokNumber:
		n := &numNode{value: p.cur.text}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, &snark.ParseError{Pos: p.cur.pos, Message: "expected ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, &snark.ParseError{Pos: p.cur.pos, Message: "expected a variable, number, or '('"}
	}
}
