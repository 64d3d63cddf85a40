package parser

import (
	"errors"
	"strconv"
)

// Precedence, loosest first:
//   condition  := expression comparator expression
//   expression := term {(+|-) term}
//   term       := factor {(*|/) factor}
//   factor     := call | -number | -factor | number | word | ( expression )

var comparators = []TokenType{TOKEN_EQ, TOKEN_LT, TOKEN_GT, TOKEN_LE, TOKEN_GE, TOKEN_NE}

// parseCondition parses a single comparison
func (p *Parser) parseCondition() (*CompareExpr, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	for _, op := range comparators {
		if _, ok := p.tokens.MatchAndRemove(op); ok {
			right, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &CompareExpr{Pos: left.Position(), Left: left, Operator: op, Right: right}, nil
		}
	}
	return nil, p.errorf("expected comparison operator, got %s", p.tokens.Current())
}

// parseExpression parses additive expressions, left-associative
func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.matchOperator(TOKEN_PLUS, TOKEN_MINUS)
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ArithExpr{Pos: left.Position(), Left: left, Operator: op, Right: right}
	}
}

// parseTerm parses multiplicative expressions, left-associative
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.matchOperator(TOKEN_STAR, TOKEN_SLASH)
		if !ok {
			return left, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ArithExpr{Pos: left.Position(), Left: left, Operator: op, Right: right}
	}
}

func (p *Parser) matchOperator(ops ...TokenType) (TokenType, bool) {
	for _, op := range ops {
		if _, ok := p.tokens.MatchAndRemove(op); ok {
			return op, true
		}
	}
	return TOKEN_EOF, false
}

// parseFactor parses the operands of arithmetic
func (p *Parser) parseFactor() (Expr, error) {
	if call, ok, err := p.parseCall(); err != nil || ok {
		return call, err
	}

	if minus, ok := p.tokens.MatchAndRemove(TOKEN_MINUS); ok {
		if num, ok := p.tokens.MatchAndRemove(TOKEN_NUMBER); ok {
			return p.numberLiteral(num, minus.Position, true)
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		zero := &IntLiteral{Pos: minus.Position, Val: 0}
		return &ArithExpr{Pos: minus.Position, Left: zero, Operator: TOKEN_MINUS, Right: operand}, nil
	}

	if num, ok := p.tokens.MatchAndRemove(TOKEN_NUMBER); ok {
		return p.numberLiteral(num, num.Position, false)
	}

	if word, ok := p.tokens.MatchAndRemove(TOKEN_WORD); ok {
		return &VariableExpr{Pos: word.Position, Name: word.Value}, nil
	}

	if lparen, ok := p.tokens.MatchAndRemove(TOKEN_LPAREN); ok {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, ok := p.tokens.MatchAndRemove(TOKEN_RPAREN); !ok {
			return nil, p.errorf("expected ')' to close '(' at %s, got %s", lparen.Position, p.tokens.Current())
		}
		return expr, nil
	}

	return nil, p.errorf("unexpected %s in expression", p.tokens.Current())
}

// numberLiteral converts a NUMBER token, preferring a 32-bit integer.
// pos is the minus sign's position when one was folded in.
func (p *Parser) numberLiteral(tok Token, pos Position, negative bool) (Expr, error) {
	text := tok.Value
	if negative {
		text = "-" + text
	}
	if i, err := strconv.ParseInt(text, 10, 32); err == nil {
		return &IntLiteral{Pos: pos, Val: int32(i)}, nil
	}
	f, err := strconv.ParseFloat(text, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &ParseError{Pos: tok.Position, Msg: "invalid number " + strconv.Quote(tok.Value)}
	}
	return &FloatLiteral{Pos: pos, Val: float32(f)}, nil
}

// builtins are the token types that start a function call
var builtins = map[TokenType]bool{
	TOKEN_LEFT:   true,
	TOKEN_MID:    true,
	TOKEN_NUM:    true,
	TOKEN_RANDOM: true,
	TOKEN_RIGHT:  true,
	TOKEN_VAL:    true,
	TOKEN_VALF:   true,
}

// parseCall parses: builtin ( [item {, item}] )
func (p *Parser) parseCall() (Expr, bool, error) {
	tok, ok := p.tokens.Peek(0)
	if !ok || !builtins[tok.Type] {
		return nil, false, nil
	}
	p.tokens.MatchAndRemove(tok.Type)

	if _, err := p.expect(TOKEN_LPAREN, "after "+Spelling(tok.Type)); err != nil {
		return nil, false, err
	}
	call := &CallExpr{Pos: tok.Position, Function: tok.Type}
	if _, ok := p.tokens.MatchAndRemove(TOKEN_RPAREN); ok {
		return call, true, nil
	}
	args, err := p.parseItemList()
	if err != nil {
		return nil, false, err
	}
	call.Args = args
	if _, err := p.expect(TOKEN_RPAREN, "to close "+Spelling(tok.Type)+" arguments"); err != nil {
		return nil, false, err
	}
	return call, true, nil
}

// parseItem parses a string literal or an expression
func (p *Parser) parseItem() (Expr, error) {
	if lit, ok := p.tokens.MatchAndRemove(TOKEN_STRING); ok {
		return &StringLiteral{Pos: lit.Position, Val: lit.Value}, nil
	}
	return p.parseExpression()
}

// parseItemList parses one or more comma-separated items
func (p *Parser) parseItemList() ([]Expr, error) {
	var items []Expr
	for {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if _, ok := p.tokens.MatchAndRemove(TOKEN_COMMA); !ok {
			return items, nil
		}
	}
}
