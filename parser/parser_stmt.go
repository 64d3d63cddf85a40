package parser

import "strings"

// Each statement rule returns ok=false with a nil error when the upcoming
// tokens do not start its form.

// parsePrint parses: PRINT [item {, item}]
func (p *Parser) parsePrint() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_PRINT)
	if !ok {
		return nil, false, nil
	}
	stmt := &PrintStmt{Pos: tok.Position}
	if p.tokens.PeekType(0) == TOKEN_EOL {
		return stmt, true, nil
	}
	items, err := p.parseItemList()
	if err != nil {
		return nil, false, err
	}
	stmt.Items = items
	return stmt, true, nil
}

// parseData parses: DATA item {, item}
func (p *Parser) parseData() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_DATA)
	if !ok {
		return nil, false, nil
	}
	if p.tokens.PeekType(0) == TOKEN_EOL {
		return nil, false, p.errorf("DATA requires at least one item")
	}
	items, err := p.parseItemList()
	if err != nil {
		return nil, false, err
	}
	return &DataStmt{Pos: tok.Position, Items: items}, true, nil
}

// parseRead parses: READ var {, var}
func (p *Parser) parseRead() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_READ)
	if !ok {
		return nil, false, nil
	}
	targets, err := p.parseVariableList("READ")
	if err != nil {
		return nil, false, err
	}
	return &ReadStmt{Pos: tok.Position, Targets: targets}, true, nil
}

// parseInput parses: INPUT [prompt,] var {, var}
// The prompt is a string literal, or a string variable directly followed by a comma.
func (p *Parser) parseInput() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_INPUT)
	if !ok {
		return nil, false, nil
	}
	stmt := &InputStmt{Pos: tok.Position}

	if lit, ok := p.tokens.MatchAndRemove(TOKEN_STRING); ok {
		stmt.Prompt = &StringLiteral{Pos: lit.Position, Val: lit.Value}
		if _, err := p.expect(TOKEN_COMMA, "after INPUT prompt"); err != nil {
			return nil, false, err
		}
	} else if word, ok := p.tokens.Peek(0); ok && word.Type == TOKEN_WORD &&
		strings.HasSuffix(word.Value, "$") && p.tokens.PeekType(1) == TOKEN_COMMA {
		p.tokens.MatchAndRemove(TOKEN_WORD)
		p.tokens.MatchAndRemove(TOKEN_COMMA)
		stmt.Prompt = &VariableExpr{Pos: word.Position, Name: word.Value}
	}

	targets, err := p.parseVariableList("INPUT")
	if err != nil {
		return nil, false, err
	}
	stmt.Targets = targets
	return stmt, true, nil
}

// parseGosub parses: GOSUB label
func (p *Parser) parseGosub() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_GOSUB)
	if !ok {
		return nil, false, nil
	}
	label, err := p.expectWord("label after GOSUB")
	if err != nil {
		return nil, false, err
	}
	return &GosubStmt{Pos: tok.Position, Label: label.Value}, true, nil
}

// parseReturn parses: RETURN
func (p *Parser) parseReturn() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_RETURN)
	if !ok {
		return nil, false, nil
	}
	return &ReturnStmt{Pos: tok.Position}, true, nil
}

// parseEnd parses: END
func (p *Parser) parseEnd() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_END)
	if !ok {
		return nil, false, nil
	}
	return &EndStmt{Pos: tok.Position}, true, nil
}

// parseFor parses: FOR var = start TO end [STEP step]
func (p *Parser) parseFor() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_FOR)
	if !ok {
		return nil, false, nil
	}
	name, err := p.expectWord("loop variable after FOR")
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(TOKEN_EQ, "after FOR variable"); err != nil {
		return nil, false, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(TOKEN_TO, "in FOR statement"); err != nil {
		return nil, false, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, false, err
	}

	var step Expr = &IntLiteral{Pos: tok.Position, Val: 1}
	if _, ok := p.tokens.MatchAndRemove(TOKEN_STEP); ok {
		step, err = p.parseExpression()
		if err != nil {
			return nil, false, err
		}
	}

	return &ForStmt{
		Pos:      tok.Position,
		Variable: &VariableExpr{Pos: name.Position, Name: name.Value},
		Start:    start,
		End:      end,
		Step:     step,
	}, true, nil
}

// parseNext parses: NEXT var
func (p *Parser) parseNext() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_NEXT)
	if !ok {
		return nil, false, nil
	}
	name, err := p.expectWord("loop variable after NEXT")
	if err != nil {
		return nil, false, err
	}
	return &NextStmt{Pos: tok.Position, Variable: &VariableExpr{Pos: name.Position, Name: name.Value}}, true, nil
}

// parseIf parses: IF condition THEN label
func (p *Parser) parseIf() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_IF)
	if !ok {
		return nil, false, nil
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(TOKEN_THEN, "after IF condition"); err != nil {
		return nil, false, err
	}
	label, err := p.expectWord("label after THEN")
	if err != nil {
		return nil, false, err
	}
	return &IfStmt{Pos: tok.Position, Condition: cond, Label: label.Value}, true, nil
}

// parseWhile parses: WHILE condition endlabel
func (p *Parser) parseWhile() (Stmt, bool, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_WHILE)
	if !ok {
		return nil, false, nil
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, false, err
	}
	label, err := p.expectWord("end label after WHILE condition")
	if err != nil {
		return nil, false, err
	}
	return &WhileStmt{Pos: tok.Position, Condition: cond, EndLabel: label.Value}, true, nil
}

// parseAssignment parses: var = (string | expression)
func (p *Parser) parseAssignment() (Stmt, bool, error) {
	name, ok := p.tokens.MatchAndRemove(TOKEN_WORD)
	if !ok {
		return nil, false, nil
	}
	if _, err := p.expect(TOKEN_EQ, "in assignment to "+name.Value); err != nil {
		return nil, false, err
	}
	value, err := p.parseItem()
	if err != nil {
		return nil, false, err
	}
	return &AssignStmt{
		Pos:    name.Position,
		Target: &VariableExpr{Pos: name.Position, Name: name.Value},
		Value:  value,
	}, true, nil
}

// parseVariableList parses one or more comma-separated variable names
func (p *Parser) parseVariableList(keyword string) ([]*VariableExpr, error) {
	var vars []*VariableExpr
	for {
		name, err := p.expectWord("variable for " + keyword)
		if err != nil {
			return nil, err
		}
		vars = append(vars, &VariableExpr{Pos: name.Position, Name: name.Value})
		if _, ok := p.tokens.MatchAndRemove(TOKEN_COMMA); !ok {
			return vars, nil
		}
	}
}
