package parser

// Parser builds a Program from lexed tokens by recursive descent
type Parser struct {
	tokens *TokenStream
}

// NewParser creates a Parser over tokens produced by Lexer.Lex
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: NewTokenStream(tokens)}
}

// Parse lexes and parses a complete program
func Parse(input string) (*Program, error) {
	tokens, err := NewLexer(input).Lex()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

// ParseProgram parses statements until the tokens run out. Every statement
// must be terminated by an end of line.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}

	p.skipSeparators()
	for p.tokens.More() {
		stmt, err := p.parseLabeledStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)

		if _, ok := p.tokens.MatchAndRemove(TOKEN_EOL); !ok {
			return nil, p.errorf("expected end of line after statement, got %s", p.tokens.Current())
		}
		p.skipSeparators()
	}
	return prog, nil
}

// skipSeparators consumes any run of end-of-line tokens
func (p *Parser) skipSeparators() {
	for {
		if _, ok := p.tokens.MatchAndRemove(TOKEN_EOL); !ok {
			return
		}
	}
}

// parseLabeledStatement parses an optional label and the statement it names
func (p *Parser) parseLabeledStatement() (Stmt, error) {
	label, ok := p.tokens.MatchAndRemove(TOKEN_LABEL)
	if !ok {
		return p.parseStatement()
	}

	p.skipSeparators()
	if !p.tokens.More() {
		return nil, p.errorf("label %s has no statement", label.Value)
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &LabeledStmt{Pos: label.Position, Label: label.Value, Stmt: stmt}, nil
}

// parseStatement tries each statement rule in order
func (p *Parser) parseStatement() (Stmt, error) {
	rules := []func() (Stmt, bool, error){
		p.parsePrint,
		p.parseData,
		p.parseRead,
		p.parseInput,
		p.parseGosub,
		p.parseReturn,
		p.parseEnd,
		p.parseFor,
		p.parseNext,
		p.parseIf,
		p.parseWhile,
		p.parseAssignment,
	}
	for _, rule := range rules {
		stmt, ok, err := rule()
		if err != nil {
			return nil, err
		}
		if ok {
			return stmt, nil
		}
	}
	return nil, p.errorf("expected statement, got %s", p.tokens.Current())
}

// expectWord consumes a WORD token or fails with a message naming what was wanted
func (p *Parser) expectWord(what string) (Token, error) {
	tok, ok := p.tokens.MatchAndRemove(TOKEN_WORD)
	if !ok {
		return Token{}, p.errorf("expected %s, got %s", what, p.tokens.Current())
	}
	return tok, nil
}

// expect consumes a token of type t or fails
func (p *Parser) expect(t TokenType, context string) (Token, error) {
	tok, ok := p.tokens.MatchAndRemove(t)
	if !ok {
		return Token{}, p.errorf("expected %s %s, got %s", describe(t), context, p.tokens.Current())
	}
	return tok, nil
}

// describe names a token type for diagnostics
func describe(t TokenType) string {
	if s := Spelling(t); s != "" {
		return "'" + s + "'"
	}
	return t.String()
}
