package parser

import "fmt"

// ParseError reports a grammar violation at the token where parsing stopped
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// errorf builds a ParseError at the current token
func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.tokens.Current().Position, Msg: fmt.Sprintf(format, args...)}
}
