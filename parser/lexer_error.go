package parser

import "fmt"

// LexError reports a character the lexer cannot tokenize
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
