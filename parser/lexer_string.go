package parser

// readString reads a double-quoted string literal. The opening quote is under
// the cursor. \" yields a quote; newlines stay in the value.
func (l *Lexer) readString() (Token, error) {
	tok := Token{Type: TOKEN_STRING, Position: l.pos()}
	l.src.Skip()
	l.column++

	var value []rune
	for {
		ch, ok := l.src.Peek(0)
		if !ok {
			return Token{}, &LexError{Pos: tok.Position, Msg: "unterminated string literal"}
		}

		switch ch {
		case '"':
			l.src.Skip()
			l.column++
			tok.Value = string(value)
			return tok, nil
		case '\r':
			l.src.Skip()
		case '\n':
			value = append(value, l.src.Next())
			l.line++
			l.column = 0
		case '\\':
			if next, ok := l.src.Peek(1); ok && next == '"' {
				l.src.Skip()
				l.column++
			}
			value = append(value, l.src.Next())
			l.column++
		default:
			value = append(value, l.src.Next())
			l.column++
		}
	}
}
