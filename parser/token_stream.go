package parser

// TokenStream is a consuming queue over lexed tokens
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream wraps tokens produced by the lexer
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// More reports whether any tokens remain
func (s *TokenStream) More() bool {
	return s.pos < len(s.tokens)
}

// Peek returns the token n positions ahead without consuming it
func (s *TokenStream) Peek(n int) (Token, bool) {
	at := s.pos + n
	if at < 0 || at >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[at], true
}

// PeekType returns the type of the token n positions ahead, TOKEN_EOF past the end
func (s *TokenStream) PeekType(n int) TokenType {
	tok, ok := s.Peek(n)
	if !ok {
		return TOKEN_EOF
	}
	return tok.Type
}

// MatchAndRemove consumes the next token only if it has type t
func (s *TokenStream) MatchAndRemove(t TokenType) (Token, bool) {
	tok, ok := s.Peek(0)
	if !ok || tok.Type != t {
		return Token{}, false
	}
	s.pos++
	return tok, true
}

// Current returns the next token, or a synthetic TOKEN_EOF positioned at the
// last token once the stream is exhausted
func (s *TokenStream) Current() Token {
	if tok, ok := s.Peek(0); ok {
		return tok
	}
	if len(s.tokens) == 0 {
		return Token{Type: TOKEN_EOF, Position: Position{Line: 1}}
	}
	return Token{Type: TOKEN_EOF, Position: s.tokens[len(s.tokens)-1].Position}
}
