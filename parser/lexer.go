package parser

import (
	"fmt"
	"unicode"
)

// Lexer tokenizes BASIC source code
type Lexer struct {
	src    *Source
	line   int
	column int
	tokens []Token
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	return &Lexer{
		src:    NewSource(input),
		line:   1,
		column: 0,
	}
}

// pos returns the position of the rune under the cursor
func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.src.Offset()}
}

func (l *Lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

// Lex tokenizes the whole input. The result always ends with TOKEN_EOL.
func (l *Lexer) Lex() ([]Token, error) {
	l.tokens = nil
	for !l.src.Done() {
		ch, _ := l.src.Peek(0)
		start := l.pos()

		switch {
		case ch == ' ' || ch == '\t':
			l.src.Skip()
			l.column++
		case ch == '\r':
			l.src.Skip()
		case ch == '\n':
			l.src.Skip()
			l.emit(Token{Type: TOKEN_EOL, Position: start})
			l.line++
			l.column = 0
		case ch == '"':
			tok, err := l.readString()
			if err != nil {
				return nil, err
			}
			l.emit(tok)
		case isDigit(ch) || ch == '.':
			l.emit(l.readNumber())
		case unicode.IsLetter(ch):
			l.emit(l.readWord())
		default:
			tok, ok := l.readSymbol()
			if !ok {
				return nil, &LexError{Pos: start, Msg: fmt.Sprintf("invalid character %q", ch)}
			}
			l.emit(tok)
		}
	}

	if n := len(l.tokens); n == 0 || l.tokens[n-1].Type != TOKEN_EOL {
		l.emit(Token{Type: TOKEN_EOL, Position: l.pos()})
	}
	return l.tokens, nil
}

// readWord reads an identifier, keyword, builtin name or label
func (l *Lexer) readWord() Token {
	tok := Token{Type: TOKEN_WORD, Position: l.pos()}
	var word []rune

	for {
		ch, ok := l.src.Peek(0)
		if !ok {
			break
		}
		if ch == '\r' {
			l.src.Skip()
			continue
		}
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			word = append(word, l.src.Next())
			l.column++
			continue
		}
		if ch == '$' || ch == '%' {
			word = append(word, l.src.Next())
			l.column++
			break
		}
		if ch == ':' {
			l.src.Skip()
			l.column++
			tok.Type = TOKEN_LABEL
			tok.Value = string(word)
			return tok
		}
		break
	}

	tok.Value = string(word)
	if kw := LookupKeyword(tok.Value); kw != TOKEN_WORD {
		tok.Type = kw
		tok.Value = ""
	}
	return tok
}

// readNumber reads digits with at most one decimal point
func (l *Lexer) readNumber() Token {
	tok := Token{Type: TOKEN_NUMBER, Position: l.pos()}
	var digits []rune
	decimal := false

	for {
		ch, ok := l.src.Peek(0)
		if !ok {
			break
		}
		if ch == '\r' {
			l.src.Skip()
			continue
		}
		if ch == '.' {
			if decimal {
				break
			}
			decimal = true
		} else if !isDigit(ch) {
			break
		}
		digits = append(digits, l.src.Next())
		l.column++
	}

	tok.Value = string(digits)
	return tok
}

// readSymbol reads an operator or punctuation mark, preferring two-character forms
func (l *Lexer) readSymbol() (Token, bool) {
	tok := Token{Position: l.pos()}
	first, _ := l.src.Peek(0)

	if second, ok := l.src.Peek(1); ok {
		if tt, ok := symbols[string([]rune{first, second})]; ok {
			l.src.Skip()
			l.src.Skip()
			l.column += 2
			tok.Type = tt
			return tok, true
		}
	}
	if tt, ok := symbols[string(first)]; ok {
		l.src.Skip()
		l.column++
		tok.Type = tt
		return tok, true
	}
	return tok, false
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
