package parser

import (
	"fmt"
	"strings"
)

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota // never produced by the lexer; marks an exhausted stream
	TOKEN_EOL
	TOKEN_LABEL
	TOKEN_WORD
	TOKEN_NUMBER
	TOKEN_STRING

	// Single-character operators and punctuation
	TOKEN_COMMA  // ,
	TOKEN_SLASH  // /
	TOKEN_EQ     // = (assignment and equality)
	TOKEN_GT     // >
	TOKEN_LT     // <
	TOKEN_LPAREN // (
	TOKEN_MINUS  // -
	TOKEN_STAR   // *
	TOKEN_PLUS   // +
	TOKEN_RPAREN // )

	// Two-character operators
	TOKEN_LE // <=
	TOKEN_NE // <>
	TOKEN_GE // >=

	// Keywords
	TOKEN_DATA
	TOKEN_END
	TOKEN_FOR
	TOKEN_FUNCTION
	TOKEN_GOSUB
	TOKEN_IF
	TOKEN_INPUT
	TOKEN_NEXT
	TOKEN_PRINT
	TOKEN_READ
	TOKEN_RETURN
	TOKEN_STEP
	TOKEN_THEN
	TOKEN_TO
	TOKEN_WHILE

	// Builtin functions
	TOKEN_LEFT   // LEFT$
	TOKEN_MID    // MID$
	TOKEN_NUM    // NUM$
	TOKEN_RANDOM // RANDOM
	TOKEN_RIGHT  // RIGHT$
	TOKEN_VAL    // VAL
	TOKEN_VALF   // VAL%
)

// Position represents a position in the source code.
// Lines start at 1, columns at 0; Offset counts runes from the start.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String formats the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token. Value is set only for words, numbers,
// string literals (decoded) and labels (without the colon).
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String renders the token the way the token dump shows it: WORD(x), EOL, PLUS
func (t Token) String() string {
	if t.HasValue() {
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
	return t.Type.String()
}

// HasValue reports whether the token type carries a text payload
func (t Token) HasValue() bool {
	switch t.Type {
	case TOKEN_LABEL, TOKEN_WORD, TOKEN_NUMBER, TOKEN_STRING:
		return true
	}
	return false
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_EOL:
		return "EOL"
	case TOKEN_LABEL:
		return "LABEL"
	case TOKEN_WORD:
		return "WORD"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_SLASH:
		return "SLASH"
	case TOKEN_EQ:
		return "EQ"
	case TOKEN_GT:
		return "GT"
	case TOKEN_LT:
		return "LT"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_LE:
		return "LE"
	case TOKEN_NE:
		return "NE"
	case TOKEN_GE:
		return "GE"
	case TOKEN_DATA:
		return "DATA"
	case TOKEN_END:
		return "END"
	case TOKEN_FOR:
		return "FOR"
	case TOKEN_FUNCTION:
		return "FUNCTION"
	case TOKEN_GOSUB:
		return "GOSUB"
	case TOKEN_IF:
		return "IF"
	case TOKEN_INPUT:
		return "INPUT"
	case TOKEN_NEXT:
		return "NEXT"
	case TOKEN_PRINT:
		return "PRINT"
	case TOKEN_READ:
		return "READ"
	case TOKEN_RETURN:
		return "RETURN"
	case TOKEN_STEP:
		return "STEP"
	case TOKEN_THEN:
		return "THEN"
	case TOKEN_TO:
		return "TO"
	case TOKEN_WHILE:
		return "WHILE"
	case TOKEN_LEFT:
		return "LEFT"
	case TOKEN_MID:
		return "MID"
	case TOKEN_NUM:
		return "NUM"
	case TOKEN_RANDOM:
		return "RANDOM"
	case TOKEN_RIGHT:
		return "RIGHT"
	case TOKEN_VAL:
		return "VAL"
	case TOKEN_VALF:
		return "VALF"
	default:
		return "UNKNOWN"
	}
}

// keywords maps lowercase reserved words and builtin names to their token types
var keywords = map[string]TokenType{
	"data":     TOKEN_DATA,
	"end":      TOKEN_END,
	"for":      TOKEN_FOR,
	"function": TOKEN_FUNCTION,
	"gosub":    TOKEN_GOSUB,
	"if":       TOKEN_IF,
	"input":    TOKEN_INPUT,
	"next":     TOKEN_NEXT,
	"print":    TOKEN_PRINT,
	"read":     TOKEN_READ,
	"return":   TOKEN_RETURN,
	"step":     TOKEN_STEP,
	"then":     TOKEN_THEN,
	"to":       TOKEN_TO,
	"while":    TOKEN_WHILE,

	"left$":  TOKEN_LEFT,
	"mid$":   TOKEN_MID,
	"num$":   TOKEN_NUM,
	"random": TOKEN_RANDOM,
	"right$": TOKEN_RIGHT,
	"val":    TOKEN_VAL,
	"val%":   TOKEN_VALF,
}

// symbols maps operator and punctuation spellings to their token types
var symbols = map[string]TokenType{
	",":  TOKEN_COMMA,
	"/":  TOKEN_SLASH,
	"=":  TOKEN_EQ,
	">":  TOKEN_GT,
	"<":  TOKEN_LT,
	"(":  TOKEN_LPAREN,
	"-":  TOKEN_MINUS,
	"*":  TOKEN_STAR,
	"+":  TOKEN_PLUS,
	")":  TOKEN_RPAREN,
	"<=": TOKEN_LE,
	"<>": TOKEN_NE,
	">=": TOKEN_GE,
}

// spellings is the inverse of keywords and symbols, used when rendering
// tokens and AST nodes back to source text
var spellings = func() map[TokenType]string {
	m := make(map[TokenType]string, len(keywords)+len(symbols))
	for text, tt := range symbols {
		m[tt] = text
	}
	for text, tt := range keywords {
		m[tt] = upper(text)
	}
	return m
}()

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// LookupKeyword checks if a word is a keyword or builtin name (case-insensitive)
func LookupKeyword(word string) TokenType {
	if tok, ok := keywords[strings.ToLower(word)]; ok {
		return tok
	}
	return TOKEN_WORD
}

// Spelling returns the canonical source text of a keyword, builtin or operator
// token type, or "" for types that carry their own text
func Spelling(t TokenType) string {
	return spellings[t]
}
