package parser

import (
	"basic/types"
	"strconv"
	"strings"
)

// UnparseProgram converts AST statements back to source code lines
func UnparseProgram(stmts []Stmt) []string {
	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		lines = append(lines, unparseStmt(stmt))
	}
	return lines
}

// unparseStmt converts a statement to source code
func unparseStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *AssignStmt:
		return s.Target.Name + "=" + unparseExpr(s.Value)

	case *PrintStmt:
		if len(s.Items) == 0 {
			return "PRINT"
		}
		return "PRINT " + unparseList(s.Items)

	case *DataStmt:
		return "DATA " + unparseList(s.Items)

	case *ReadStmt:
		return "READ " + unparseNames(s.Targets)

	case *InputStmt:
		if s.Prompt == nil {
			return "INPUT " + unparseNames(s.Targets)
		}
		return "INPUT " + unparseExpr(s.Prompt) + ", " + unparseNames(s.Targets)

	case *IfStmt:
		return "IF " + unparseExpr(s.Condition) + " THEN " + s.Label

	case *WhileStmt:
		return "WHILE " + unparseExpr(s.Condition) + " " + s.EndLabel

	case *ForStmt:
		return "FOR " + s.Variable.Name + " = " + unparseExpr(s.Start) +
			" TO " + unparseExpr(s.End) + " STEP " + unparseExpr(s.Step)

	case *NextStmt:
		return "NEXT " + s.Variable.Name

	case *GosubStmt:
		return "GOSUB " + s.Label

	case *ReturnStmt:
		return "RETURN"

	case *EndStmt:
		return "END"

	case *LabeledStmt:
		return s.Label + ": " + unparseStmt(s.Stmt)

	default:
		return "<unknown statement>"
	}
}

// unparseExpr converts an expression to source code. Arithmetic is fully
// parenthesized so the tree shape is visible.
func unparseExpr(expr Expr) string {
	switch e := expr.(type) {
	case *IntLiteral:
		return strconv.FormatInt(int64(e.Val), 10)

	case *FloatLiteral:
		return unparseFloat(e.Val)

	case *StringLiteral:
		return quote(e.Val)

	case *VariableExpr:
		return e.Name

	case *ArithExpr:
		return "(" + unparseExpr(e.Left) + Spelling(e.Operator) + unparseExpr(e.Right) + ")"

	case *CompareExpr:
		return unparseExpr(e.Left) + Spelling(e.Operator) + unparseExpr(e.Right)

	case *CallExpr:
		return Spelling(e.Function) + "(" + unparseList(e.Args) + ")"

	default:
		return "<unknown expression>"
	}
}

// unparseFloat renders a float literal. Exponent forms are spelled out in
// decimal, keeping a point, because the lexer has no exponent syntax.
func unparseFloat(f float32) string {
	s := types.FormatFloat(f)
	if !strings.Contains(s, "E") {
		return s
	}
	s = strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quote renders a string literal, escaping embedded quotes
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func unparseList(items []Expr) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = unparseExpr(item)
	}
	return strings.Join(parts, ", ")
}

func unparseNames(vars []*VariableExpr) string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	return strings.Join(names, ", ")
}

// RenderTokens turns tokens back into source text that lexes to the same
// token types and values
func RenderTokens(tokens []Token) string {
	var sb strings.Builder
	lineStart := true
	for _, tok := range tokens {
		if tok.Type == TOKEN_EOL {
			sb.WriteByte('\n')
			lineStart = true
			continue
		}
		if !lineStart {
			sb.WriteByte(' ')
		}
		lineStart = false

		switch tok.Type {
		case TOKEN_WORD, TOKEN_NUMBER:
			sb.WriteString(tok.Value)
		case TOKEN_STRING:
			sb.WriteString(quote(tok.Value))
		case TOKEN_LABEL:
			sb.WriteString(tok.Value + ":")
		default:
			sb.WriteString(Spelling(tok.Type))
		}
	}
	return sb.String()
}
