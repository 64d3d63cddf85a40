package parser

import "strings"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
	String() string
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// ============================================================================
// EXPRESSIONS
// ============================================================================

// IntLiteral is a whole-number literal that fits in 32 bits
type IntLiteral struct {
	Pos Position
	Val int32
}

func (e *IntLiteral) Position() Position { return e.Pos }
func (e *IntLiteral) exprNode()          {}
func (e *IntLiteral) String() string     { return unparseExpr(e) }

// FloatLiteral is any other numeric literal
type FloatLiteral struct {
	Pos Position
	Val float32
}

func (e *FloatLiteral) Position() Position { return e.Pos }
func (e *FloatLiteral) exprNode()          {}
func (e *FloatLiteral) String() string     { return unparseExpr(e) }

// StringLiteral holds the decoded text of a quoted literal
type StringLiteral struct {
	Pos Position
	Val string
}

func (e *StringLiteral) Position() Position { return e.Pos }
func (e *StringLiteral) exprNode()          {}
func (e *StringLiteral) String() string     { return unparseExpr(e) }

// VariableExpr references a variable. Name includes the sigil.
type VariableExpr struct {
	Pos  Position
	Name string
}

func (e *VariableExpr) Position() Position { return e.Pos }
func (e *VariableExpr) exprNode()          {}
func (e *VariableExpr) String() string     { return unparseExpr(e) }

// ArithExpr is a binary arithmetic operation
type ArithExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType // TOKEN_PLUS, TOKEN_MINUS, TOKEN_STAR, TOKEN_SLASH
	Right    Expr
}

func (e *ArithExpr) Position() Position { return e.Pos }
func (e *ArithExpr) exprNode()          {}
func (e *ArithExpr) String() string     { return unparseExpr(e) }

// CompareExpr is a comparison; it appears only as an IF or WHILE condition
type CompareExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType // TOKEN_EQ, TOKEN_LT, TOKEN_GT, TOKEN_LE, TOKEN_GE, TOKEN_NE
	Right    Expr
}

func (e *CompareExpr) Position() Position { return e.Pos }
func (e *CompareExpr) exprNode()          {}
func (e *CompareExpr) String() string     { return unparseExpr(e) }

// CallExpr invokes a builtin function
type CallExpr struct {
	Pos      Position
	Function TokenType // TOKEN_LEFT ... TOKEN_VALF
	Args     []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}
func (e *CallExpr) String() string     { return unparseExpr(e) }

// ============================================================================
// STATEMENTS
// ============================================================================

// AssignStmt represents: name = value
type AssignStmt struct {
	Pos    Position
	Target *VariableExpr
	Value  Expr
}

func (s *AssignStmt) Position() Position { return s.Pos }
func (s *AssignStmt) stmtNode()          {}
func (s *AssignStmt) String() string     { return unparseStmt(s) }

// PrintStmt represents: PRINT [item {, item}]
type PrintStmt struct {
	Pos   Position
	Items []Expr
}

func (s *PrintStmt) Position() Position { return s.Pos }
func (s *PrintStmt) stmtNode()          {}
func (s *PrintStmt) String() string     { return unparseStmt(s) }

// DataStmt represents: DATA item {, item}
type DataStmt struct {
	Pos   Position
	Items []Expr
}

func (s *DataStmt) Position() Position { return s.Pos }
func (s *DataStmt) stmtNode()          {}
func (s *DataStmt) String() string     { return unparseStmt(s) }

// ReadStmt represents: READ var {, var}
type ReadStmt struct {
	Pos     Position
	Targets []*VariableExpr
}

func (s *ReadStmt) Position() Position { return s.Pos }
func (s *ReadStmt) stmtNode()          {}
func (s *ReadStmt) String() string     { return unparseStmt(s) }

// InputStmt represents: INPUT [prompt,] var {, var}
type InputStmt struct {
	Pos     Position
	Prompt  Expr // nil, *StringLiteral or a string *VariableExpr
	Targets []*VariableExpr
}

func (s *InputStmt) Position() Position { return s.Pos }
func (s *InputStmt) stmtNode()          {}
func (s *InputStmt) String() string     { return unparseStmt(s) }

// IfStmt represents: IF condition THEN label
type IfStmt struct {
	Pos       Position
	Condition *CompareExpr
	Label     string
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) String() string     { return unparseStmt(s) }

// WhileStmt represents: WHILE condition endlabel
type WhileStmt struct {
	Pos       Position
	Condition *CompareExpr
	EndLabel  string
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}
func (s *WhileStmt) String() string     { return unparseStmt(s) }

// ForStmt represents: FOR var = start TO end [STEP step]
type ForStmt struct {
	Pos      Position
	Variable *VariableExpr
	Start    Expr
	End      Expr
	Step     Expr // IntLiteral 1 when omitted
}

func (s *ForStmt) Position() Position { return s.Pos }
func (s *ForStmt) stmtNode()          {}
func (s *ForStmt) String() string     { return unparseStmt(s) }

// NextStmt represents: NEXT var
type NextStmt struct {
	Pos      Position
	Variable *VariableExpr
}

func (s *NextStmt) Position() Position { return s.Pos }
func (s *NextStmt) stmtNode()          {}
func (s *NextStmt) String() string     { return unparseStmt(s) }

// GosubStmt represents: GOSUB label
type GosubStmt struct {
	Pos   Position
	Label string
}

func (s *GosubStmt) Position() Position { return s.Pos }
func (s *GosubStmt) stmtNode()          {}
func (s *GosubStmt) String() string     { return unparseStmt(s) }

// ReturnStmt represents: RETURN
type ReturnStmt struct {
	Pos Position
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}
func (s *ReturnStmt) String() string     { return unparseStmt(s) }

// EndStmt represents: END
type EndStmt struct {
	Pos Position
}

func (s *EndStmt) Position() Position { return s.Pos }
func (s *EndStmt) stmtNode()          {}
func (s *EndStmt) String() string     { return unparseStmt(s) }

// LabeledStmt attaches a label to exactly one statement
type LabeledStmt struct {
	Pos   Position
	Label string
	Stmt  Stmt
}

func (s *LabeledStmt) Position() Position { return s.Pos }
func (s *LabeledStmt) stmtNode()          {}
func (s *LabeledStmt) String() string     { return unparseStmt(s) }

// Unwrap returns the statement beneath any label wrapper
func Unwrap(stmt Stmt) Stmt {
	for {
		l, ok := stmt.(*LabeledStmt)
		if !ok {
			return stmt
		}
		stmt = l.Stmt
	}
}

// Program is a parsed source file: statements in source order
type Program struct {
	Statements []Stmt
}

// String renders one statement per line
func (p *Program) String() string {
	return strings.Join(UnparseProgram(p.Statements), "\n")
}
