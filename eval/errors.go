package eval

import (
	"basic/parser"
	"basic/types"
	"errors"
	"fmt"
)

// RuntimeError is an error raised while preparing or running a program
type RuntimeError struct {
	Code  types.ErrorCode
	Pos   parser.Position
	Msg   string
	Stack []string // active GOSUB calls, innermost first
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Msg)
}

// errorAt builds a RuntimeError carrying the current GOSUB stack
func (in *Interpreter) errorAt(pos parser.Position, code types.ErrorCode, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Code:  code,
		Pos:   pos,
		Msg:   fmt.Sprintf(format, args...),
		Stack: in.callStack(),
	}
}

// wrap attaches a position to an operator or builtin failure.
// Errors that are not *types.Error pass through unchanged.
func (in *Interpreter) wrap(pos parser.Position, err error) error {
	var te *types.Error
	if !errors.As(err, &te) {
		return err
	}
	return &RuntimeError{Code: te.Code, Pos: pos, Msg: te.Msg, Stack: in.callStack()}
}
