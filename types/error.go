package types

import "fmt"

// Error is a runtime failure that has not yet been tied to a source position.
// Operators and builtins return it; the interpreter attaches the position.
type Error struct {
	Code ErrorCode
	Msg  string
}

// NewError creates an Error with a formatted message
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String() + ": " + e.Code.Message()
	}
	return e.Code.String() + ": " + e.Msg
}
