package eval

import (
	"fmt"
	"strings"
)

// FormatTraceback formats a runtime error and the GOSUB calls active when it
// was raised:
//
//	12:4: E_DIV: division by zero
//	... called from GOSUB average at 3:0
//	(End of traceback)
func FormatTraceback(err *RuntimeError) []string {
	lines := []string{err.Error()}
	for _, call := range err.Stack {
		lines = append(lines, "... called from "+call)
	}
	if len(err.Stack) > 0 {
		lines = append(lines, "(End of traceback)")
	}
	return lines
}

// FormatTracebackString returns the traceback as a single string with newlines
func FormatTracebackString(err *RuntimeError) string {
	return strings.Join(FormatTraceback(err), "\n")
}

// callStack describes the active return frames, innermost first
func (in *Interpreter) callStack() []string {
	var stack []string
	for i := len(in.frames) - 1; i >= 0; i-- {
		if f, ok := in.frames[i].(*returnFrame); ok {
			stack = append(stack, fmt.Sprintf("GOSUB %s at %s", f.label, f.pos))
		}
	}
	return stack
}
