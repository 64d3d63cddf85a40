package eval

import (
	"basic/parser"
	"basic/trace"
	"basic/types"
	"fmt"
)

// frame is an entry on the control stack: a pending RETURN, an active WHILE
// or an active FOR
type frame interface {
	String() string
}

// returnFrame is pushed by GOSUB
type returnFrame struct {
	ret   int // statement to resume at, -1 when the GOSUB was last
	label string
	pos   parser.Position
}

func (f *returnFrame) String() string { return fmt.Sprintf("return(%d)", f.ret) }

// whileFrame is pushed when a WHILE condition holds on entry
type whileFrame struct {
	loop     int // index of the WHILE statement
	cond     *parser.CompareExpr
	endLabel string
}

func (f *whileFrame) String() string { return "while(" + f.endLabel + ")" }

// forFrame is pushed when a FOR loop runs at least once
type forFrame struct {
	loop     int // index of the FOR statement
	variable string
	end      types.Value
	step     types.Value
}

func (f *forFrame) String() string { return "for(" + f.variable + ")" }

func (in *Interpreter) push(kind string, f frame) {
	in.frames = append(in.frames, f)
	trace.Frame(kind, "PUSH", f.String(), len(in.frames))
}

func (in *Interpreter) pop(kind string) frame {
	n := len(in.frames)
	if n == 0 {
		return nil
	}
	f := in.frames[n-1]
	in.frames = in.frames[:n-1]
	trace.Frame(kind, "POP", f.String(), len(in.frames))
	return f
}

// top returns the innermost frame, or nil when the stack is empty
func (in *Interpreter) top() frame {
	if len(in.frames) == 0 {
		return nil
	}
	return in.frames[len(in.frames)-1]
}
