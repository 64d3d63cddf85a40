package eval

import (
	"basic/builtins"
	"basic/parser"
	"basic/trace"
	"basic/types"
	"context"
	"io"
	"math/rand/v2"
)

// Options configures a run
type Options struct {
	MaxSteps int        // statements to execute before E_MAXSTEPS; 0 = unlimited
	Rand     *rand.Rand // source for RANDOM(); nil uses the package-level source
}

// Interpreter executes a prepared program
type Interpreter struct {
	prog     *Prepared
	env      *Environment
	frames   []frame
	dataPos  int
	cursor   int
	steps    int
	out      io.Writer
	input    LineSource
	builtins *builtins.Registry
	bctx     *builtins.Context
	opts     Options
}

// NewInterpreter creates an interpreter writing PRINT output to out and
// reading INPUT lines from input (which may be nil for programs without INPUT)
func NewInterpreter(prog *Prepared, out io.Writer, input LineSource, opts Options) *Interpreter {
	return &Interpreter{
		prog:     prog,
		env:      NewEnvironment(),
		out:      out,
		input:    input,
		builtins: builtins.NewRegistry(),
		bctx:     &builtins.Context{Rand: opts.Rand},
		opts:     opts,
	}
}

// Env exposes the variable stores, for inspection after a run
func (in *Interpreter) Env() *Environment {
	return in.env
}

// Steps returns the number of statements executed
func (in *Interpreter) Steps() int {
	return in.steps
}

// Run executes from the first statement until the cursor runs off the end
// of the program or END executes. Frames left on the stack are ignored.
func (in *Interpreter) Run(ctx context.Context) error {
	stmts := in.prog.Program.Statements
	in.cursor = -1
	if len(stmts) > 0 {
		in.cursor = 0
	}

	for in.cursor != -1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		index := in.cursor
		stmt := stmts[index]

		if in.opts.MaxSteps > 0 && in.steps >= in.opts.MaxSteps {
			return in.errorAt(stmt.Position(), types.E_MAXSTEPS, "exceeded %d statements", in.opts.MaxSteps)
		}
		in.steps++

		kind := statementKind(stmt)
		if trace.IsEnabled() {
			trace.Statement(index, stmt.Position().Line, kind, stmt.String())
		}

		next, err := in.execStmt(index, stmt)
		if err != nil {
			if re, ok := err.(*RuntimeError); ok {
				trace.Error(kind, index, re.Code, re.Msg)
			}
			return err
		}
		in.cursor = next
	}
	return nil
}

// Run parses, prepares and executes source in one call
func Run(ctx context.Context, source string, out io.Writer, input LineSource, opts Options) error {
	prog, err := parser.Parse(source)
	if err != nil {
		return err
	}
	prepared, err := Prepare(prog)
	if err != nil {
		return err
	}
	return NewInterpreter(prepared, out, input, opts).Run(ctx)
}
