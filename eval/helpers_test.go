package eval

import (
	"basic/parser"
	"bytes"
	"context"
	"testing"
)

// runProgram parses, prepares and runs src, returning PRINT output
func runProgram(t *testing.T, src string, input ...string) (string, *Interpreter, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	prepared, err := Prepare(prog)
	if err != nil {
		return "", nil, err
	}
	var out bytes.Buffer
	interp := NewInterpreter(prepared, &out, NewQueueSource(input...), Options{MaxSteps: 100000})
	err = interp.Run(context.Background())
	return out.String(), interp, err
}

// mustRun runs src and fails the test on any error
func mustRun(t *testing.T, src string, input ...string) (string, *Interpreter) {
	t.Helper()
	out, interp, err := runProgram(t, src, input...)
	if err != nil {
		t.Fatalf("Run error: %v\noutput so far:\n%s", err, out)
	}
	return out, interp
}
