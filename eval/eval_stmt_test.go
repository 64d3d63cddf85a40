package eval

import (
	"basic/types"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestStatementPrograms(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		input []string
		want  string
	}{
		{
			name: "data and read",
			code: lines(
				`DATA 1, 13.5, "text"`,
				"READ a, b%, c$",
				"PRINT a",
				"PRINT b%",
				"PRINT c$",
			),
			want: lines("1", "13.5", "text"),
		},
		{
			name: "data is flattened across statements and labels",
			code: lines(
				"READ a, b, c",
				"PRINT a, b, c",
				"DATA 1",
				"more: DATA 2, 3",
			),
			want: lines("123"),
		},
		{
			name: "read promotes int data for float targets",
			code: lines("DATA 2", "READ x%", "PRINT x%"),
			want: lines("2.0"),
		},
		{
			name: "empty print",
			code: lines("PRINT", "PRINT \"x\""),
			want: lines("", "x"),
		},
		{
			name: "string target takes string expressions",
			code: lines(`a$ = "hi"`, "b$ = a$", `c$ = LEFT$(a$, 1)`, "PRINT b$, c$"),
			want: lines("hih"),
		},
		{
			name: "separate stores per sigil",
			code: lines("x = 1", "x% = 2.5", `x$ = "s"`, "PRINT x, x%, x$"),
			want: lines("12.5s"),
		},
		{
			name: "for skips body when start is past end",
			code: lines(
				"FOR i = 5 TO 1",
				`PRINT "inside"`,
				"NEXT i",
				`PRINT "after ", i`,
			),
			want: lines("after 5"),
		},
		{
			name: "for skip finds labeled next",
			code: lines(
				"FOR i = 5 TO 1",
				`PRINT "inside"`,
				"bottom: NEXT i",
				`PRINT "after"`,
			),
			want: lines("after"),
		},
		{
			name: "for counts down",
			code: lines("FOR i = 3 TO 1 STEP -1", "PRINT i", "NEXT i"),
			want: lines("3", "2", "1"),
		},
		{
			name: "for with float step",
			code: lines("FOR x% = 0 TO 1 STEP 0.25", "PRINT x%", "NEXT x%"),
			want: lines("0.0", "0.25", "0.5", "0.75", "1.0"),
		},
		{
			name: "nested for",
			code: lines(
				"FOR i = 1 TO 2",
				"FOR j = 1 TO 2",
				"PRINT i, j",
				"NEXT j",
				"NEXT i",
			),
			want: lines("11", "12", "21", "22"),
		},
		{
			name: "for bounds are evaluated once",
			code: lines(
				"n = 3",
				"FOR i = 1 TO n",
				"n = 10",
				"PRINT i",
				"NEXT i",
			),
			want: lines("1", "2", "3"),
		},
		{
			name: "gosub returns after the call inside a loop",
			code: lines(
				"FOR i = 1 TO 3",
				"GOSUB show",
				"NEXT i",
				"END",
				`show: PRINT "i=", i`,
				"RETURN",
			),
			want: lines("i=1", "i=2", "i=3"),
		},
		{
			name: "nested gosub",
			code: lines(
				"GOSUB a",
				`PRINT "main"`,
				"END",
				"a: GOSUB b",
				`PRINT "a"`,
				"RETURN",
				`b: PRINT "b"`,
				"RETURN",
			),
			want: lines("b", "a", "main"),
		},
		{
			name: "if jumps only when true",
			code: lines(
				"x = 5",
				"IF x > 3 THEN big",
				`PRINT "small"`,
				"big: IF x > 10 THEN huge",
				`PRINT "not huge"`,
				"huge: END",
			),
			want: lines("not huge"),
		},
		{
			name: "while loop",
			code: lines(
				"i = 0",
				"WHILE i < 3 done",
				"PRINT i",
				"i = i + 1",
				`done: PRINT "done"`,
			),
			want: lines("0", "1", "2", "done"),
		},
		{
			name: "while false on entry",
			code: lines(
				"i = 5",
				"WHILE i < 3 done",
				`PRINT "body"`,
				`done: PRINT "after"`,
			),
			want: lines("after"),
		},
		{
			name: "nested while",
			code: lines(
				"i = 0",
				"WHILE i < 3 outer",
				"j = 0",
				"WHILE j < 2 inner",
				"PRINT i, j",
				"j = j + 1",
				"inner: i = i + 1",
				`outer: PRINT "done"`,
			),
			want: lines("00", "01", "10", "11", "20", "21", "done"),
		},
		{
			name: "end halts with frames active",
			code: lines("GOSUB s", `PRINT "unreached"`, "s: END"),
			want: "",
		},
		{
			name: "running off the end inside a subroutine",
			code: lines(`PRINT "start"`, "GOSUB s", "s: PRINT \"sub\""),
			want: lines("start", "sub"),
		},
		{
			name:  "input with literal prompt",
			code:  lines(`INPUT "Name?", n$, age, h%`, `PRINT n$, " ", age, " ", h%`),
			input: []string{"Bob", " 42", "1.5 "},
			want:  lines("Name?", "Bob 42 1.5"),
		},
		{
			name:  "input with variable prompt",
			code:  lines(`p$ = "Go:"`, "INPUT p$, x", "PRINT x * 2"),
			input: []string{"7"},
			want:  lines("Go:", "14"),
		},
		{
			name:  "input without prompt",
			code:  lines("INPUT s$", "PRINT s$"),
			input: []string{"hello world"},
			want:  lines("hello world"),
		},
		{
			name:  "string input keeps surrounding whitespace",
			code:  lines("INPUT s$", `PRINT "[", s$, "]"`),
			input: []string{"  hi  "},
			want:  lines("[  hi  ]"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := mustRun(t, tt.code, tt.input...)
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestReadAssignsTypedValues(t *testing.T) {
	_, interp := mustRun(t, lines(`DATA 1, 13.5, "text"`, "READ a, b%, c$"))
	env := interp.Env()

	want := map[string]types.Value{
		"a":  types.NewInt(1),
		"b%": types.NewFloat(13.5),
		"c$": types.NewStr("text"),
	}
	for name, w := range want {
		got, ok := env.Get(name)
		if !ok {
			t.Errorf("%s not set", name)
			continue
		}
		if !got.Equal(w) {
			t.Errorf("%s = %v (%s), want %v (%s)", name, got, got.Type(), w, w.Type())
		}
	}
}

func TestFizzBuzz(t *testing.T) {
	code := lines(
		"FOR i = 1 TO 100",
		"GOSUB classify",
		"NEXT i",
		"END",
		"classify: f = i - (i / 3) * 3",
		"b = i - (i / 5) * 5",
		"IF f + b = 0 THEN fizzbuzz",
		"IF f = 0 THEN fizz",
		"IF b = 0 THEN buzz",
		"PRINT i",
		"RETURN",
		`fizzbuzz: PRINT "FizzBuzz"`,
		"RETURN",
		`fizz: PRINT "Fizz"`,
		"RETURN",
		`buzz: PRINT "Buzz"`,
		"RETURN",
	)

	var want strings.Builder
	for i := 1; i <= 100; i++ {
		switch {
		case i%15 == 0:
			want.WriteString("FizzBuzz\n")
		case i%3 == 0:
			want.WriteString("Fizz\n")
		case i%5 == 0:
			want.WriteString("Buzz\n")
		default:
			fmt.Fprintf(&want, "%d\n", i)
		}
	}

	out, _ := mustRun(t, code)
	if out != want.String() {
		t.Errorf("FizzBuzz output mismatch:\ngot:\n%s\nwant:\n%s", out, want.String())
	}
	if n := strings.Count(out, "\n"); n != 100 {
		t.Errorf("got %d lines, want 100", n)
	}
}

func TestCollatz(t *testing.T) {
	code := lines(
		`INPUT "Start:", n`,
		"steps = 0",
		"WHILE n <> 1 done",
		"GOSUB collatz",
		"steps = steps + 1",
		`done: PRINT steps, " steps."`,
		"END",
		"collatz: half = n / 2",
		"IF half * 2 = n THEN even",
		"n = 3 * n + 1",
		"RETURN",
		"even: n = half",
		"RETURN",
	)

	tests := []struct {
		start string
		want  string
	}{
		{"3", "Start:\n7 steps.\n"},
		{"1", "Start:\n0 steps.\n"},
		{"6", "Start:\n8 steps.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			out, _ := mustRun(t, code, tt.start)
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		input []string
		want  types.ErrorCode
		line  int
	}{
		{"int target rejects float", "x = 1.5", nil, types.E_TYPE, 1},
		{"string target rejects number", "s$ = 5", nil, types.E_TYPE, 1},
		{"float target rejects string", `x% = "a"`, nil, types.E_TYPE, 1},
		{"unknown gosub label", "GOSUB nowhere", nil, types.E_LABEL, 1},
		{"unknown if label", "IF 1 = 1 THEN nowhere", nil, types.E_LABEL, 1},
		{"return without gosub", "RETURN", nil, types.E_STACK, 1},
		{"return inside for", "FOR i = 1 TO 2\nRETURN", nil, types.E_STACK, 2},
		{"next without for", "NEXT i", nil, types.E_STACK, 1},
		{"next for other variable", "FOR i = 1 TO 2\nNEXT j", nil, types.E_STACK, 2},
		{"out of data", "DATA 1\nREAD a, b", nil, types.E_DATA, 2},
		{"read type mismatch", "DATA \"s\"\nREAD a", nil, types.E_TYPE, 2},
		{"while without end label", "WHILE 1 > 2 missing", nil, types.E_NOMATCH, 1},
		{"while end label before loop", "top: PRINT\nWHILE 1 > 2 top", nil, types.E_NOMATCH, 2},
		{"for without next", "FOR i = 1 TO 0\nPRINT i", nil, types.E_NOMATCH, 1},
		{"zero step", "FOR i = 1 TO 5 STEP 0", nil, types.E_INVARG, 1},
		{"int loop with float step", "FOR i = 1 TO 2 STEP 0.5\nNEXT i", nil, types.E_TYPE, 2},
		{"input exhausted", "INPUT n", nil, types.E_INPUT, 1},
		{"input malformed int", "INPUT n", []string{"abc"}, types.E_INPUT, 1},
		{"input float for int", "INPUT n", []string{"1.5"}, types.E_INPUT, 1},
		{"input malformed float", "INPUT n%", []string{"x1"}, types.E_INPUT, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runProgram(t, tt.code, tt.input...)
			var re *RuntimeError
			if !errors.As(err, &re) {
				t.Fatalf("Run error = %v, want *RuntimeError", err)
			}
			if re.Code != tt.want {
				t.Errorf("code = %s, want %s (%v)", re.Code, tt.want, err)
			}
			if re.Pos.Line != tt.line {
				t.Errorf("line = %d, want %d (%v)", re.Pos.Line, tt.line, err)
			}
		})
	}
}

func TestUnknownLabelSuggestion(t *testing.T) {
	tests := []struct {
		name string
		code string
		hint string
	}{
		{"subsequence", "GOSUB prnt\nEND\nprint_line: RETURN", "did you mean print_line?"},
		{"typo", "GOSUB lopo\nEND\nloop: RETURN", "did you mean loop?"},
		{"nothing close", "GOSUB zzzzzz\nEND\nloop: RETURN", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runProgram(t, tt.code)
			var re *RuntimeError
			if !errors.As(err, &re) || re.Code != types.E_LABEL {
				t.Fatalf("Run error = %v, want E_LABEL", err)
			}
			if tt.hint == "" {
				if strings.Contains(re.Msg, "did you mean") {
					t.Errorf("message = %q, want no suggestion", re.Msg)
				}
				return
			}
			if !strings.Contains(re.Msg, tt.hint) {
				t.Errorf("message = %q, want it to contain %q", re.Msg, tt.hint)
			}
		})
	}
}

func TestTracebackThroughGosub(t *testing.T) {
	_, _, err := runProgram(t, lines("GOSUB outer", "END", "outer: GOSUB inner", "RETURN", "inner: x = 1 / 0"))
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("Run error = %v, want *RuntimeError", err)
	}
	want := []string{
		"5:11: E_DIV: division by zero",
		"... called from GOSUB inner at 3:7",
		"... called from GOSUB outer at 1:0",
		"(End of traceback)",
	}
	got := FormatTraceback(re)
	if len(got) != len(want) {
		t.Fatalf("traceback = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTracebackWithoutGosub(t *testing.T) {
	_, _, err := runProgram(t, "PRINT y")
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("Run error = %v, want *RuntimeError", err)
	}
	if got := FormatTracebackString(re); got != "1:6: E_VARNF: variable y is not set" {
		t.Errorf("traceback = %q", got)
	}
}
