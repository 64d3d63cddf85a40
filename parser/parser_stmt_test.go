package parser

import "testing"

func TestParseStatements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PRINT", "PRINT"},
		{`PRINT "a", v$, 2`, `PRINT "a", v$, 2`},
		{`DATA 1, 13.5, "s"`, `DATA 1, 13.5, "s"`},
		{"DATA -1, 2 + 3", "DATA -1, (2+3)"},
		{"READ a, b%, c$", "READ a, b%, c$"},
		{`INPUT "p", a`, `INPUT "p", a`},
		{"INPUT p$, a, b%", "INPUT p$, a, b%"},
		{"INPUT a, b", "INPUT a, b"},
		{"INPUT s$", "INPUT s$"},
		{"IF a < b THEN done", "IF a<b THEN done"},
		{"IF a + 1 >= b * 2 THEN done", "IF (a+1)>=(b*2) THEN done"},
		{"WHILE x <> 0 finished", "WHILE x<>0 finished"},
		{"FOR i = 1 TO 10", "FOR i = 1 TO 10 STEP 1"},
		{"FOR i = 10 TO 1 STEP -1", "FOR i = 10 TO 1 STEP -1"},
		{"FOR x% = 0 TO n / 2 STEP 0.5", "FOR x% = 0 TO (n/2) STEP 0.5"},
		{"NEXT i", "NEXT i"},
		{"GOSUB sub", "GOSUB sub"},
		{"RETURN", "RETURN"},
		{"END", "END"},
		{"top: PRINT x", "top: PRINT x"},
		{"here:\n\n  x = 1", "here: x=1"},
		{`s$ = "text"`, `s$="text"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog := mustParse(t, tt.input)
			if len(prog.Statements) != 1 {
				t.Fatalf("got %d statements, want 1", len(prog.Statements))
			}
			if got := prog.Statements[0].String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInputPrompt(t *testing.T) {
	tests := []struct {
		input      string
		wantPrompt string // "" for none
		targets    int
	}{
		{`INPUT "Name?", n$`, `"Name?"`, 1},
		{"INPUT p$, a", "p$", 1},
		{"INPUT a, p$", "", 2},
		{"INPUT p$", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog := mustParse(t, tt.input)
			stmt, ok := prog.Statements[0].(*InputStmt)
			if !ok {
				t.Fatalf("got %T, want *InputStmt", prog.Statements[0])
			}
			got := ""
			if stmt.Prompt != nil {
				got = stmt.Prompt.String()
			}
			if got != tt.wantPrompt {
				t.Errorf("prompt = %q, want %q", got, tt.wantPrompt)
			}
			if len(stmt.Targets) != tt.targets {
				t.Errorf("got %d targets, want %d", len(stmt.Targets), tt.targets)
			}
		})
	}
}

func TestParseForDefaults(t *testing.T) {
	prog := mustParse(t, "FOR i = 1 TO 3")
	stmt := prog.Statements[0].(*ForStmt)
	step, ok := stmt.Step.(*IntLiteral)
	if !ok || step.Val != 1 {
		t.Errorf("Step = %#v, want IntLiteral 1", stmt.Step)
	}
	if stmt.Variable.Name != "i" {
		t.Errorf("Variable = %q, want i", stmt.Variable.Name)
	}
}

func TestStatementPositions(t *testing.T) {
	prog := mustParse(t, "x = 1\n  PRINT x\nl: END")
	want := []Position{
		{Line: 1, Column: 0, Offset: 0},
		{Line: 2, Column: 2, Offset: 8},
		{Line: 3, Column: 0, Offset: 16},
	}
	for i, w := range want {
		if got := prog.Statements[i].Position(); got != w {
			t.Errorf("statement %d at %+v, want %+v", i, got, w)
		}
	}
	inner := prog.Statements[2].(*LabeledStmt).Stmt
	if got := inner.Position(); got.Line != 3 || got.Column != 3 {
		t.Errorf("END at %s, want 3:3", got)
	}
}
