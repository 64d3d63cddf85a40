package eval

import (
	"basic/builtins"
	"basic/parser"
	"basic/trace"
	"basic/types"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execStmt executes the statement at index and returns the index of the
// statement to run next, -1 to halt
func (in *Interpreter) execStmt(index int, stmt parser.Stmt) (int, error) {
	next := in.prog.Next[index]

	if l, ok := stmt.(*parser.LabeledStmt); ok {
		// Reaching the end label of the innermost WHILE re-tests its condition
		if wf, ok := in.top().(*whileFrame); ok && wf.endLabel == l.Label {
			again, err := in.evalCondition(wf.cond)
			if err != nil {
				return 0, err
			}
			if again {
				target := in.prog.Next[wf.loop]
				trace.Jump("WHILE", index, target, l.Label)
				return target, nil
			}
			in.pop("WHILE")
		}
		stmt = parser.Unwrap(l)
	}

	switch s := stmt.(type) {
	case *parser.AssignStmt:
		return next, in.execAssign(s)
	case *parser.PrintStmt:
		return next, in.execPrint(s)
	case *parser.DataStmt:
		return next, nil
	case *parser.ReadStmt:
		return next, in.execRead(s)
	case *parser.InputStmt:
		return next, in.execInput(s)
	case *parser.IfStmt:
		return in.execIf(index, s)
	case *parser.WhileStmt:
		return in.execWhile(index, s)
	case *parser.ForStmt:
		return in.execFor(index, s)
	case *parser.NextStmt:
		return in.execNext(index, s)
	case *parser.GosubStmt:
		return in.execGosub(index, s)
	case *parser.ReturnStmt:
		return in.execReturn(s)
	case *parser.EndStmt:
		return -1, nil
	default:
		return 0, in.errorAt(stmt.Position(), types.E_TYPE, "cannot execute %T", stmt)
	}
}

// statementKind names a statement for tracing and trace filters
func statementKind(stmt parser.Stmt) string {
	switch parser.Unwrap(stmt).(type) {
	case *parser.AssignStmt:
		return "LET"
	case *parser.PrintStmt:
		return "PRINT"
	case *parser.DataStmt:
		return "DATA"
	case *parser.ReadStmt:
		return "READ"
	case *parser.InputStmt:
		return "INPUT"
	case *parser.IfStmt:
		return "IF"
	case *parser.WhileStmt:
		return "WHILE"
	case *parser.ForStmt:
		return "FOR"
	case *parser.NextStmt:
		return "NEXT"
	case *parser.GosubStmt:
		return "GOSUB"
	case *parser.ReturnStmt:
		return "RETURN"
	case *parser.EndStmt:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// assign stores a value, reporting type mismatches at pos
func (in *Interpreter) assign(pos parser.Position, name string, value types.Value) error {
	if err := in.env.Set(name, value); err != nil {
		return in.wrap(pos, err)
	}
	return nil
}

func (in *Interpreter) execAssign(s *parser.AssignStmt) error {
	value, err := in.evalExpr(s.Value)
	if err != nil {
		return err
	}
	return in.assign(s.Pos, s.Target.Name, value)
}

// execPrint concatenates the printed form of each item and ends the line
func (in *Interpreter) execPrint(s *parser.PrintStmt) error {
	var sb strings.Builder
	for _, item := range s.Items {
		v, err := in.evalExpr(item)
		if err != nil {
			return err
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(in.out, sb.String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// execRead assigns the next DATA item to each target in turn
func (in *Interpreter) execRead(s *parser.ReadStmt) error {
	for _, target := range s.Targets {
		if in.dataPos >= len(in.prog.Data) {
			return in.errorAt(target.Pos, types.E_DATA, "no DATA left for %s", target.Name)
		}
		item := in.prog.Data[in.dataPos]
		in.dataPos++

		v, err := in.evalExpr(item)
		if err != nil {
			return err
		}
		if err := in.assign(target.Pos, target.Name, v); err != nil {
			return err
		}
	}
	return nil
}

// execInput writes the prompt, then reads one line per target
func (in *Interpreter) execInput(s *parser.InputStmt) error {
	if s.Prompt != nil {
		prompt, err := in.evalExpr(s.Prompt)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(in.out, prompt.String()+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	for _, target := range s.Targets {
		if in.input == nil {
			return in.errorAt(target.Pos, types.E_INPUT, "no input available for %s", target.Name)
		}
		line, err := in.input.ReadLine()
		if errors.Is(err, io.EOF) {
			return in.errorAt(target.Pos, types.E_INPUT, "no input available for %s", target.Name)
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		v, err := parseInput(target.Name, line)
		if err != nil {
			return in.wrap(target.Pos, err)
		}
		if err := in.assign(target.Pos, target.Name, v); err != nil {
			return err
		}
	}
	return nil
}

// parseInput converts an input line to the type of the target variable
func parseInput(name, line string) (types.Value, error) {
	switch types.TypeOfName(name) {
	case types.TYPE_STR:
		return types.NewStr(line), nil
	}

	text := strings.TrimSpace(line)
	switch types.TypeOfName(name) {
	case types.TYPE_FLOAT:
		f, err := builtins.ParseFloat(text)
		if err != nil {
			return nil, types.NewError(types.E_INPUT, "%q is not a number for %s", text, name)
		}
		return types.NewFloat(f), nil
	default:
		i, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, types.NewError(types.E_INPUT, "%q is not an integer for %s", text, name)
		}
		return types.NewInt(int32(i)), nil
	}
}

func (in *Interpreter) execIf(index int, s *parser.IfStmt) (int, error) {
	ok, err := in.evalCondition(s.Condition)
	if err != nil {
		return 0, err
	}
	if !ok {
		return in.prog.Next[index], nil
	}
	target, err := in.lookupLabel(s.Pos, s.Label)
	if err != nil {
		return 0, err
	}
	trace.Jump("IF", index, target, s.Label)
	return target, nil
}

// execWhile enters the loop body or skips to the end label
func (in *Interpreter) execWhile(index int, s *parser.WhileStmt) (int, error) {
	ok, err := in.evalCondition(s.Condition)
	if err != nil {
		return 0, err
	}
	if !ok {
		target, found := in.prog.ScanLabel(index, s.EndLabel)
		if !found {
			return 0, in.errorAt(s.Pos, types.E_NOMATCH, "no label %s after WHILE", s.EndLabel)
		}
		trace.Jump("WHILE", index, target, s.EndLabel)
		return target, nil
	}
	in.push("WHILE", &whileFrame{loop: index, cond: s.Condition, endLabel: s.EndLabel})
	return in.prog.Next[index], nil
}

// execFor initializes the loop variable and either enters the body or skips
// past the matching NEXT
func (in *Interpreter) execFor(index int, s *parser.ForStmt) (int, error) {
	start, err := in.evalExpr(s.Start)
	if err != nil {
		return 0, err
	}
	end, err := in.evalExpr(s.End)
	if err != nil {
		return 0, err
	}
	step, err := in.evalExpr(s.Step)
	if err != nil {
		return 0, err
	}

	sign, err := stepSign(step)
	if err != nil {
		return 0, in.wrap(s.Step.Position(), err)
	}
	if sign == 0 {
		return 0, in.errorAt(s.Step.Position(), types.E_INVARG, "FOR step must not be zero")
	}

	name := s.Variable.Name
	if err := in.assign(s.Variable.Pos, name, start); err != nil {
		return 0, err
	}
	current, _ := in.env.Get(name)

	done, err := pastEnd(current, end, step)
	if err != nil {
		return 0, in.wrap(s.Pos, err)
	}
	if done {
		target, found := in.prog.ScanNext(index, name)
		if !found {
			return 0, in.errorAt(s.Pos, types.E_NOMATCH, "no NEXT %s after FOR", name)
		}
		resume := in.prog.Next[target]
		trace.Jump("FOR", index, resume, "")
		return resume, nil
	}

	in.push("FOR", &forFrame{loop: index, variable: name, end: end, step: step})
	return in.prog.Next[index], nil
}

// execNext advances the innermost FOR loop
func (in *Interpreter) execNext(index int, s *parser.NextStmt) (int, error) {
	name := s.Variable.Name
	f, ok := in.top().(*forFrame)
	if !ok || f.variable != name {
		return 0, in.errorAt(s.Pos, types.E_STACK, "NEXT %s without matching FOR", name)
	}

	current, ok := in.env.Get(name)
	if !ok {
		return 0, in.errorAt(s.Variable.Pos, types.E_VARNF, "variable %s is not set", name)
	}
	advanced, err := evalArith(parser.TOKEN_PLUS, current, f.step)
	if err != nil {
		return 0, in.wrap(s.Pos, err)
	}
	if err := in.assign(s.Variable.Pos, name, advanced); err != nil {
		return 0, err
	}
	current, _ = in.env.Get(name)

	done, err := pastEnd(current, f.end, f.step)
	if err != nil {
		return 0, in.wrap(s.Pos, err)
	}
	if done {
		in.pop("NEXT")
		return in.prog.Next[index], nil
	}
	target := in.prog.Next[f.loop]
	trace.Jump("NEXT", index, target, "")
	return target, nil
}

func (in *Interpreter) execGosub(index int, s *parser.GosubStmt) (int, error) {
	target, err := in.lookupLabel(s.Pos, s.Label)
	if err != nil {
		return 0, err
	}
	in.push("GOSUB", &returnFrame{ret: in.prog.Next[index], label: s.Label, pos: s.Pos})
	trace.Jump("GOSUB", index, target, s.Label)
	return target, nil
}

func (in *Interpreter) execReturn(s *parser.ReturnStmt) (int, error) {
	switch f := in.top().(type) {
	case nil:
		return 0, in.errorAt(s.Pos, types.E_STACK, "RETURN without GOSUB")
	case *returnFrame:
		in.pop("RETURN")
		return f.ret, nil
	default:
		return 0, in.errorAt(s.Pos, types.E_STACK, "RETURN inside unfinished %s", f)
	}
}
