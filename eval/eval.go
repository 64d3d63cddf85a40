package eval

import (
	"basic/parser"
	"basic/types"
)

// evalExpr evaluates any expression to a value. Every expression kind goes
// through here, including string literals in PRINT, DATA and call arguments.
func (in *Interpreter) evalExpr(expr parser.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *parser.IntLiteral:
		return types.NewInt(e.Val), nil
	case *parser.FloatLiteral:
		return types.NewFloat(e.Val), nil
	case *parser.StringLiteral:
		return types.NewStr(e.Val), nil
	case *parser.VariableExpr:
		return in.evalVariable(e)
	case *parser.ArithExpr:
		return in.evalArith(e)
	case *parser.CompareExpr:
		ok, err := in.evalCondition(e)
		if err != nil {
			return nil, err
		}
		if ok {
			return types.NewInt(1), nil
		}
		return types.NewInt(0), nil
	case *parser.CallExpr:
		return in.evalCall(e)
	default:
		return nil, in.errorAt(expr.Position(), types.E_TYPE, "cannot evaluate %T", expr)
	}
}

// evalVariable looks up a variable in the store its sigil selects
// Returns E_VARNF if the variable has never been assigned
func (in *Interpreter) evalVariable(e *parser.VariableExpr) (types.Value, error) {
	v, ok := in.env.Get(e.Name)
	if !ok {
		return nil, in.errorAt(e.Pos, types.E_VARNF, "variable %s is not set", e.Name)
	}
	return v, nil
}

func (in *Interpreter) evalArith(e *parser.ArithExpr) (types.Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	v, err := evalArith(e.Operator, left, right)
	if err != nil {
		return nil, in.wrap(e.Pos, err)
	}
	return v, nil
}

// evalCondition evaluates the comparison of an IF or WHILE
func (in *Interpreter) evalCondition(c *parser.CompareExpr) (bool, error) {
	left, err := in.evalExpr(c.Left)
	if err != nil {
		return false, err
	}
	right, err := in.evalExpr(c.Right)
	if err != nil {
		return false, err
	}
	ok, err := evalCompare(c.Operator, left, right)
	if err != nil {
		return false, in.wrap(c.Pos, err)
	}
	return ok, nil
}

// evalCall evaluates arguments left to right and invokes the builtin
func (in *Interpreter) evalCall(e *parser.CallExpr) (types.Value, error) {
	args := make([]types.Value, len(e.Args))
	for i, arg := range e.Args {
		v, err := in.evalExpr(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	v, err := in.builtins.Call(in.bctx, parser.Spelling(e.Function), args)
	if err != nil {
		return nil, in.wrap(e.Pos, err)
	}
	return v, nil
}
