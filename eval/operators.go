package eval

import (
	"basic/parser"
	"basic/types"
	"cmp"
	"math"
)

// ============================================================================
// ARITHMETIC OPERATORS
// ============================================================================

// evalArith implements + - * /
// INT op INT stays 32-bit and wraps; any FLOAT operand promotes both to FLOAT.
// Strings are not arithmetic operands.
func evalArith(op parser.TokenType, left, right types.Value) (types.Value, error) {
	li, lInt := left.(types.IntValue)
	ri, rInt := right.(types.IntValue)
	if lInt && rInt {
		return intArith(op, li.Val, ri.Val)
	}

	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if !lok || !rok {
		return nil, types.NewError(types.E_TYPE, "cannot apply %s to %s and %s",
			parser.Spelling(op), left.Type(), right.Type())
	}
	return floatArith(op, lf, rf)
}

func intArith(op parser.TokenType, a, b int32) (types.Value, error) {
	switch op {
	case parser.TOKEN_PLUS:
		return types.NewInt(a + b), nil
	case parser.TOKEN_MINUS:
		return types.NewInt(a - b), nil
	case parser.TOKEN_STAR:
		return types.NewInt(a * b), nil
	case parser.TOKEN_SLASH:
		if b == 0 {
			return nil, types.NewError(types.E_DIV, "division by zero")
		}
		return types.NewInt(a / b), nil
	default:
		return nil, types.NewError(types.E_TYPE, "unknown arithmetic operator %s", op)
	}
}

// floatArith rounds every result to float32; division by zero follows IEEE
func floatArith(op parser.TokenType, a, b float32) (types.Value, error) {
	switch op {
	case parser.TOKEN_PLUS:
		return types.NewFloat(float32(a + b)), nil
	case parser.TOKEN_MINUS:
		return types.NewFloat(float32(a - b)), nil
	case parser.TOKEN_STAR:
		return types.NewFloat(float32(a * b)), nil
	case parser.TOKEN_SLASH:
		return types.NewFloat(float32(a / b)), nil
	default:
		return nil, types.NewError(types.E_TYPE, "unknown arithmetic operator %s", op)
	}
}

// toFloat promotes a numeric value
func toFloat(v types.Value) (float32, bool) {
	switch n := v.(type) {
	case types.IntValue:
		return float32(n.Val), true
	case types.FloatValue:
		return n.Val, true
	default:
		return 0, false
	}
}

// ============================================================================
// COMPARISON OPERATORS
// ============================================================================

// evalCompare implements = < > <= >= <>
// Numbers compare after promotion; strings are not comparable.
func evalCompare(op parser.TokenType, left, right types.Value) (bool, error) {
	li, lInt := left.(types.IntValue)
	ri, rInt := right.(types.IntValue)
	if lInt && rInt {
		return compareOrdered(op, li.Val, ri.Val)
	}

	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if !lok || !rok {
		return false, types.NewError(types.E_TYPE, "cannot compare %s and %s with %s",
			left.Type(), right.Type(), parser.Spelling(op))
	}
	return compareOrdered(op, lf, rf)
}

func compareOrdered[T cmp.Ordered](op parser.TokenType, a, b T) (bool, error) {
	switch op {
	case parser.TOKEN_EQ:
		return a == b, nil
	case parser.TOKEN_LT:
		return a < b, nil
	case parser.TOKEN_GT:
		return a > b, nil
	case parser.TOKEN_LE:
		return a <= b, nil
	case parser.TOKEN_GE:
		return a >= b, nil
	case parser.TOKEN_NE:
		return a != b, nil
	default:
		return false, types.NewError(types.E_TYPE, "unknown comparison operator %s", op)
	}
}

// ============================================================================
// LOOP HELPERS
// ============================================================================

// stepSign reports the direction of a FOR step: -1, 0 or 1
func stepSign(step types.Value) (int, error) {
	switch s := step.(type) {
	case types.IntValue:
		return cmp.Compare(s.Val, 0), nil
	case types.FloatValue:
		if math.IsNaN(float64(s.Val)) {
			return 0, types.NewError(types.E_INVARG, "FOR step is NaN")
		}
		return cmp.Compare(s.Val, 0), nil
	default:
		return 0, types.NewError(types.E_TYPE, "FOR step must be a number, got %s", step.Type())
	}
}

// pastEnd reports whether a loop variable has moved beyond end in the
// direction of step
func pastEnd(value, end, step types.Value) (bool, error) {
	sign, err := stepSign(step)
	if err != nil {
		return false, err
	}
	if sign < 0 {
		return evalCompare(parser.TOKEN_LT, value, end)
	}
	return evalCompare(parser.TOKEN_GT, value, end)
}
