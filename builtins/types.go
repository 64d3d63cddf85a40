package builtins

import (
	"basic/types"
	"strconv"
	"strings"
)

// builtinNum converts a number to its printed form
// NUM$(x) -> str
func builtinNum(ctx *Context, args []types.Value) (types.Value, error) {
	if err := argCount("NUM$", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case types.IntValue, types.FloatValue:
		return types.NewStr(v.String()), nil
	default:
		return nil, types.NewError(types.E_TYPE, "NUM$ expects a number, got %s", v.Type())
	}
}

// builtinVal parses a string as an integer
// VAL(s) -> int
func builtinVal(ctx *Context, args []types.Value) (types.Value, error) {
	if err := argCount("VAL", args, 1); err != nil {
		return nil, err
	}
	s, err := strArg("VAL", args[0])
	if err != nil {
		return nil, err
	}
	i, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if perr != nil {
		return nil, types.NewError(types.E_INVARG, "VAL cannot convert %q to an integer", s)
	}
	return types.NewInt(int32(i)), nil
}

// builtinValFloat parses a string as a float
// VAL%(s) -> float
func builtinValFloat(ctx *Context, args []types.Value) (types.Value, error) {
	if err := argCount("VAL%", args, 1); err != nil {
		return nil, err
	}
	s, err := strArg("VAL%", args[0])
	if err != nil {
		return nil, err
	}
	f, perr := ParseFloat(s)
	if perr != nil {
		return nil, types.NewError(types.E_INVARG, "VAL%% cannot convert %q to a float", s)
	}
	return types.NewFloat(f), nil
}

// ParseFloat parses trimmed text as a 32-bit float. Out-of-range values
// become infinities rather than errors.
func ParseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return float32(f), nil
		}
		return 0, err
	}
	return float32(f), nil
}
