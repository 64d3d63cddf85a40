package builtins

import "basic/types"

// Positions and lengths count characters, not bytes.

// builtinLeft returns the first n characters of s
// LEFT$(s, n) -> str
func builtinLeft(ctx *Context, args []types.Value) (types.Value, error) {
	if err := argCount("LEFT$", args, 2); err != nil {
		return nil, err
	}
	s, err := strArg("LEFT$", args[0])
	if err != nil {
		return nil, err
	}
	n, err := intArg("LEFT$", args[1])
	if err != nil {
		return nil, err
	}

	runes := []rune(s)
	if n < 0 || int(n) > len(runes) {
		return nil, types.NewError(types.E_RANGE, "LEFT$ count %d out of range for length %d", n, len(runes))
	}
	return types.NewStr(string(runes[:n])), nil
}

// builtinRight returns the last n characters of s
// RIGHT$(s, n) -> str
func builtinRight(ctx *Context, args []types.Value) (types.Value, error) {
	if err := argCount("RIGHT$", args, 2); err != nil {
		return nil, err
	}
	s, err := strArg("RIGHT$", args[0])
	if err != nil {
		return nil, err
	}
	n, err := intArg("RIGHT$", args[1])
	if err != nil {
		return nil, err
	}

	runes := []rune(s)
	if n < 0 || int(n) > len(runes) {
		return nil, types.NewError(types.E_RANGE, "RIGHT$ count %d out of range for length %d", n, len(runes))
	}
	return types.NewStr(string(runes[len(runes)-int(n):])), nil
}

// builtinMid returns n characters of s starting at the 0-based index start
// MID$(s, start, n) -> str
func builtinMid(ctx *Context, args []types.Value) (types.Value, error) {
	if err := argCount("MID$", args, 3); err != nil {
		return nil, err
	}
	s, err := strArg("MID$", args[0])
	if err != nil {
		return nil, err
	}
	start, err := intArg("MID$", args[1])
	if err != nil {
		return nil, err
	}
	n, err := intArg("MID$", args[2])
	if err != nil {
		return nil, err
	}

	runes := []rune(s)
	if start < 0 || n < 0 || int64(start)+int64(n) > int64(len(runes)) {
		return nil, types.NewError(types.E_RANGE, "MID$ range %d+%d out of range for length %d", start, n, len(runes))
	}
	return types.NewStr(string(runes[start : start+n])), nil
}

func strArg(name string, v types.Value) (string, error) {
	s, ok := v.(types.StrValue)
	if !ok {
		return "", types.NewError(types.E_TYPE, "%s expects a string, got %s", name, v.Type())
	}
	return s.Value(), nil
}

func intArg(name string, v types.Value) (int32, error) {
	i, ok := v.(types.IntValue)
	if !ok {
		return 0, types.NewError(types.E_TYPE, "%s expects an integer, got %s", name, v.Type())
	}
	return i.Val, nil
}
