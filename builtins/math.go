package builtins

import (
	"basic/types"
	"math/rand/v2"
)

// builtinRandom returns a non-negative random integer
// RANDOM() -> int
func builtinRandom(ctx *Context, args []types.Value) (types.Value, error) {
	if err := argCount("RANDOM", args, 0); err != nil {
		return nil, err
	}
	if ctx != nil && ctx.Rand != nil {
		return types.NewInt(ctx.Rand.Int32()), nil
	}
	return types.NewInt(rand.Int32()), nil
}
