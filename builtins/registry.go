package builtins

import (
	"basic/types"
	"math/rand/v2"
	"sort"
)

// Context carries what builtins may draw on besides their arguments
type Context struct {
	Rand *rand.Rand // nil uses the package-level source
}

// BuiltinFunc is a function type for builtin functions.
// Failures are returned as *types.Error.
type BuiltinFunc func(ctx *Context, args []types.Value) (types.Value, error)

// Registry holds all registered builtin functions, keyed by their
// upper-case source spelling (LEFT$, VAL%, ...)
type Registry struct {
	funcs map[string]BuiltinFunc
}

// NewRegistry creates a new builtin function registry
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]BuiltinFunc),
	}

	// String builtins
	r.Register("LEFT$", builtinLeft)
	r.Register("RIGHT$", builtinRight)
	r.Register("MID$", builtinMid)

	// Conversion builtins
	r.Register("NUM$", builtinNum)
	r.Register("VAL", builtinVal)
	r.Register("VAL%", builtinValFloat)

	// Math builtins
	r.Register("RANDOM", builtinRandom)

	return r
}

// Register adds a builtin function to the registry
func (r *Registry) Register(name string, fn BuiltinFunc) {
	r.funcs[name] = fn
}

// Get retrieves a builtin function by name
func (r *Registry) Get(name string) (BuiltinFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Call invokes a builtin by name
func (r *Registry) Call(ctx *Context, name string, args []types.Value) (types.Value, error) {
	fn, ok := r.Get(name)
	if !ok {
		return nil, types.NewError(types.E_INVARG, "unknown function %s", name)
	}
	return fn(ctx, args)
}

// Names returns the registered function names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// argCount checks the number of arguments a builtin received
func argCount(name string, args []types.Value, want int) error {
	if len(args) != want {
		return types.NewError(types.E_ARGS, "%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}
