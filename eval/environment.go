package eval

import (
	"basic/types"
	"sort"
)

// Environment holds the three variable stores. The sigil of a name picks
// its store, so x, x% and x$ are distinct variables.
type Environment struct {
	ints   map[string]int32
	floats map[string]float32
	strs   map[string]string
}

// NewEnvironment creates empty stores
func NewEnvironment() *Environment {
	return &Environment{
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		strs:   make(map[string]string),
	}
}

// Get looks up a variable by name
// Returns (value, true) if set, (nil, false) if not
func (e *Environment) Get(name string) (types.Value, bool) {
	switch types.TypeOfName(name) {
	case types.TYPE_FLOAT:
		v, ok := e.floats[name]
		if !ok {
			return nil, false
		}
		return types.NewFloat(v), true
	case types.TYPE_STR:
		v, ok := e.strs[name]
		if !ok {
			return nil, false
		}
		return types.NewStr(v), true
	default:
		v, ok := e.ints[name]
		if !ok {
			return nil, false
		}
		return types.NewInt(v), true
	}
}

// Set assigns a value, enforcing the type implied by the name.
// Float variables also accept integers.
func (e *Environment) Set(name string, value types.Value) error {
	want := types.TypeOfName(name)
	switch want {
	case types.TYPE_FLOAT:
		switch v := value.(type) {
		case types.FloatValue:
			e.floats[name] = v.Val
			return nil
		case types.IntValue:
			e.floats[name] = float32(v.Val)
			return nil
		}
	case types.TYPE_STR:
		if v, ok := value.(types.StrValue); ok {
			e.strs[name] = v.Value()
			return nil
		}
	default:
		if v, ok := value.(types.IntValue); ok {
			e.ints[name] = v.Val
			return nil
		}
	}
	return types.NewError(types.E_TYPE, "cannot assign %s value to %s variable %s", value.Type(), want, name)
}

// Names returns every set variable name in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.ints)+len(e.floats)+len(e.strs))
	for name := range e.ints {
		names = append(names, name)
	}
	for name := range e.floats {
		names = append(names, name)
	}
	for name := range e.strs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
