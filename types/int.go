package types

import "strconv"

// IntValue represents a BASIC integer (32-bit, wrapping)
type IntValue struct {
	Val int32
}

// Type returns the type code for integers
func (i IntValue) Type() TypeCode {
	return TYPE_INT
}

// String returns the decimal representation
func (i IntValue) String() string {
	return strconv.FormatInt(int64(i.Val), 10)
}

// Equal checks equality
func (i IntValue) Equal(other Value) bool {
	o, ok := other.(IntValue)
	return ok && i.Val == o.Val
}

// NewInt creates a new IntValue
func NewInt(val int32) IntValue {
	return IntValue{Val: val}
}
