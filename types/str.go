package types

// StrValue represents a BASIC string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the raw string; PRINT emits strings verbatim
func (s StrValue) String() string {
	return s.val
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Equal compares two values for equality (case-sensitive)
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
