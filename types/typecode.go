package types

// TypeCode identifies the runtime type of a value
type TypeCode int

const (
	TYPE_INT   TypeCode = 0
	TYPE_FLOAT TypeCode = 1
	TYPE_STR   TypeCode = 2
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_INT:
		return "INT"
	case TYPE_FLOAT:
		return "FLOAT"
	case TYPE_STR:
		return "STR"
	default:
		return "UNKNOWN"
	}
}

// Sigil returns the variable-name suffix that selects this type
func (t TypeCode) Sigil() string {
	switch t {
	case TYPE_FLOAT:
		return "%"
	case TYPE_STR:
		return "$"
	default:
		return ""
	}
}

// TypeOfName returns the type a variable name is bound to by its sigil:
// a trailing % is float, a trailing $ is string, anything else is integer.
func TypeOfName(name string) TypeCode {
	if name == "" {
		return TYPE_INT
	}
	switch name[len(name)-1] {
	case '%':
		return TYPE_FLOAT
	case '$':
		return TYPE_STR
	default:
		return TYPE_INT
	}
}
