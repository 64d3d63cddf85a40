package types

// ErrorCode identifies the kind of a runtime failure (E_TYPE, E_DIV, etc.)
type ErrorCode int

const (
	E_NONE     ErrorCode = 0
	E_TYPE     ErrorCode = 1
	E_DIV      ErrorCode = 2
	E_VARNF    ErrorCode = 3
	E_RANGE    ErrorCode = 4
	E_ARGS     ErrorCode = 5
	E_INVARG   ErrorCode = 6
	E_LABEL    ErrorCode = 7
	E_DUPLABEL ErrorCode = 8
	E_STACK    ErrorCode = 9
	E_NOMATCH  ErrorCode = 10
	E_DATA     ErrorCode = 11
	E_INPUT    ErrorCode = 12
	E_MAXSTEPS ErrorCode = 13
)

// String returns the symbolic name of an error code
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_TYPE:
		return "E_TYPE"
	case E_DIV:
		return "E_DIV"
	case E_VARNF:
		return "E_VARNF"
	case E_RANGE:
		return "E_RANGE"
	case E_ARGS:
		return "E_ARGS"
	case E_INVARG:
		return "E_INVARG"
	case E_LABEL:
		return "E_LABEL"
	case E_DUPLABEL:
		return "E_DUPLABEL"
	case E_STACK:
		return "E_STACK"
	case E_NOMATCH:
		return "E_NOMATCH"
	case E_DATA:
		return "E_DATA"
	case E_INPUT:
		return "E_INPUT"
	case E_MAXSTEPS:
		return "E_MAXSTEPS"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "No error"
	case E_TYPE:
		return "Type mismatch"
	case E_DIV:
		return "Division by zero"
	case E_VARNF:
		return "Variable not found"
	case E_RANGE:
		return "Range error"
	case E_ARGS:
		return "Incorrect number of arguments"
	case E_INVARG:
		return "Invalid argument"
	case E_LABEL:
		return "Label not found"
	case E_DUPLABEL:
		return "Duplicate label"
	case E_STACK:
		return "Frame stack mismatch"
	case E_NOMATCH:
		return "Loop terminator not found"
	case E_DATA:
		return "Out of data"
	case E_INPUT:
		return "Invalid input"
	case E_MAXSTEPS:
		return "Step limit exceeded"
	default:
		return "Unknown error"
	}
}

// ErrorFromString converts a string like "E_TYPE" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	for code := E_NONE; code <= E_MAXSTEPS; code++ {
		if code.String() == s {
			return code, true
		}
	}
	return E_NONE, false
}

// Value is the interface all BASIC runtime values implement
type Value interface {
	Type() TypeCode
	String() string   // PRINT representation
	Equal(Value) bool // Same type and same value
}
