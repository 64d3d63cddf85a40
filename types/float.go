package types

import (
	"math"
	"strconv"
	"strings"
)

// FloatValue represents a BASIC float (single precision)
type FloatValue struct {
	Val float32
}

// Type returns the type code for floats
func (f FloatValue) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the PRINT representation
func (f FloatValue) String() string {
	return FormatFloat(f.Val)
}

// Equal checks equality; NaN is never equal to anything
func (f FloatValue) Equal(other Value) bool {
	o, ok := other.(FloatValue)
	return ok && f.Val == o.Val
}

// NewFloat creates a new FloatValue
func NewFloat(val float32) FloatValue {
	return FloatValue{Val: val}
}

// FormatFloat renders a float32 with the shortest digits that round-trip at
// single precision. Magnitudes in [1e-3, 1e7) print in plain decimal with at
// least one fractional digit (3.0, -0.1400001); everything else prints in
// scientific form with an unsigned mantissa fraction (1.0E7, 1.5E-4).
func FormatFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, 32) // 1.5E-04, 1E+07
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "E" + strconv.Itoa(e)
}
