// Package value implements the four-variant value model used throughout the
// mini language: null, number (64-bit float), string, and bool.
//
// Values are immutable once constructed and copied by value between layers.
// Coercions (AsString, AsNumber, AsBool) report failure through a second
// return value rather than erroring; "no conversion" is a normal outcome.
package value

import "strconv"

// Kind tags which of the four alternatives a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
)

// Pre-computed kind name lookup, also the vocabulary of declared
// parameter types (plus "any").
var kindNames = [...]string{
	KindNull:   "null",
	KindNumber: "number",
	KindString: "string",
	KindBool:   "bool",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a tagged union. Only the payload field selected by Kind is
// meaningful; the zero Value is null.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Number wraps a float64.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// String wraps a string.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IsNull reports whether the value holds the null alternative.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// TypeName returns one of "null", "number", "string", "bool".
func (v Value) TypeName() string { return v.Kind.String() }

// AsString converts the value to text. Numbers format with minimal digits
// (trailing zeros dropped), booleans become "true"/"false". Null does not
// convert.
func (v Value) AsString() (string, bool) {
	switch v.Kind {
	case KindString:
		return v.Str, true
	case KindNumber:
		return FormatNumber(v.Num), true
	case KindBool:
		if v.Bool {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// AsNumber converts the value to a float64. Text converts only when the
// entire string is a valid decimal numeral. Null and bool do not convert.
func (v Value) AsNumber() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindString:
		n, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// AsBool converts the value to a bool. Numbers coerce as nonzero-is-true;
// only the exact strings "true" and "false" (case-sensitive) convert from
// text. Null does not convert.
func (v Value) AsBool() (bool, bool) {
	switch v.Kind {
	case KindBool:
		return v.Bool, true
	case KindNumber:
		return v.Num != 0, true
	case KindString:
		switch v.Str {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}

// MatchesType reports whether the value satisfies a declared parameter type.
// "any" matches everything; otherwise the value's intrinsic kind must equal
// the declared kind. No coercion is attempted here - callers that want
// coercion use the As* methods explicitly.
func (v Value) MatchesType(declared string) bool {
	if declared == "any" {
		return true
	}
	return v.TypeName() == declared
}

// String renders the value for display in messages and CLI output.
// Unlike AsString it never fails: null renders as "null".
func (v Value) String() string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return "null"
}

// FormatNumber renders a float the way numeric literals read back in:
// 5 stays "5", 3.14 stays "3.14", no exponent for ordinary magnitudes.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
