package validator

import (
	"encoding/json"
	"math"
	"strings"
)

// ValidateID accepts positive integers given as any Go integer or float kind,
// json.Number or string. Strings are read like JavaScript parseInt: leading
// whitespace and sign are allowed and parsing stops at the first non-digit,
// so "42abc" is accepted and "abc" is not.
func ValidateID(id any) Result {
	return First(Check(func() bool { return positiveInteger(id) }, KeyIDInvalid))
}

func positiveInteger(v any) bool {
	switch n := v.(type) {
	case int:
		return n > 0
	case int8:
		return n > 0
	case int16:
		return n > 0
	case int32:
		return n > 0
	case int64:
		return n > 0
	case uint:
		return n > 0
	case uint8:
		return n > 0
	case uint16:
		return n > 0
	case uint32:
		return n > 0
	case uint64:
		return n > 0
	case float32:
		return positiveIntegralFloat(float64(n))
	case float64:
		return positiveIntegralFloat(n)
	case json.Number:
		return positiveIntegerPrefix(n.String())
	case string:
		return positiveIntegerPrefix(n)
	default:
		return false
	}
}

func positiveIntegralFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0 && f == math.Trunc(f)
}

// positiveIntegerPrefix reports whether the leading integer of s is > 0.
// Only the sign and digits matter, so arbitrarily long ids never overflow.
func positiveIntegerPrefix(s string) bool {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	nonZero := false
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if s[i] != '0' {
			nonZero = true
		}
	}

	return nonZero && !negative
}
