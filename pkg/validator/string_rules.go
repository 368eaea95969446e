package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Present fails on the empty string only; whitespace counts as present so
// that length rules can report blank input more precisely.
func Present(value, key string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Key:   key,
	}
}

// MinLen fails when value has fewer than min characters.
func MinLen(value string, min int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= min },
		Key:   KeyMinLength,
		Args:  []any{min},
	}
}

// MaxLen fails when value has more than max characters.
func MaxLen(value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Key:   KeyMaxLength,
		Args:  []any{max},
	}
}

// Matches fails unless the whole value matches re.
func Matches(value string, re *regexp.Regexp, key string) Rule {
	return Rule{
		Check: func() bool { return re.MatchString(value) },
		Key:   key,
	}
}

// Contains fails unless re matches somewhere in value.
func Contains(value string, re *regexp.Regexp, key string) Rule {
	return Rule{
		Check: func() bool { return re.FindStringIndex(value) != nil },
		Key:   key,
	}
}

// Check wraps an arbitrary predicate.
func Check(ok func() bool, key string, args ...any) Rule {
	return Rule{Check: ok, Key: key, Args: args}
}

func trimmed(value string) string {
	return strings.TrimSpace(value)
}
