package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower applies full Unicode lower-casing.
// A new Caser is built per call because casers are not goroutine-safe.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// MaxLength truncates s to at most maxLen characters.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// Truncate returns a transform usable with Apply and Compose.
func Truncate(maxLen int) func(string) string {
	return func(s string) string {
		return MaxLength(s, maxLen)
	}
}

// KeepChars removes every character of s that is not in allowed.
func KeepChars(s, allowed string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(allowed, r) {
			return r
		}
		return -1
	}, s)
}

// Keep returns a transform that applies KeepChars with allowed.
func Keep(allowed string) func(string) string {
	return func(s string) string {
		return KeepChars(s, allowed)
	}
}

// TruncateText shortens s to maxLength characters without splitting a word
// and appends "...". Text that already fits is returned unchanged. When the
// cut window contains no space the text is cut hard.
func TruncateText(s string, maxLength int) string {
	runes := []rune(s)
	if maxLength < 0 || len(runes) <= maxLength {
		return s
	}

	truncated := string(runes[:maxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return truncated[:lastSpace] + "..."
	}

	return truncated + "..."
}
