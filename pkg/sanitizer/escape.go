package sanitizer

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML replaces & < > " ' and / with their HTML entities in a single
// pass. Unlike html.EscapeString it also escapes the slash, so closing tags
// cannot survive.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeValue escapes v when it is a string and returns any other value
// unchanged.
func EscapeValue(v any) any {
	if s, ok := v.(string); ok {
		return EscapeHTML(s)
	}
	return v
}

// StripHTML deletes every tag from s and keeps the text between tags.
// Entities are left encoded.
func StripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// SanitizeValue walks decoded JSON-like data and escapes every string it finds.
// Maps and slices are copied; the input is never modified.
func SanitizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return EscapeHTML(val)
	case []string:
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = EscapeHTML(s)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = SanitizeValue(item)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, s := range val {
			out[k] = EscapeHTML(s)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = SanitizeValue(item)
		}
		return out
	default:
		return v
	}
}
