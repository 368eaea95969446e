package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// HTML stripping: an angle bracket, anything but angle brackets, an angle bracket
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Characters SanitizeEmail drops
	emailUnsafeRegex = regexp.MustCompile(`[<>"']`)

	// Scheme gate for URLs
	httpSchemeRegex = regexp.MustCompile(`(?i)^https?://`)
)
