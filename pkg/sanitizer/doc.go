// Package sanitizer turns untrusted form input into constrained, display-safe
// strings for the library front-end.
//
// The helpers fall into three groups:
//
//   - Escaping – EscapeHTML replaces the six HTML-significant characters
//     (& < > " ' /) with entities, StripHTML deletes tags while keeping their
//     text, and SanitizeValue escapes every string nested in maps and slices.
//
//   - Field sanitisers – SanitizeUsername, SanitizeEmail, SanitizeBookTitle,
//     SanitizePhone and SanitizeURL trim, allow-list and truncate a single form
//     field.
//
//   - Text helpers – Trim, ToLower, MaxLength, KeepChars, Keep, TruncateText plus the
//     Apply and Compose pipeline helpers used to build the field sanitisers.
//
// Sanitisation is not validation: a sanitised value may still be rejected by
// the validator package.
//
// # Usage
//
//	import "github.com/WassimBlilita7/ULMA/pkg/sanitizer"
//
//	title := sanitizer.SanitizeBookTitle(`  L'Étranger <b>`)
//	// title == "L&#x27;Étranger &lt;b&gt;"
//
//	link := sanitizer.SanitizeURL("javascript:alert(1)")
//	// link == ""
//
// # Error handling
//
// None of the helpers returns an error. Bad input degrades to a neutral value
// (usually the empty string).
//
// All functions are stateless and safe for concurrent use.
package sanitizer
