package sanitizer

import (
	"net/url"
	"strings"
)

const (
	// UsernameMaxLength is the longest username SanitizeUsername returns.
	UsernameMaxLength = 50
	// BookTitleMaxLength is the longest title SanitizeBookTitle returns.
	BookTitleMaxLength = 200

	usernameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"
	phoneChars    = "0123456789+-() "
)

var defaultPorts = map[string]string{"http": "80", "https": "443"}

var (
	usernamePipeline = Compose(
		Trim,
		Keep(usernameChars),
		Truncate(UsernameMaxLength),
	)

	emailPipeline = Compose(
		Trim,
		ToLower,
		func(s string) string { return emailUnsafeRegex.ReplaceAllString(s, "") },
	)

	bookTitlePipeline = Compose(
		Trim,
		EscapeHTML,
		Truncate(BookTitleMaxLength),
	)

	phonePipeline = Compose(
		Keep(phoneChars),
		Trim,
	)
)

// SanitizeUsername keeps ASCII letters, digits, underscore and hyphen, capped
// at UsernameMaxLength characters.
func SanitizeUsername(username string) string {
	return usernamePipeline(username)
}

// SanitizeEmail trims, lower-cases and drops the characters < > " and '.
// Length is not limited; ValidateEmail enforces that.
func SanitizeEmail(email string) string {
	return emailPipeline(email)
}

// SanitizeBookTitle escapes HTML but keeps accents and punctuation.
// The cap applies to the escaped text, so an entity may be cut.
func SanitizeBookTitle(title string) string {
	return bookTitlePipeline(title)
}

// SanitizePhone keeps digits, '+', '-', '(', ')' and spaces.
func SanitizePhone(phone string) string {
	return phonePipeline(phone)
}

// SanitizeURL accepts only absolute http and https URLs and returns them in
// canonical form: lower-case scheme and host, no default port, dot segments
// resolved and "/" for an empty path.
// Any other scheme, including javascript: and data:, yields "".
func SanitizeURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if !httpSchemeRegex.MatchString(trimmed) {
		return ""
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" || u.Hostname() == "" {
		return ""
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	u.Host = strings.ToLower(u.Host)
	if port := u.Port(); port == "" || port == defaultPorts[u.Scheme] {
		u.Host = strings.TrimSuffix(u.Host, ":"+port)
	}
	u = u.ResolveReference(u)
	if u.Path == "" && u.RawPath == "" {
		u.Path = "/"
	}

	return u.String()
}
