package validator

import (
	"net/url"
	"regexp"
	"unicode/utf8"
)

const (
	EmailMaxLength     = 255
	PasswordMinLength  = 8
	PasswordMaxLength  = 128
	UsernameMinLength  = 3
	UsernameMaxLength  = 50
	BookTitleMaxLength = 200
	AuthorMinLength    = 2
	AuthorMaxLength    = 100
)

// whitespace is what \s matches in browsers. RE2's \s is ASCII-only.
const whitespace = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	emailRegex    = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9` + whitespace + `\-()]{8,20}$`)

	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail checks presence, shape (local@domain.tld) and length.
func ValidateEmail(email string) Result {
	return First(
		Present(email, KeyEmailRequired),
		Matches(email, emailRegex, KeyEmailFormat),
		Check(func() bool { return utf8.RuneCountInString(email) <= EmailMaxLength }, KeyEmailTooLong, EmailMaxLength),
	)
}

// ValidatePassword requires 8 to 128 characters with at least one lowercase
// letter, one uppercase letter and one digit.
func ValidatePassword(password string) Result {
	return First(
		Present(password, KeyPasswordRequired),
		MinLen(password, PasswordMinLength),
		MaxLen(password, PasswordMaxLength),
		Contains(password, lowercaseRegex, KeyPasswordLowercase),
		Contains(password, uppercaseRegex, KeyPasswordUppercase),
		Contains(password, digitRegex, KeyPasswordDigit),
	)
}

// ValidateUsername checks the trimmed username for length and charset.
func ValidateUsername(username string) Result {
	t := trimmed(username)
	return First(
		Present(username, KeyUsernameRequired),
		MinLen(t, UsernameMinLength),
		MaxLen(t, UsernameMaxLength),
		Matches(t, usernameRegex, KeyUsernameCharset),
	)
}

func ValidateBookTitle(title string) Result {
	t := trimmed(title)
	return First(
		Present(title, KeyBookTitleRequired),
		Check(func() bool { return t != "" }, KeyBookTitleEmpty),
		MaxLen(t, BookTitleMaxLength),
	)
}

func ValidateAuthorName(name string) Result {
	t := trimmed(name)
	return First(
		Present(name, KeyAuthorRequired),
		MinLen(t, AuthorMinLength),
		MaxLen(t, AuthorMaxLength),
	)
}

// ValidatePhone accepts 8 to 20 digits, spaces, hyphens and parentheses with
// an optional leading '+', e.g. "+33123456789" or "+1 (234) 567-8900".
func ValidatePhone(phone string) Result {
	return First(
		Present(phone, KeyPhoneRequired),
		Matches(phone, phoneRegex, KeyPhoneFormat),
	)
}

// ValidateURL requires an absolute http or https URL with a host.
func ValidateURL(rawURL string) Result {
	var u *url.URL
	return First(
		Present(rawURL, KeyURLRequired),
		Check(func() bool {
			parsed, err := url.Parse(rawURL)
			if err != nil || parsed.Scheme == "" {
				return false
			}
			u = parsed
			return true
		}, KeyURLFormat),
		Check(func() bool { return u.Scheme == "http" || u.Scheme == "https" }, KeyURLScheme),
		Check(func() bool { return u.Host != "" }, KeyURLFormat),
	)
}
