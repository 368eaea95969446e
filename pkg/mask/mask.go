package mask

import (
	"strings"
	"unicode/utf8"
)

// MaskWidth is the fixed number of mask characters emitted by String, so the
// output does not reveal the length of the hidden part.
const MaskWidth = 10

// String keeps visibleStart leading and visibleEnd trailing characters of s
// and replaces everything between them with MaskWidth copies of maskChar.
// Values no longer than visibleStart+visibleEnd are returned unchanged.
func String(s string, visibleStart, visibleEnd int, maskChar rune) string {
	visibleStart = max(visibleStart, 0)
	visibleEnd = max(visibleEnd, 0)

	runes := []rune(s)
	if len(runes) <= visibleStart+visibleEnd {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + MaskWidth*utf8.RuneLen(maskChar))
	b.WriteString(string(runes[:visibleStart]))
	b.WriteString(strings.Repeat(string(maskChar), MaskWidth))
	b.WriteString(string(runes[len(runes)-visibleEnd:]))
	return b.String()
}

// Default masks s keeping only its first character.
func Default(s string) string {
	return String(s, 1, 0, '*')
}

// Email keeps the first character of the local part and the domain. Only the
// text between the first and second '@' counts as the domain, so "a@b@c"
// masks to "a***@b". Values without a local part or a domain are returned
// unchanged.
func Email(s string) string {
	local, rest, ok := strings.Cut(s, "@")
	domain, _, _ := strings.Cut(rest, "@")
	if !ok || local == "" || domain == "" {
		return s
	}

	first, _ := utf8.DecodeRuneInString(local)
	return string(first) + "***@" + domain
}

// Phone keeps the first three and last three characters of numbers longer
// than six characters.
func Phone(s string) string {
	runes := []rune(s)
	if len(runes) <= 6 {
		return s
	}
	return string(runes[:3]) + "******" + string(runes[len(runes)-3:])
}
