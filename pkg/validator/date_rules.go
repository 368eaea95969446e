package validator

import (
	"strings"
	"time"
)

const (
	MinAge = 18
	MaxAge = 120
)

// birthDateLayouts are tried in order; date-only layouts come first.
var birthDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseDate parses value with the layouts accepted for birth dates.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the number of full years between birth and now.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// ValidateBirthDate checks that value is a date making the person at least
// 18 and at most 120 years old today.
func ValidateBirthDate(value string) Result {
	return ValidateBirthDateAt(value, time.Now())
}

// ValidateBirthDateAt is ValidateBirthDate with an explicit reference date.
func ValidateBirthDateAt(value string, now time.Time) Result {
	var birth time.Time
	return First(
		Present(value, KeyBirthDateRequired),
		Check(func() bool {
			var ok bool
			birth, ok = ParseDate(value)
			return ok
		}, KeyBirthDateInvalid),
		Check(func() bool { return Age(birth, now) >= MinAge }, KeyBirthDateUnderage, MinAge),
		Check(func() bool { return Age(birth, now) <= MaxAge }, KeyBirthDateImplausible),
	)
}
