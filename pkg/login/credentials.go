package login

import (
	"strings"

	"github.com/WassimBlilita7/ULMA/pkg/sanitizer"
	"github.com/WassimBlilita7/ULMA/pkg/validator"
)

// Credentials is what the user types into the login form.
type Credentials struct {
	Email    string
	Password string
}

var credentialRules = map[string]validator.Func{
	"email":    validator.String(validator.ValidateEmail),
	"password": validator.String(validator.ValidatePassword),
}

// Validate checks the form values. Surrounding whitespace in the email is
// ignored, as an email input field would drop it.
func (c Credentials) Validate() validator.FormResult {
	return validator.ValidateForm(map[string]any{
		"email":    strings.TrimSpace(c.Email),
		"password": c.Password,
	}, credentialRules)
}

// Normalize returns a copy with the email sanitised. The password is never
// altered.
func (c Credentials) Normalize() Credentials {
	c.Email = sanitizer.SanitizeEmail(c.Email)
	return c
}
