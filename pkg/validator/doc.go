// Package validator implements the accept/reject checks applied to library
// form input: e-mail, password strength, username, book title, author name,
// phone number, birth date, numeric identifiers and URLs.
//
// Every validator is a pure function returning a Result. A Result is built by
// First, which evaluates small Rule values in order and stops at the first
// failure, so each field reports exactly one human-readable message. Messages
// are French by default; Result.Localize renders the same failure in any
// language of the built-in catalog (French and English).
//
// ValidateForm applies a field-name → validator mapping to a whole record and
// collects the failures in a FormResult.
//
// # Usage
//
//	res := validator.ValidatePassword("password123")
//	// res.Valid == false
//	// res.Error == "Doit contenir au moins une majuscule"
//
//	form := validator.ValidateForm(
//	    map[string]any{"email": email, "password": password},
//	    map[string]validator.Func{
//	        "email":    validator.String(validator.ValidateEmail),
//	        "password": validator.String(validator.ValidatePassword),
//	    },
//	)
//	if !form.Valid {
//	    // form.Errors["email"], form.Errors["password"]
//	}
//
// # Error Handling
//
// Validators never panic and never return Go errors. Callers that prefer the
// error channel convert with Result.Err or FormResult.Err, which yield a
// ValidationErrors value that matches ErrValidationFailed via errors.Is.
//
// Validation is independent of sanitisation; see the sanitizer package.
package validator
