package validator

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Result is the outcome of a single-field validator.
// Error is set only when Valid is false.
type Result struct {
	Valid bool
	Error string
	// Key identifies the violated constraint in the message catalog.
	Key  string
	Args []any
}

// Localize renders the failure message in lang. Valid results yield "".
func (r Result) Localize(lang language.Tag) string {
	if r.Valid {
		return ""
	}
	return Translate(lang, r.Key, r.Args...)
}

// Err converts an invalid result into a ValidationErrors for field.
func (r Result) Err(field string) error {
	if r.Valid {
		return nil
	}
	return ValidationErrors{{
		Field:           field,
		Message:         r.Error,
		TranslationKey:  r.Key,
		TranslationArgs: r.Args,
	}}
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field           string
	Message         string
	TranslationKey  string
	TranslationArgs []any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the catalog key reported when it fails.
type Rule struct {
	Check func() bool
	Key   string
	Args  []any
}

// First evaluates rules in order and reports the first failing one.
// Rules after a failure are not evaluated, so later checks may assume the
// earlier ones passed.
func First(rules ...Rule) Result {
	for _, rule := range rules {
		if !rule.Check() {
			return invalid(rule.Key, rule.Args...)
		}
	}
	return Result{Valid: true}
}

// Apply evaluates every rule and collects all failures for field.
func Apply(field string, rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(ValidationError{
				Field:           field,
				Message:         Translate(DefaultLanguage, rule.Key, rule.Args...),
				TranslationKey:  rule.Key,
				TranslationArgs: rule.Args,
			})
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

func invalid(key string, args ...any) Result {
	return Result{
		Valid: false,
		Error: Translate(DefaultLanguage, key, args...),
		Key:   key,
		Args:  args,
	}
}
