package validator

import (
	"slices"
	"time"

	"golang.org/x/text/language"
)

// Func validates one form value.
type Func func(value any) Result

// String adapts a string validator. Non-string values are validated as "".
func String(fn func(string) Result) Func {
	return func(value any) Result {
		s, _ := value.(string)
		return fn(s)
	}
}

// BirthDate validates strings with ValidateBirthDate and time.Time values
// directly.
func BirthDate(value any) Result {
	if t, ok := value.(time.Time); ok {
		return ValidateBirthDate(t.Format(time.DateOnly))
	}
	return String(ValidateBirthDate)(value)
}

// ID is ValidateID as a Func.
func ID(value any) Result {
	return ValidateID(value)
}

// FormResult aggregates per-field results. Valid is true iff Errors is empty.
type FormResult struct {
	Valid  bool
	Errors map[string]string

	results map[string]Result
}

// Localize renders every field error in lang.
func (f FormResult) Localize(lang language.Tag) map[string]string {
	out := make(map[string]string, len(f.results))
	for field, res := range f.results {
		out[field] = res.Localize(lang)
	}
	return out
}

// Err converts the failures into ValidationErrors ordered by field name.
func (f FormResult) Err() error {
	if f.Valid {
		return nil
	}

	fields := make([]string, 0, len(f.results))
	for field := range f.results {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var errs ValidationErrors
	for _, field := range fields {
		res := f.results[field]
		errs.Add(ValidationError{
			Field:           field,
			Message:         res.Error,
			TranslationKey:  res.Key,
			TranslationArgs: res.Args,
		})
	}
	return errs
}

// ValidateForm runs rules[field] on every field that has a rule. Fields
// without a rule are ignored, as are rules without a field.
func ValidateForm(fields map[string]any, rules map[string]Func) FormResult {
	result := FormResult{
		Errors:  make(map[string]string),
		results: make(map[string]Result),
	}

	for field, value := range fields {
		validate, ok := rules[field]
		if !ok || validate == nil {
			continue
		}
		if res := validate(value); !res.Valid {
			result.Errors[field] = res.Error
			result.results[field] = res
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
