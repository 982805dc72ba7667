// Package validator carries validation errors from rule checks to display.
//
// Rule checks are out of scope here; whatever produces the errors records
// the rule key and placeholder values, and a message set renders them:
//
//	errs := validator.ValidationErrors{
//	    validator.NewError("password", "tooShort", map[string]any{"min": 8}),
//	}
//	errs.Translate(set.TranslateMessage)
//	// errs[0].Message == "Password is too short (minimum is 8 characters)"
package validator

import (
	"maps"
	"strings"

	"github.com/dmitrymomot/validmsg/pkg/messages"
)

// TranslateFunc renders the message for key with values.
// messages.Set.TranslateMessage satisfies it.
type TranslateFunc func(key string, values map[string]any) string

// ValidationError is a failed rule for one field.
type ValidationError struct {
	TranslationValues map[string]any
	Field             string
	Message           string
	TranslationKey    string
}

// NewError builds an error for field failing rule. The "description"
// placeholder defaults to a label derived from field.
func NewError(field, rule string, values map[string]any) ValidationError {
	v := make(map[string]any, len(values)+1)
	v["description"] = messages.DescriptionFor(field)
	maps.Copy(v, values)

	return ValidationError{
		Field:             field,
		TranslationKey:    rule,
		TranslationValues: v,
	}
}

func (e ValidationError) Error() string {
	if e.Message != "" {
		return e.Field + ": " + e.Message
	}
	return e.Field + ": " + e.TranslationKey
}

// ValidationErrors is a list of field errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Translate replaces Message with fn's output for every error that has a
// TranslationKey. A nil fn is a no-op.
func (e ValidationErrors) Translate(fn TranslateFunc) {
	if fn == nil {
		return
	}
	for i := range e {
		if e[i].TranslationKey == "" {
			continue
		}
		e[i].Message = fn(e[i].TranslationKey, e[i].TranslationValues)
	}
}

// ByField groups messages by field, keeping their order.
func (e ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string)
	for _, err := range e {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}
