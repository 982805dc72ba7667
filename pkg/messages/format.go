package messages

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)
	camelBoundary      = regexp.MustCompile(`([a-z\d])([A-Z])`)
	wordSeparators     = regexp.MustCompile(`[\s_-]+`)
)

// FormatMessage replaces each {name} placeholder in template with the value
// of context[name]. Placeholders without a matching key are left as is.
// Substitution is a single pass: placeholders inside substituted values are
// not expanded.
//
// Example:
//
//	FormatMessage("{description} is too short (minimum is {min} characters)", M{
//	    "description": "Password",
//	    "min":         8,
//	})
//	// "Password is too short (minimum is 8 characters)"
func FormatMessage(template string, context M) string {
	if len(context) == 0 || !strings.Contains(template, "{") {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		value, ok := context[token[1:len(token)-1]]
		if !ok {
			return token
		}
		return fmt.Sprintf("%v", value)
	})
}

// DescriptionFor turns a rule or field key into a human readable label:
// "presence" becomes "Presence", "firstName" becomes "First name" and
// "custom-lookup" becomes "Custom lookup".
func DescriptionFor(key string) string {
	words := strings.Fields(wordSeparators.ReplaceAllString(
		strings.ToLower(camelBoundary.ReplaceAllString(key, "${1} ${2}")), " "))
	if len(words) == 0 {
		return ""
	}

	// cases.Caser keeps state, so one is built per call.
	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}
