package messages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validmsg/pkg/messages"
)

func TestFormatMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		context  messages.M
		expected string
	}{
		{
			name:     "single placeholder",
			template: "message {description}",
			context:  messages.M{"description": "Presence"},
			expected: "message Presence",
		},
		{
			name:     "no placeholder",
			template: "no placeholder",
			context:  messages.M{},
			expected: "no placeholder",
		},
		{
			name:     "missing key stays verbatim",
			template: "{missing}",
			context:  messages.M{},
			expected: "{missing}",
		},
		{
			name:     "missing key among known keys",
			template: "{description} must be between {min} and {max} characters",
			context:  messages.M{"description": "Name", "min": 2},
			expected: "Name must be between 2 and {max} characters",
		},
		{
			name:     "nil context",
			template: "{description} is invalid",
			context:  nil,
			expected: "{description} is invalid",
		},
		{
			name:     "non-string values",
			template: "{description} must be greater than {gt}, odd: {odd}",
			context:  messages.M{"description": "Age", "gt": 17.5, "odd": true},
			expected: "Age must be greater than 17.5, odd: true",
		},
		{
			name:     "repeated placeholder",
			template: "{a} and {a}",
			context:  messages.M{"a": "x"},
			expected: "x and x",
		},
		{
			name:     "substituted values are not expanded again",
			template: "{first} {second}",
			context:  messages.M{"first": "{second}", "second": "B"},
			expected: "{second} B",
		},
		{
			name:     "empty template",
			template: "",
			context:  messages.M{"a": "x"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, messages.FormatMessage(tt.template, tt.context))
		})
	}
}

func TestDescriptionFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"presence":      "Presence",
		"custom":        "Custom",
		"custom-lookup": "Custom lookup",
		"firstName":     "First name",
		"last_name":     "Last name",
		"tooShort":      "Too short",
		"":              "",
	}

	for key, expected := range tests {
		assert.Equal(t, expected, messages.DescriptionFor(key), "key %q", key)
	}
}
