package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCase(t *testing.T) {
	tests := []struct {
		name     string
		nameCase NameCase
		input    string
		expected string
	}{
		{
			name:     "snake is the identity",
			nameCase: CaseSnake,
			input:    "im_v1_message_create",
			expected: "im_v1_message_create",
		},
		{
			name:     "camel capitalizes every part after the first",
			nameCase: CaseCamel,
			input:    "im_v1_message_create",
			expected: "imV1MessageCreate",
		},
		{
			name:     "kebab replaces underscores with dashes",
			nameCase: CaseKebab,
			input:    "im_v1_message_create",
			expected: "im-v1-message-create",
		},
		{
			name:     "dot replaces underscores with dots",
			nameCase: CaseDot,
			input:    "im_v1_message_create",
			expected: "im.v1.message.create",
		},
		{
			name:     "single word is unchanged in camel",
			nameCase: CaseCamel,
			input:    "whoami",
			expected: "whoami",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyCase(tt.input, tt.nameCase))
		})
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "snake passes through",
			input:    "im_v1_message_create",
			expected: "im_v1_message_create",
		},
		{
			name:     "camel is split on upper case",
			input:    "imV1MessageCreate",
			expected: "im_v1_message_create",
		},
		{
			name:     "kebab dashes become underscores",
			input:    "im-v1-message-create",
			expected: "im_v1_message_create",
		},
		{
			name:     "dots become underscores",
			input:    "im.v1.message.create",
			expected: "im_v1_message_create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSnake(tt.input))
		})
	}
}

func TestApplyCaseRoundTrip(t *testing.T) {
	// Every derived style must normalize back to the canonical name.
	for _, tool := range Default().All() {
		for _, nameCase := range []NameCase{CaseSnake, CaseCamel, CaseKebab, CaseDot} {
			assert.Equal(t, tool.Name, ToSnake(ApplyCase(tool.Name, nameCase)),
				"tool %s, case %s", tool.Name, nameCase)
		}
	}
}

func TestParseNameCase(t *testing.T) {
	assert.Equal(t, CaseCamel, ParseNameCase("camel"))
	assert.Equal(t, CaseKebab, ParseNameCase("kebab"))
	assert.Equal(t, CaseDot, ParseNameCase("dot"))
	assert.Equal(t, CaseSnake, ParseNameCase("snake"))
	assert.Equal(t, CaseSnake, ParseNameCase(""))
	assert.Equal(t, CaseSnake, ParseNameCase("unknown"))
}
