package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPresets(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "empty input defaults to the default preset",
			input:    nil,
			expected: DefaultToolNames(),
		},
		{
			name:     "plain tool names pass through in order",
			input:    []string{"im_v1_chat_list", "im_v1_message_create"},
			expected: []string{"im_v1_chat_list", "im_v1_message_create"},
		},
		{
			name:  "preset expands in place",
			input: []string{"mail_v1_user_mailbox_folder_list", PresetLight},
			expected: []string{
				"mail_v1_user_mailbox_folder_list",
				"im_v1_message_create",
				"im_v1_chat_list",
				"docx_v1_document_raw_content_get",
				"docx_builtin_search",
			},
		},
		{
			name:     "unknown preset identifiers pass through unexpanded",
			input:    []string{"preset.nope", "im_v1_chat_list"},
			expected: []string{"preset.nope", "im_v1_chat_list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPresets(tt.input))
		})
	}
}

func TestExpandPresetsIsPure(t *testing.T) {
	input := []string{PresetLight, "im_v1_chat_list"}
	first := ExpandPresets(input)
	second := ExpandPresets(input)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{PresetLight, "im_v1_chat_list"}, input, "input must not be mutated")
}

func TestPresetMembersExistInCatalog(t *testing.T) {
	c := Default()
	for _, preset := range PresetNames() {
		members := ExpandPresets([]string{preset})
		require.NotEmpty(t, members, "preset %s expanded to nothing", preset)
		for _, name := range members {
			_, ok := c.Find(name)
			assert.True(t, ok, "preset %s references unknown tool %s", preset, name)
		}
	}
}
