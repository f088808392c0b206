package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptor(name string) ToolDescriptor {
	return ToolDescriptor{
		Name:         name,
		Description:  Text{EN: name, ZH: name},
		Project:      "test",
		Schema:       json.RawMessage(`{"type":"object"}`),
		AccessTokens: []TokenKind{TokenTenant},
		Execution:    Declarative{HTTPMethod: "GET", Path: "/x"},
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]ToolDescriptor{
		testDescriptor("a_tool"),
		testDescriptor("a_tool"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tool name")
}

func TestNewRejectsMissingExecution(t *testing.T) {
	d := testDescriptor("a_tool")
	d.Execution = nil
	_, err := New([]ToolDescriptor{d})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution strategy")
}

func TestFindCased(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		lookup   string
		expected string
		found    bool
	}{
		{
			name:     "canonical name",
			lookup:   "im_v1_message_create",
			expected: "im_v1_message_create",
			found:    true,
		},
		{
			name:     "camel case name",
			lookup:   "imV1MessageCreate",
			expected: "im_v1_message_create",
			found:    true,
		},
		{
			name:     "kebab case name",
			lookup:   "im-v1-message-create",
			expected: "im_v1_message_create",
			found:    true,
		},
		{
			name:     "dot case name",
			lookup:   "im.v1.message.create",
			expected: "im_v1_message_create",
			found:    true,
		},
		{
			name:   "unknown name",
			lookup: "no_such_tool",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := c.FindCased(tt.lookup)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.expected, tool.Name)
			}
		})
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	c := Default()
	require.NotZero(t, c.Len())

	for _, tool := range c.All() {
		assert.NotEmpty(t, tool.Description.EN, "tool %s has no english description", tool.Name)
		assert.NotEmpty(t, tool.Description.ZH, "tool %s has no chinese description", tool.Name)
		assert.NotEmpty(t, tool.Project, "tool %s has no project", tool.Name)
		assert.NotEmpty(t, tool.AccessTokens, "tool %s declares no token kinds", tool.Name)
		assert.True(t, json.Valid(tool.Schema), "tool %s has an invalid schema", tool.Name)
	}
}

func TestTokenRequirementHelpers(t *testing.T) {
	tenantOnly := ToolDescriptor{AccessTokens: []TokenKind{TokenTenant}}
	userOnly := ToolDescriptor{AccessTokens: []TokenKind{TokenUser}}
	both := ToolDescriptor{AccessTokens: []TokenKind{TokenTenant, TokenUser}}

	assert.False(t, tenantOnly.AcceptsUserToken())
	assert.False(t, tenantOnly.RequiresUserToken())

	assert.True(t, userOnly.AcceptsUserToken())
	assert.True(t, userOnly.RequiresUserToken())

	assert.True(t, both.AcceptsUserToken())
	assert.False(t, both.RequiresUserToken())
}
