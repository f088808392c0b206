package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/lark-mcp/internal/lark"
)

func serveFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("mcp", pflag.ContinueOnError)
	flags.String("app-id", "", "")
	flags.String("app-secret", "", "")
	flags.String("domain", lark.FeishuDomain, "")
	flags.String("tools", "", "")
	flags.String("tool-name-case", "snake", "")
	flags.String("language", "en", "")
	flags.String("token-mode", "auto", "")
	flags.String("user-access-token", "", "")
	flags.String("mode", "stdio", "")
	flags.String("host", "localhost", "")
	flags.Int("port", 3000, "")
	flags.Int("metrics-port", 9090, "")
	flags.Bool("debug", false, "")
	return flags
}

func TestLoadServeOptionsDefaults(t *testing.T) {
	opts, err := LoadServeOptions(serveFlagSet(), "")
	require.NoError(t, err)

	assert.Equal(t, lark.FeishuDomain, opts.Domain)
	assert.Equal(t, "snake", opts.ToolNameCase)
	assert.Equal(t, "en", opts.Language)
	assert.Equal(t, "auto", opts.TokenMode)
	assert.Equal(t, "stdio", opts.Mode)
	assert.Equal(t, "localhost", opts.Host)
	assert.Equal(t, 3000, opts.Port)
	assert.Equal(t, 9090, opts.MetricsPort)
}

func TestLoadServeOptionsFromEnvironment(t *testing.T) {
	t.Setenv("LARK_APP_ID", "cli_env")
	t.Setenv("LARK_TOKEN_MODE", "tenant_access_token")

	opts, err := LoadServeOptions(serveFlagSet(), "")
	require.NoError(t, err)
	assert.Equal(t, "cli_env", opts.AppID)
	assert.Equal(t, "tenant_access_token", opts.TokenMode)
}

func TestLoadServeOptionsFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app-id": "cli_file",
		"mode": "streamable",
		"port": 8080
	}`), 0o600))

	opts, err := LoadServeOptions(serveFlagSet(), path)
	require.NoError(t, err)
	assert.Equal(t, "cli_file", opts.AppID)
	assert.Equal(t, "streamable", opts.Mode)
	assert.Equal(t, 8080, opts.Port)
}

func TestLoadServeOptionsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app-id": "cli_file", "language": "zh"}`), 0o600))

	t.Setenv("LARK_APP_ID", "cli_env")

	flags := serveFlagSet()
	require.NoError(t, flags.Set("language", "en"))

	opts, err := LoadServeOptions(flags, path)
	require.NoError(t, err)
	assert.Equal(t, "cli_env", opts.AppID, "environment beats the config file")
	assert.Equal(t, "en", opts.Language, "a changed flag beats everything")
}

func TestLoadServeOptionsMissingConfigFile(t *testing.T) {
	_, err := LoadServeOptions(serveFlagSet(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "comma separated",
			input:    "a,b,c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "spaces and commas mixed",
			input:    "a, b  c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "stray separators",
			input:    ",, a ,",
			expected: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStringList(tt.input))
		})
	}
}
