// Package config merges the serve command's options from defaults, an
// optional JSON config file, LARK_* environment variables and command
// line flags, in that order of increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teemow/lark-mcp/internal/lark"
)

// ServeOptions are the resolved settings for the MCP serve command.
type ServeOptions struct {
	AppID           string `mapstructure:"app-id"`
	AppSecret       string `mapstructure:"app-secret"`
	Domain          string `mapstructure:"domain"`
	Tools           string `mapstructure:"tools"`
	ToolNameCase    string `mapstructure:"tool-name-case"`
	Language        string `mapstructure:"language"`
	TokenMode       string `mapstructure:"token-mode"`
	UserAccessToken string `mapstructure:"user-access-token"`
	Mode            string `mapstructure:"mode"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	MetricsPort     int    `mapstructure:"metrics-port"`
	Debug           bool   `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("domain", lark.FeishuDomain)
	v.SetDefault("tool-name-case", "snake")
	v.SetDefault("language", "en")
	v.SetDefault("token-mode", "auto")
	v.SetDefault("mode", "stdio")
	v.SetDefault("host", "localhost")
	v.SetDefault("port", 3000)
	v.SetDefault("metrics-port", 9090)
}

// LoadServeOptions resolves the serve options. configPath, when
// non-empty, names a JSON config file whose keys match the flag names.
// Environment variables use the LARK_ prefix with dashes mapped to
// underscores (LARK_APP_ID, LARK_TOKEN_MODE, ...). Flags changed on
// the command line win over everything.
func LoadServeOptions(flags *pflag.FlagSet, configPath string) (*ServeOptions, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LARK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var opts ServeOptions
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return &opts, nil
}

// ParseStringList splits a comma- or space-separated list value into
// its elements, dropping empties.
func ParseStringList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
