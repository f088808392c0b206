package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleZH, ParseLocale("zh"))
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleEN, ParseLocale(""))
	assert.Equal(t, LocaleEN, ParseLocale("fr"))
}

func TestParseTokenMode(t *testing.T) {
	assert.Equal(t, TokenModeUserOnly, ParseTokenMode("user_access_token"))
	assert.Equal(t, TokenModeTenantOnly, ParseTokenMode("tenant_access_token"))
	assert.Equal(t, TokenModeAuto, ParseTokenMode("auto"))
	assert.Equal(t, TokenModeAuto, ParseTokenMode(""))
}

func TestTextGetFallsBackToEnglish(t *testing.T) {
	text := Text{EN: "hello", ZH: "你好"}
	assert.Equal(t, "hello", text.Get(LocaleEN))
	assert.Equal(t, "你好", text.Get(LocaleZH))

	enOnly := Text{EN: "hello"}
	assert.Equal(t, "hello", enOnly.Get(LocaleZH))
}

func TestAuthorizationUseUser(t *testing.T) {
	assert.False(t, Authorization{}.UseUser())
	assert.True(t, Authorization{UserAccessToken: "u-1"}.UseUser())
}
