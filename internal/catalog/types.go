package catalog

import (
	"context"
	"encoding/json"
)

// Locale selects which language variant of a tool description is used.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// ParseLocale maps a CLI/config value to a Locale, defaulting to English.
func ParseLocale(s string) Locale {
	if s == string(LocaleZH) {
		return LocaleZH
	}
	return LocaleEN
}

// TokenKind identifies which kind of access token a tool can be called with.
type TokenKind string

const (
	// TokenTenant is the app-wide tenant access token.
	TokenTenant TokenKind = "tenant"
	// TokenUser is an OAuth-issued user access token.
	TokenUser TokenKind = "user"
)

// TokenMode constrains which token kinds the selected tool set may require.
type TokenMode string

const (
	// TokenModeAuto accepts tools regardless of their token requirements.
	TokenModeAuto TokenMode = "auto"
	// TokenModeUserOnly accepts only tools callable with a user access token.
	TokenModeUserOnly TokenMode = "user_access_token"
	// TokenModeTenantOnly excludes tools that require a user access token.
	TokenModeTenantOnly TokenMode = "tenant_access_token"
)

// ParseTokenMode maps a CLI/config value to a TokenMode, defaulting to auto.
func ParseTokenMode(s string) TokenMode {
	switch TokenMode(s) {
	case TokenModeUserOnly:
		return TokenModeUserOnly
	case TokenModeTenantOnly:
		return TokenModeTenantOnly
	default:
		return TokenModeAuto
	}
}

// Text is a locale-parameterized string. The English variant is the
// fallback when a locale has no text of its own.
type Text struct {
	EN string
	ZH string
}

// Get returns the text for the given locale.
func (t Text) Get(locale Locale) string {
	if locale == LocaleZH && t.ZH != "" {
		return t.ZH
	}
	return t.EN
}

// Caller abstracts the remote OpenAPI client as seen by tool execution.
// It is satisfied by *lark.Client; tool code never constructs requests
// itself beyond method, path, query and body.
type Caller interface {
	Do(ctx context.Context, method, path string, query map[string]string, body any, auth Authorization) (json.RawMessage, error)
}

// Authorization carries the credential selection for one remote call.
type Authorization struct {
	// UserAccessToken is attached when the call should run with
	// user-level authorization. Empty means tenant-level.
	UserAccessToken string
}

// UseUser reports whether the call runs with user-level authorization.
func (a Authorization) UseUser() bool {
	return a.UserAccessToken != ""
}

// Execution is the tagged union over a tool's execution strategy. A
// descriptor carries exactly one variant: either a declarative HTTP
// binding that the generic invoker maps onto the client, or a custom
// routine for tools that need more than a single endpoint call.
type Execution interface {
	isExecution()
}

// Declarative binds a tool to a single OpenAPI endpoint.
type Declarative struct {
	// HTTPMethod is the HTTP verb of the bound endpoint.
	HTTPMethod string
	// Path is the endpoint path. Segments starting with ':' are
	// substituted from the "path" member of the call parameters.
	Path string
	// SDKName is the dotted SDK method name advertised to callers
	// (e.g. "im.v1.message.create").
	SDKName string
}

func (Declarative) isExecution() {}

// HandlerFunc is the signature of a custom execution routine.
type HandlerFunc func(ctx context.Context, client Caller, params map[string]any, auth Authorization) (json.RawMessage, error)

// Custom wraps a custom execution routine.
type Custom struct {
	Run HandlerFunc
}

func (Custom) isExecution() {}

// ToolDescriptor describes one invokable tool. Descriptors are data:
// they are constructed once at package init and never mutated.
type ToolDescriptor struct {
	// Name is the unique, locale-invariant identifier (snake_case).
	Name string
	// Description is the locale-variant prose shown to callers.
	Description Text
	// Project groups tools by the OpenAPI project they belong to
	// (im, mail, docx, drive, calendar, contact, wiki).
	Project string
	// Schema is the raw JSON schema for the tool's parameters.
	Schema json.RawMessage
	// AccessTokens lists the token kinds the tool accepts, in order
	// of preference.
	AccessTokens []TokenKind
	// Execution is the declarative binding or custom routine.
	Execution Execution
	// SupportsFileUpload and SupportsFileDownload advertise binary
	// transfer capabilities.
	SupportsFileUpload   bool
	SupportsFileDownload bool
}

// AcceptsUserToken reports whether the tool can run with a user token.
func (t *ToolDescriptor) AcceptsUserToken() bool {
	for _, k := range t.AccessTokens {
		if k == TokenUser {
			return true
		}
	}
	return false
}

// RequiresUserToken reports whether the tool can only run with a user token.
func (t *ToolDescriptor) RequiresUserToken() bool {
	if len(t.AccessTokens) == 0 {
		return false
	}
	for _, k := range t.AccessTokens {
		if k != TokenUser {
			return false
		}
	}
	return true
}

// Binding returns the declarative binding if the tool has one.
func (t *ToolDescriptor) Binding() (Declarative, bool) {
	d, ok := t.Execution.(Declarative)
	return d, ok
}
