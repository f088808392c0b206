package catalog

import (
	"strings"
)

// FilterCriteria selects a subset of the catalog. AllowTools must
// already be preset-expanded (see ExpandPresets).
type FilterCriteria struct {
	// AllowTools is the allow-list of tool names. Names that match no
	// catalog entry are silently dropped, which keeps saved presets
	// working across catalog evolution.
	AllowTools []string
	// TokenMode constrains which token requirements are acceptable.
	TokenMode TokenMode
	// Locale selects the description text the Keyword is matched
	// against.
	Locale Locale
	// Keyword, when non-empty, retains only tools whose name,
	// description or project contains it (case-insensitive).
	Keyword string
}

// Filter returns the catalog entries selected by the criteria, always
// in catalog order. It is a pure function: identical criteria against
// an identical catalog yield an identical subset.
func Filter(c *Catalog, criteria FilterCriteria) []ToolDescriptor {
	allowed := make(map[string]struct{}, len(criteria.AllowTools))
	for _, name := range criteria.AllowTools {
		allowed[ToSnake(name)] = struct{}{}
	}

	keyword := strings.ToLower(criteria.Keyword)

	var out []ToolDescriptor
	for _, tool := range c.All() {
		if _, ok := allowed[tool.Name]; !ok {
			continue
		}
		if !tokenModeAllows(criteria.TokenMode, &tool) {
			continue
		}
		if keyword != "" && !keywordMatches(&tool, criteria.Locale, keyword) {
			continue
		}
		out = append(out, tool)
	}
	return out
}

// tokenModeAllows implements the compatibility rule between the active
// token mode and a tool's token requirements.
func tokenModeAllows(mode TokenMode, tool *ToolDescriptor) bool {
	switch mode {
	case TokenModeUserOnly:
		return tool.AcceptsUserToken()
	case TokenModeTenantOnly:
		return !tool.RequiresUserToken()
	default:
		return true
	}
}

func keywordMatches(tool *ToolDescriptor, locale Locale, keyword string) bool {
	if strings.Contains(strings.ToLower(tool.Name), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(tool.Description.Get(locale)), keyword) {
		return true
	}
	return strings.Contains(strings.ToLower(tool.Project), keyword)
}
