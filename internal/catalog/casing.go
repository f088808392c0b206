package catalog

import (
	"strings"
	"unicode"
)

// NameCase selects how canonical snake_case tool names are written when
// advertised over MCP.
type NameCase string

const (
	CaseSnake NameCase = "snake"
	CaseCamel NameCase = "camel"
	CaseKebab NameCase = "kebab"
	CaseDot   NameCase = "dot"
)

// ParseNameCase maps a CLI/config value to a NameCase, defaulting to snake.
func ParseNameCase(s string) NameCase {
	switch NameCase(s) {
	case CaseCamel:
		return CaseCamel
	case CaseKebab:
		return CaseKebab
	case CaseDot:
		return CaseDot
	default:
		return CaseSnake
	}
}

// ApplyCase renders a canonical snake_case name in the requested style.
func ApplyCase(name string, nameCase NameCase) string {
	switch nameCase {
	case CaseCamel:
		parts := strings.Split(name, "_")
		for i := 1; i < len(parts); i++ {
			if parts[i] == "" {
				continue
			}
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
		return strings.Join(parts, "")
	case CaseKebab:
		return strings.ReplaceAll(name, "_", "-")
	case CaseDot:
		return strings.ReplaceAll(name, "_", ".")
	default:
		return name
	}
}

// ToSnake normalizes a name written in any supported case style back to
// the canonical snake_case form.
func ToSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		switch {
		case r == '.' || r == '-':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
