package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/catalog"
	"github.com/teemow/lark-mcp/internal/config"
)

func newListToolsCmd() *cobra.Command {
	var (
		tools     string
		tokenMode string
		language  string
		nameCase  string
		keyword   string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "list-tools",
		Short: "List the tools a configuration would expose",
		Long: `List the catalog tools that survive preset expansion and filtering,
as one JSON document with a total count.

The --tools value accepts tool names and preset names (preset.default,
preset.light, preset.im.default, ...) in any mix. An empty value means
the default preset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := catalog.FilterCriteria{
				AllowTools: catalog.ExpandPresets(config.ParseStringList(tools)),
				TokenMode:  catalog.ParseTokenMode(tokenMode),
				Locale:     catalog.ParseLocale(language),
				Keyword:    keyword,
			}
			selected := catalog.Filter(catalog.Default(), criteria)
			return printToolList(os.Stdout, selected, criteria.Locale, catalog.ParseNameCase(nameCase), verbose)
		},
	}

	cmd.Flags().StringVarP(&tools, "tools", "t", "", "Tool and preset names to expose (comma-separated). Empty means preset.default.")
	cmd.Flags().StringVar(&tokenMode, "token-mode", "auto", "Token mode: auto, user_access_token or tenant_access_token")
	cmd.Flags().StringVarP(&language, "language", "l", "en", "Description language: en or zh")
	cmd.Flags().StringVar(&nameCase, "tool-name-case", "snake", "Tool name case: snake, camel, kebab or dot")
	cmd.Flags().StringVar(&keyword, "filter", "", "Keep only tools whose name, description or project contains this keyword")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include each tool's parameter schema")

	return cmd
}

// listedTool is the JSON view of one selected descriptor.
type listedTool struct {
	Name         string          `json:"name"`
	Project      string          `json:"project"`
	Description  string          `json:"description"`
	AccessTokens []string        `json:"access_tokens"`
	Schema       json.RawMessage `json:"schema,omitempty"`
}

// toolList is the document list-tools emits.
type toolList struct {
	Total int          `json:"total"`
	Tools []listedTool `json:"tools"`
}

func printToolList(w io.Writer, tools []catalog.ToolDescriptor, locale catalog.Locale, nameCase catalog.NameCase, verbose bool) error {
	doc := toolList{
		Total: len(tools),
		Tools: make([]listedTool, 0, len(tools)),
	}
	for i := range tools {
		entry := listedTool{
			Name:         catalog.ApplyCase(tools[i].Name, nameCase),
			Project:      tools[i].Project,
			Description:  tools[i].Description.Get(locale),
			AccessTokens: tokenKindNames(tools[i].AccessTokens),
		}
		if verbose {
			entry.Schema = tools[i].Schema
		}
		doc.Tools = append(doc.Tools, entry)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func tokenKindNames(kinds []catalog.TokenKind) []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	return names
}
