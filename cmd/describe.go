package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/catalog"
)

func newDescribeCmd() *cobra.Command {
	var (
		language   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "describe <tool>",
		Short: "Show one tool's description, binding and parameter schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(args[0], catalog.ParseLocale(language), jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "en", "Description language: en or zh")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the description as a JSON document")

	return cmd
}

// toolDetail is the JSON view of one descriptor.
type toolDetail struct {
	Name         string          `json:"name"`
	Project      string          `json:"project"`
	Description  string          `json:"description"`
	AccessTokens []string        `json:"access_tokens"`
	HTTPMethod   string          `json:"http_method,omitempty"`
	Path         string          `json:"path,omitempty"`
	SDKName      string          `json:"sdk_name,omitempty"`
	Schema       json.RawMessage `json:"schema"`
}

func runDescribe(name string, locale catalog.Locale, jsonOutput bool) error {
	tool, ok := catalog.Default().FindCased(name)
	if !ok {
		return fmt.Errorf("unknown tool: %s", name)
	}

	detail := toolDetail{
		Name:         tool.Name,
		Project:      tool.Project,
		Description:  tool.Description.Get(locale),
		AccessTokens: tokenKindNames(tool.AccessTokens),
		Schema:       tool.Schema,
	}
	if binding, ok := tool.Binding(); ok {
		detail.HTTPMethod = binding.HTTPMethod
		detail.Path = binding.Path
		detail.SDKName = binding.SDKName
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}

	fmt.Printf("Name:         %s\n", detail.Name)
	fmt.Printf("Project:      %s\n", detail.Project)
	fmt.Printf("Description:  %s\n", detail.Description)
	fmt.Printf("Tokens:       %v\n", detail.AccessTokens)
	if detail.SDKName != "" {
		fmt.Printf("Binding:      %s %s (%s)\n", detail.HTTPMethod, detail.Path, detail.SDKName)
	} else {
		fmt.Printf("Binding:      custom handler\n")
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, tool.Schema, "", "  "); err != nil {
		return fmt.Errorf("failed to render schema: %w", err)
	}
	fmt.Printf("Schema:\n%s\n", pretty.String())
	return nil
}
