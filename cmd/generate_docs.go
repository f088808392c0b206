package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/catalog"
)

func newGenerateDocsCmd() *cobra.Command {
	var (
		outputFile string
		language   string
	)

	cmd := &cobra.Command{
		Use:   "generate-docs",
		Short: "Generate MCP tool documentation",
		Long: `Generate markdown documentation for all catalog tools.
This command introspects the tool descriptors and outputs their
documentation in markdown format, ensuring the documentation is always
accurate and in sync with the actual tool definitions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateDocs(outputFile, catalog.ParseLocale(language))
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&language, "language", "l", "en", "Description language: en or zh")

	return cmd
}

func runGenerateDocs(outputFile string, locale catalog.Locale) error {
	markdown := generateToolsMarkdown(catalog.Default().All(), locale)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Documentation written to: %s\n", outputFile)
	} else {
		fmt.Print(markdown)
	}

	return nil
}

func generateToolsMarkdown(tools []catalog.ToolDescriptor, locale catalog.Locale) string {
	var sb strings.Builder

	sb.WriteString("# MCP Tools Reference\n\n")
	sb.WriteString("This document provides a complete reference of all tools available when running lark-mcp as an MCP server.\n\n")
	sb.WriteString("**Note:** This documentation is automatically generated from the tool definitions.\n\n")

	toolsByProject := make(map[string][]catalog.ToolDescriptor)
	for _, tool := range tools {
		toolsByProject[tool.Project] = append(toolsByProject[tool.Project], tool)
	}

	projects := make([]string, 0, len(toolsByProject))
	for project := range toolsByProject {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	sb.WriteString("## Table of Contents\n\n")
	for _, project := range projects {
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", project, project))
	}
	sb.WriteString("\n")

	for _, project := range projects {
		projectTools := toolsByProject[project]
		sort.Slice(projectTools, func(i, j int) bool {
			return projectTools[i].Name < projectTools[j].Name
		})

		sb.WriteString(fmt.Sprintf("## %s\n\n", project))
		for _, tool := range projectTools {
			sb.WriteString(generateToolMarkdown(tool, locale))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func generateToolMarkdown(tool catalog.ToolDescriptor, locale catalog.Locale) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("### %s\n\n", tool.Name))
	sb.WriteString(tool.Description.Get(locale))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("**Access tokens:** %s\n\n", strings.Join(tokenKindNames(tool.AccessTokens), ", ")))
	if binding, ok := tool.Binding(); ok {
		sb.WriteString(fmt.Sprintf("**API:** `%s %s`\n\n", binding.HTTPMethod, binding.Path))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, tool.Schema, "", "  "); err == nil {
		sb.WriteString("**Parameters:**\n\n")
		sb.WriteString("```json\n")
		sb.Write(pretty.Bytes())
		sb.WriteString("\n```\n")
	}

	return sb.String()
}
