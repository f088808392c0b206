package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/logging"
)

// rootCmd represents the base command for the lark-mcp application
var rootCmd = &cobra.Command{
	Use:   "lark-mcp",
	Short: "Expose the Lark/Feishu OpenAPI as MCP tools",
	Long: `lark-mcp exposes the Lark (Feishu) OpenAPI surface as a catalog of
tools consumable over the Model Context Protocol.

It can run as:
  - An MCP server for AI assistants (lark-mcp mcp)
  - A standalone CLI for inspecting and calling tools directly`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(rootDebug)
	},
}

// rootDebug enables debug logging for every command.
var rootDebug bool

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "lark-mcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newListToolsCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newCallCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newMailExportCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
