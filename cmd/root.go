package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the singularity-mcp application
var rootCmd = &cobra.Command{
	Use:   "singularity-mcp",
	Short: "MCP server for SingularityApp, Notion and Google Calendar",
	Long: `singularity-mcp exposes the SingularityApp task manager, Notion page
creation and Google Calendar to AI assistants via the Model Context
Protocol (MCP).

It can run as:
  - An MCP server over stdio or streamable HTTP (default)
  - A standalone CLI for creating Notion pages`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "singularity-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCreatePageCmd())
	rootCmd.AddCommand(newVersionCmd())
}
