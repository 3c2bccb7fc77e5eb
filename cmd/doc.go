// Package cmd implements the command-line interface for
// singularity-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide tools for AI assistants
//   - create-page: Create a Notion page inside a database
//   - version: Display version information
//
// The serve command is the default command when no subcommand is
// specified.
package cmd
