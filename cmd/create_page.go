package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/logging"
	"github.com/singularity-tools/singularity-mcp/internal/notion"
)

func newCreatePageCmd() *cobra.Command {
	var debugMode bool

	cmd := &cobra.Command{
		Use:   "create-page <database-id> <title>",
		Short: "Create a Notion page inside a database",
		Long: `Create a new page inside a Notion database and print the page ID.

The Notion integration token is read from the NOTION_API_TOKEN
environment variable. The integration must be shared with the target
database.

Example:
  singularity-mcp create-page 1429989fe8ac4effbc8f57f56486db54 "Weekly review"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			databaseID, title := args[0], args[1]

			logger := logging.New(debugMode)
			cfg := config.FromEnv()
			if err := cfg.RequireNotion(); err != nil {
				return err
			}

			client, err := notion.NewClient(cfg, logger)
			if err != nil {
				return err
			}

			page, err := client.CreatePage(cmd.Context(), databaseID, title)
			if err != nil {
				return fmt.Errorf("failed to create page: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), page.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	return cmd
}
