package notion_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/singularity-tools/singularity-mcp/internal/server"
	"github.com/singularity-tools/singularity-mcp/internal/tools/common"
)

// RegisterNotionTools registers the Notion tools with the MCP server.
// Page creation mutates the workspace, so nothing is registered in
// read-only mode.
func RegisterNotionTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if readOnly {
		return nil
	}

	createPageTool := mcp.NewTool("notion_create_page",
		mcp.WithDescription("Create a new page inside a Notion database. Returns the page ID for follow-up edits."),
		mcp.WithString("databaseId",
			mcp.Required(),
			mcp.Description("The ID of the Notion database to create the page in"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The page title"),
		),
	)

	s.AddTool(createPageTool, common.InstrumentedToolHandler("notion_create_page", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		databaseID := common.StringArg(args, "databaseId")
		if databaseID == "" {
			return mcp.NewToolResultError("databaseId is required"), nil
		}
		title := common.StringArg(args, "title")
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		client, err := sc.NotionClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		page, err := client.CreatePage(ctx, databaseID, title)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create page: %v", err)), nil
		}

		result, _ := json.MarshalIndent(page, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Page created successfully:\n%s", string(result))), nil
	}))

	return nil
}
