package tag_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/singularity-tools/singularity-mcp/internal/server"
	"github.com/singularity-tools/singularity-mcp/internal/tools/common"
)

// RegisterTagTools registers the tag tools with the MCP server.
func RegisterTagTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listTagsTool := mcp.NewTool("list_tags",
		mcp.WithDescription("List tags"),
		mcp.WithBoolean("includeRemoved",
			mcp.Description("Include removed tags (default: false)"),
		),
		mcp.WithNumber("maxCount",
			mcp.Description("Maximum number of tags to return"),
		),
	)

	s.AddTool(listTagsTool, common.InstrumentedToolHandler("list_tags", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tags, err := client.ListTags(ctx,
			common.BoolArg(args, "includeRemoved", false),
			common.IntArg(args, "maxCount", 0))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list tags: %v", err)), nil
		}

		result, _ := json.MarshalIndent(tags, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	createTagTool := mcp.NewTool("create_tag",
		mcp.WithDescription("Create a new tag, optionally nested under a parent tag"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The tag title"),
		),
		mcp.WithString("parent",
			mcp.Description("Parent tag ID for nesting"),
		),
	)

	s.AddTool(createTagTool, common.InstrumentedToolHandler("create_tag", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		title := common.StringArg(args, "title")
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tag, err := client.CreateTag(ctx, title, common.StringArg(args, "parent"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create tag: %v", err)), nil
		}

		result, _ := json.MarshalIndent(tag, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Tag created successfully:\n%s", string(result))), nil
	}))

	deleteTagTool := mcp.NewTool("delete_tag",
		mcp.WithDescription("Delete a tag"),
		mcp.WithString("tagId",
			mcp.Required(),
			mcp.Description("The ID of the tag to delete"),
		),
	)

	s.AddTool(deleteTagTool, common.InstrumentedToolHandler("delete_tag", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		tagID := common.StringArg(args, "tagId")
		if tagID == "" {
			return mcp.NewToolResultError("tagId is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.DeleteTag(ctx, tagID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete tag: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Tag %s deleted successfully", tagID)), nil
	}))

	return nil
}
