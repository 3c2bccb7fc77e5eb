package group_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/singularity-tools/singularity-mcp/internal/server"
	"github.com/singularity-tools/singularity-mcp/internal/singularity"
	"github.com/singularity-tools/singularity-mcp/internal/tools/common"
)

// RegisterGroupTools registers the task-group tools with the MCP server.
func RegisterGroupTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listGroupsTool := mcp.NewTool("list_task_groups",
		mcp.WithDescription("List the task groups of a project"),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID (e.g. 'P-123')"),
		),
		mcp.WithNumber("maxCount",
			mcp.Description("Maximum number of groups to return"),
		),
	)

	s.AddTool(listGroupsTool, common.InstrumentedToolHandler("list_task_groups", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		projectID := common.StringArg(args, "project")
		if projectID == "" {
			return mcp.NewToolResultError("project is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		groups, err := client.ListTaskGroups(ctx, projectID, common.IntArg(args, "maxCount", 0))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list task groups: %v", err)), nil
		}

		result, _ := json.MarshalIndent(groups, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	defaultGroupTool := mcp.NewTool("get_default_task_group",
		mcp.WithDescription("Resolve the default task group of a project. The result is cached per project."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID (e.g. 'P-123')"),
		),
	)

	s.AddTool(defaultGroupTool, common.InstrumentedToolHandler("get_default_task_group", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		projectID := common.StringArg(args, "project")
		if projectID == "" {
			return mcp.NewToolResultError("project is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		groupID, err := client.DefaultTaskGroup(ctx, projectID)
		if err != nil {
			if singularity.IsNoTaskGroup(err) {
				return mcp.NewToolResultError(fmt.Sprintf("Project %s has no task groups", projectID)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve default task group: %v", err)), nil
		}

		return mcp.NewToolResultText(groupID), nil
	}))

	invalidateTool := mcp.NewTool("invalidate_group_cache",
		mcp.WithDescription("Drop cached default-group resolutions, for one project or all of them. Use after reorganizing project sections."),
		mcp.WithString("project",
			mcp.Description("Project ID to invalidate. Omit to clear the whole cache."),
		),
	)

	s.AddTool(invalidateTool, common.InstrumentedToolHandler("invalidate_group_cache", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		projectID := common.StringArg(args, "project")
		client.InvalidateGroupCache(projectID)

		if projectID == "" {
			return mcp.NewToolResultText("Group cache cleared"), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Group cache cleared for project %s", projectID)), nil
	}))

	if !readOnly {
		createGroupTool := mcp.NewTool("create_task_group",
			mcp.WithDescription("Create a new task group inside a project"),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The group title"),
			),
			mcp.WithString("project",
				mcp.Required(),
				mcp.Description("The owning project ID (e.g. 'P-123')"),
			),
		)

		s.AddTool(createGroupTool, common.InstrumentedToolHandler("create_task_group", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			title := common.StringArg(args, "title")
			if title == "" {
				return mcp.NewToolResultError("title is required"), nil
			}
			projectID := common.StringArg(args, "project")
			if projectID == "" {
				return mcp.NewToolResultError("project is required"), nil
			}

			client, err := sc.SingularityClient()
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			group, err := client.CreateTaskGroup(ctx, singularity.TaskGroupInput{Title: title, Parent: projectID})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create task group: %v", err)), nil
			}

			result, _ := json.MarshalIndent(group, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Task group created successfully:\n%s", string(result))), nil
		}))
	}

	return nil
}
