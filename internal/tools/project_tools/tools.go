package project_tools

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

// projectInputFromArgs builds a ProjectInput from the shared project
// arguments.
func projectInputFromArgs(args map[string]interface{}) singularity.ProjectInput {
	return singularity.ProjectInput{
		Title: common.StringArg(args, "title"),
		Note:  common.StringArg(args, "note"),
		Color: common.StringArg(args, "color"),
		Emoji: common.StringArg(args, "emoji"),
	}
}

// RegisterProjectTools registers the project tools with the MCP server.
func RegisterProjectTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listProjectsTool := mcp.NewTool("list_projects",
		mcp.WithDescription("List projects"),
		mcp.WithBoolean("includeArchived",
			mcp.Description("Include archived projects (default: false)"),
		),
		mcp.WithBoolean("includeRemoved",
			mcp.Description("Include removed projects (default: false)"),
		),
		mcp.WithNumber("maxCount",
			mcp.Description("Maximum number of projects to return"),
		),
	)

	s.AddTool(listProjectsTool, common.InstrumentedToolHandler("list_projects", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		projects, err := client.ListProjects(ctx,
			common.BoolArg(args, "includeArchived", false),
			common.BoolArg(args, "includeRemoved", false),
			common.IntArg(args, "maxCount", 0))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list projects: %v", err)), nil
		}

		result, _ := json.MarshalIndent(projects, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	getProjectTool := mcp.NewTool("get_project",
		mcp.WithDescription("Get details of a specific project"),
		mcp.WithString("projectId",
			mcp.Required(),
			mcp.Description("The ID of the project to retrieve (e.g. 'P-123')"),
		),
	)

	s.AddTool(getProjectTool, common.InstrumentedToolHandler("get_project", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		projectID := common.StringArg(args, "projectId")
		if projectID == "" {
			return mcp.NewToolResultError("projectId is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		project, err := client.GetProject(ctx, projectID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project: %v", err)), nil
		}

		result, _ := json.MarshalIndent(project, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	createProjectTool := mcp.NewTool("create_project",
		mcp.WithDescription("Create a new project"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The project title"),
		),
		mcp.WithString("note",
			mcp.Description("A note attached to the project"),
		),
		mcp.WithString("color",
			mcp.Description("HEX color for the project (e.g. '#ad1457')"),
		),
		mcp.WithString("emoji",
			mcp.Description("Emoji hex code for the project icon (e.g. '1f49e')"),
		),
	)

	s.AddTool(createProjectTool, common.InstrumentedToolHandler("create_project", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		input := projectInputFromArgs(args)
		if input.Title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		project, err := client.CreateProject(ctx, input)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create project: %v", err)), nil
		}

		result, _ := json.MarshalIndent(project, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Project created successfully:\n%s", string(result))), nil
	}))

	updateProjectTool := mcp.NewTool("update_project",
		mcp.WithDescription("Update fields of an existing project. Only the provided fields change."),
		mcp.WithString("projectId",
			mcp.Required(),
			mcp.Description("The ID of the project to update"),
		),
		mcp.WithString("title",
			mcp.Description("New project title"),
		),
		mcp.WithString("note",
			mcp.Description("New note"),
		),
		mcp.WithString("color",
			mcp.Description("New HEX color"),
		),
	)

	s.AddTool(updateProjectTool, common.InstrumentedToolHandler("update_project", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		projectID := common.StringArg(args, "projectId")
		if projectID == "" {
			return mcp.NewToolResultError("projectId is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		project, err := client.UpdateProject(ctx, projectID, projectInputFromArgs(args))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update project: %v", err)), nil
		}

		result, _ := json.MarshalIndent(project, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Project updated successfully:\n%s", string(result))), nil
	}))

	deleteProjectTool := mcp.NewTool("delete_project",
		mcp.WithDescription("Delete a project permanently"),
		mcp.WithString("projectId",
			mcp.Required(),
			mcp.Description("The ID of the project to delete"),
		),
	)

	s.AddTool(deleteProjectTool, common.InstrumentedToolHandler("delete_project", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		projectID := common.StringArg(args, "projectId")
		if projectID == "" {
			return mcp.NewToolResultError("projectId is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.DeleteProject(ctx, projectID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete project: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Project %s deleted successfully", projectID)), nil
	}))

	return nil
}
