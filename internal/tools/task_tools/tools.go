package task_tools

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

// getClient retrieves the SingularityApp client from the server context.
func getClient(sc *server.ServerContext) (*singularity.Client, error) {
	client, err := sc.SingularityClient()
	if err != nil {
		return nil, fmt.Errorf("SingularityApp API is not configured: %w", err)
	}
	return client, nil
}

// taskInputFromArgs builds a TaskInput from the shared task arguments.
func taskInputFromArgs(args map[string]interface{}) singularity.TaskInput {
	input := singularity.TaskInput{
		Title:   common.StringArg(args, "title"),
		Note:    common.StringArg(args, "note"),
		Project: common.StringArg(args, "project"),
		Group:   common.StringArg(args, "group"),
		Parent:  common.StringArg(args, "parent"),
		Start:   common.StringArg(args, "start"),
		Due:     common.StringArg(args, "due"),
	}
	if _, ok := args["priority"]; ok {
		priority := common.IntArg(args, "priority", singularity.PriorityNormal)
		input.Priority = &priority
	}
	return input
}

// RegisterTaskTools registers all task-related tools with the MCP server.
func RegisterTaskTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	registerReadTools(s, sc)
	registerCreateTools(s, sc)
	if !readOnly {
		registerWriteTools(s, sc)
	}
	return nil
}

func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	listTasksTool := mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks, optionally filtered by project and start date range"),
		mcp.WithString("project",
			mcp.Description("Project ID to filter by (e.g. 'P-123')"),
		),
		mcp.WithString("startDateFrom",
			mcp.Description("Inclusive lower bound for the scheduled start (format: 2006-01-02T15:04:05)"),
		),
		mcp.WithString("startDateTo",
			mcp.Description("Exclusive upper bound for the scheduled start (format: 2006-01-02T15:04:05)"),
		),
		mcp.WithBoolean("includeArchived",
			mcp.Description("Include archived tasks (default: false)"),
		),
		mcp.WithBoolean("includeRemoved",
			mcp.Description("Include removed tasks (default: false)"),
		),
		mcp.WithBoolean("includeAllRecurrenceInstances",
			mcp.Description("Include every instance of recurring tasks instead of only the current one (default: false)"),
		),
		mcp.WithNumber("maxCount",
			mcp.Description("Maximum number of tasks to return"),
		),
	)

	s.AddTool(listTasksTool, common.InstrumentedToolHandler("list_tasks", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tasks, err := client.ListTasks(ctx, singularity.TaskFilter{
			ProjectID:                     common.StringArg(args, "project"),
			StartDateFrom:                 common.StringArg(args, "startDateFrom"),
			StartDateTo:                   common.StringArg(args, "startDateTo"),
			IncludeArchived:               common.BoolArg(args, "includeArchived", false),
			IncludeRemoved:                common.BoolArg(args, "includeRemoved", false),
			IncludeAllRecurrenceInstances: common.BoolArg(args, "includeAllRecurrenceInstances", false),
			MaxCount:                      common.IntArg(args, "maxCount", 0),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks: %v", err)), nil
		}

		result, _ := json.MarshalIndent(tasks, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	getTaskTool := mcp.NewTool("get_task",
		mcp.WithDescription("Get details of a specific task"),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to retrieve (e.g. 'T-123')"),
		),
	)

	s.AddTool(getTaskTool, common.InstrumentedToolHandler("get_task", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskID := common.StringArg(args, "taskId")
		if taskID == "" {
			return mcp.NewToolResultError("taskId is required"), nil
		}

		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		task, err := client.GetTask(ctx, taskID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get task: %v", err)), nil
		}

		result, _ := json.MarshalIndent(task, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	todayTasksTool := mcp.NewTool("get_today_tasks",
		mcp.WithDescription("List tasks scheduled for today (local time). Recurring tasks appear once."),
	)

	s.AddTool(todayTasksTool, common.InstrumentedToolHandler("get_today_tasks", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tasks, err := client.TodayTasks(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list today's tasks: %v", err)), nil
		}

		result, _ := json.MarshalIndent(tasks, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))
}

func registerCreateTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createTaskTool := mcp.NewTool("create_task",
		mcp.WithDescription("Create a new task. Tasks created inside a project are placed into the project's default task group unless 'group' is set."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The task title"),
		),
		mcp.WithString("note",
			mcp.Description("A note attached to the task"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Task priority: 0=high, 1=normal, 2=low (default: 1)"),
		),
		mcp.WithString("project",
			mcp.Description("Project ID to place the task in (e.g. 'P-123')"),
		),
		mcp.WithString("group",
			mcp.Description("Task group ID within the project (e.g. 'Q-123'). Resolved automatically when omitted."),
		),
		mcp.WithString("parent",
			mcp.Description("Parent task ID for creating a subtask"),
		),
		mcp.WithString("start",
			mcp.Description("Scheduled start (format: 2006-01-02T15:04:05, local time)"),
		),
		mcp.WithString("due",
			mcp.Description("Due date (format: 2006-01-02T15:04:05, local time)"),
		),
	)

	s.AddTool(createTaskTool, common.InstrumentedToolHandler("create_task", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		input := taskInputFromArgs(args)
		if input.Title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		task, err := client.CreateTask(ctx, input)
		if err != nil {
			if singularity.IsNoTaskGroup(err) {
				return mcp.NewToolResultError(fmt.Sprintf("Project %s has no task groups; create one first or pass 'group' explicitly", input.Project)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create task: %v", err)), nil
		}

		result, _ := json.MarshalIndent(task, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Task created successfully:\n%s", string(result))), nil
	}))
}

func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	updateTaskTool := mcp.NewTool("update_task",
		mcp.WithDescription("Update fields of an existing task. Only the provided fields change."),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("title",
			mcp.Description("New task title"),
		),
		mcp.WithString("note",
			mcp.Description("New note"),
		),
		mcp.WithNumber("priority",
			mcp.Description("New priority: 0=high, 1=normal, 2=low"),
		),
		mcp.WithString("project",
			mcp.Description("Move the task to this project. The default task group of the target project is resolved unless 'group' is set."),
		),
		mcp.WithString("group",
			mcp.Description("Task group ID within the target project"),
		),
		mcp.WithString("start",
			mcp.Description("New scheduled start (format: 2006-01-02T15:04:05)"),
		),
		mcp.WithString("due",
			mcp.Description("New due date (format: 2006-01-02T15:04:05)"),
		),
	)

	s.AddTool(updateTaskTool, common.InstrumentedToolHandler("update_task", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskID := common.StringArg(args, "taskId")
		if taskID == "" {
			return mcp.NewToolResultError("taskId is required"), nil
		}

		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		task, err := client.UpdateTask(ctx, taskID, taskInputFromArgs(args))
		if err != nil {
			if singularity.IsNoTaskGroup(err) {
				return mcp.NewToolResultError("Target project has no task groups; create one first or pass 'group' explicitly"), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update task: %v", err)), nil
		}

		result, _ := json.MarshalIndent(task, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Task updated successfully:\n%s", string(result))), nil
	}))

	completeTaskTool := mcp.NewTool("complete_task",
		mcp.WithDescription("Mark a task as completed by stamping today's journal date"),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to complete"),
		),
	)

	s.AddTool(completeTaskTool, common.InstrumentedToolHandler("complete_task", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskID := common.StringArg(args, "taskId")
		if taskID == "" {
			return mcp.NewToolResultError("taskId is required"), nil
		}

		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		task, err := client.CompleteTask(ctx, taskID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to complete task: %v", err)), nil
		}

		result, _ := json.MarshalIndent(task, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Task completed:\n%s", string(result))), nil
	}))

	deleteTaskTool := mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task permanently"),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to delete"),
		),
	)

	s.AddTool(deleteTaskTool, common.InstrumentedToolHandler("delete_task", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskID := common.StringArg(args, "taskId")
		if taskID == "" {
			return mcp.NewToolResultError("taskId is required"), nil
		}

		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.DeleteTask(ctx, taskID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete task: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Task %s deleted successfully", taskID)), nil
	}))

	addChecklistItemTool := mcp.NewTool("add_checklist_item",
		mcp.WithDescription("Add a checklist item to a task"),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to attach the item to"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The checklist item text"),
		),
	)

	s.AddTool(addChecklistItemTool, common.InstrumentedToolHandler("add_checklist_item", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		taskID := common.StringArg(args, "taskId")
		if taskID == "" {
			return mcp.NewToolResultError("taskId is required"), nil
		}
		title := common.StringArg(args, "title")
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		client, err := getClient(sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		item, err := client.CreateChecklistItem(ctx, taskID, title)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to add checklist item: %v", err)), nil
		}

		result, _ := json.MarshalIndent(item, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Checklist item added:\n%s", string(result))), nil
	}))
}
