package habit_tools

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

// RegisterHabitTools registers the habit tools with the MCP server.
func RegisterHabitTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listHabitsTool := mcp.NewTool("list_habits",
		mcp.WithDescription("List habits"),
		mcp.WithNumber("maxCount",
			mcp.Description("Maximum number of habits to return"),
		),
	)

	s.AddTool(listHabitsTool, common.InstrumentedToolHandler("list_habits", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		habits, err := client.ListHabits(ctx, common.IntArg(args, "maxCount", 0))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list habits: %v", err)), nil
		}

		result, _ := json.MarshalIndent(habits, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	createHabitTool := mcp.NewTool("create_habit",
		mcp.WithDescription("Create a new habit"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The habit title"),
		),
		mcp.WithString("description",
			mcp.Description("A description of the habit"),
		),
		mcp.WithString("color",
			mcp.Description("Color name for the habit (e.g. 'red')"),
		),
	)

	s.AddTool(createHabitTool, common.InstrumentedToolHandler("create_habit", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		title := common.StringArg(args, "title")
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		habit, err := client.CreateHabit(ctx, title,
			common.StringArg(args, "description"),
			common.StringArg(args, "color"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create habit: %v", err)), nil
		}

		result, _ := json.MarshalIndent(habit, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Habit created successfully:\n%s", string(result))), nil
	}))

	markHabitTool := mcp.NewTool("mark_habit",
		mcp.WithDescription("Record habit progress for a date. Skipped keeps the streak without counting the day as done."),
		mcp.WithString("habitId",
			mcp.Required(),
			mcp.Description("The ID of the habit"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The date to record (format: 2006-01-02T15:04:05)"),
		),
		mcp.WithBoolean("skipped",
			mcp.Description("Mark the day as skipped instead of done (default: false)"),
		),
	)

	s.AddTool(markHabitTool, common.InstrumentedToolHandler("mark_habit", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		habitID := common.StringArg(args, "habitId")
		if habitID == "" {
			return mcp.NewToolResultError("habitId is required"), nil
		}
		date := common.StringArg(args, "date")
		if date == "" {
			return mcp.NewToolResultError("date is required"), nil
		}

		progress := singularity.HabitProgressDone
		if common.BoolArg(args, "skipped", false) {
			progress = singularity.HabitProgressSkipped
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.MarkHabit(ctx, habitID, date, progress); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to mark habit: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Habit %s marked for %s", habitID, date)), nil
	}))

	deleteHabitTool := mcp.NewTool("delete_habit",
		mcp.WithDescription("Delete a habit"),
		mcp.WithString("habitId",
			mcp.Required(),
			mcp.Description("The ID of the habit to delete"),
		),
	)

	s.AddTool(deleteHabitTool, common.InstrumentedToolHandler("delete_habit", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		habitID := common.StringArg(args, "habitId")
		if habitID == "" {
			return mcp.NewToolResultError("habitId is required"), nil
		}

		client, err := sc.SingularityClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.DeleteHabit(ctx, habitID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete habit: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Habit %s deleted successfully", habitID)), nil
	}))

	return nil
}
