package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/singularity-tools/singularity-mcp/internal/calendar"
	"github.com/singularity-tools/singularity-mcp/internal/server"
	"github.com/singularity-tools/singularity-mcp/internal/tools/common"
)

// RegisterCalendarTools registers the Google Calendar tools with the
// MCP server.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listCalendarsTool := mcp.NewTool("calendar_list_calendars",
		mcp.WithDescription("List the calendars on the user's calendar list"),
	)

	s.AddTool(listCalendarsTool, common.InstrumentedToolHandler("calendar_list_calendars", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := sc.CalendarClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		calendars, err := client.ListCalendars(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list calendars: %v", err)), nil
		}

		result, _ := json.MarshalIndent(calendars, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List events on a calendar within a time range"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default: 'primary')"),
		),
		mcp.WithString("timeMin",
			mcp.Description("Inclusive lower bound as RFC 3339 timestamp (e.g. '2025-12-08T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Description("Exclusive upper bound as RFC 3339 timestamp"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of events to return (default: 50)"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandler("calendar_list_events", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		client, err := sc.CalendarClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		events, err := client.ListEvents(ctx,
			common.StringArg(args, "calendarId"),
			common.StringArg(args, "timeMin"),
			common.StringArg(args, "timeMax"),
			int64(common.IntArg(args, "maxResults", 0)))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
		}

		result, _ := json.MarshalIndent(events, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	todayEventsTool := mcp.NewTool("calendar_get_today_events",
		mcp.WithDescription("List events on a calendar for the current local day"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default: 'primary')"),
		),
	)

	s.AddTool(todayEventsTool, common.InstrumentedToolHandler("calendar_get_today_events", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		client, err := sc.CalendarClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		events, err := client.TodayEvents(ctx, common.StringArg(args, "calendarId"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list today's events: %v", err)), nil
		}

		result, _ := json.MarshalIndent(events, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	createEventTool := mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create an event on a calendar"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default: 'primary')"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("The event title"),
		),
		mcp.WithString("description",
			mcp.Description("The event description"),
		),
		mcp.WithString("location",
			mcp.Description("The event location"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time as RFC 3339 timestamp, or YYYY-MM-DD for all-day events"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time as RFC 3339 timestamp, or YYYY-MM-DD for all-day events"),
		),
		mcp.WithBoolean("allDay",
			mcp.Description("Create an all-day event; start and end are dates (default: false)"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandler("calendar_create_event", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		input := calendar.EventInput{
			Summary:     common.StringArg(args, "summary"),
			Description: common.StringArg(args, "description"),
			Location:    common.StringArg(args, "location"),
			Start:       common.StringArg(args, "start"),
			End:         common.StringArg(args, "end"),
			AllDay:      common.BoolArg(args, "allDay", false),
		}
		if input.Summary == "" {
			return mcp.NewToolResultError("summary is required"), nil
		}
		if input.Start == "" || input.End == "" {
			return mcp.NewToolResultError("start and end are required"), nil
		}

		client, err := sc.CalendarClient()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		event, err := client.CreateEvent(ctx, common.StringArg(args, "calendarId"), input)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
		}

		result, _ := json.MarshalIndent(event, "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Event created successfully:\n%s", string(result))), nil
	}))

	return nil
}
