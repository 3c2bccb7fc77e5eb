// Package calendar_tools provides MCP tools for Google Calendar.
//
//   - calendar_list_calendars: List the user's calendars
//   - calendar_list_events: List events in a time range
//   - calendar_get_today_events: List today's events
//   - calendar_create_event: Create an event (requires --yolo)
//
// Authentication uses a pre-issued OAuth access token from the
// GOOGLE_ACCESS_TOKEN environment variable.
package calendar_tools
