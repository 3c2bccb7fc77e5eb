// Package notion_tools provides MCP tools for Notion.
//
//   - notion_create_page: Create a page inside a database (requires --yolo)
//
// Authentication uses a Notion integration token from the
// NOTION_API_TOKEN environment variable. The integration must be
// shared with the target database.
package notion_tools
