// Package project_tools provides MCP tools for SingularityApp
// projects.
//
//   - list_projects: List projects
//   - get_project: Get details of a specific project
//   - create_project: Create a new project (requires --yolo)
//   - update_project: Update a project (requires --yolo)
//   - delete_project: Delete a project permanently (requires --yolo)
package project_tools
