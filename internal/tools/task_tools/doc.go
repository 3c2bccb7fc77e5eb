// Package task_tools provides MCP tools for managing SingularityApp
// tasks.
//
// # Available Tools
//
// Read operations (always available):
//   - list_tasks: List tasks with filters
//   - get_task: Get details of a specific task
//   - get_today_tasks: List tasks scheduled for the current local day
//   - create_task: Create a new task
//
// Write operations (require --yolo):
//   - update_task: Update fields of an existing task
//   - complete_task: Mark a task as completed
//   - delete_task: Delete a task permanently
//   - add_checklist_item: Add a checklist item to a task
//
// Tasks created inside a project are placed into the project's default
// task group automatically unless a group is named explicitly.
package task_tools
