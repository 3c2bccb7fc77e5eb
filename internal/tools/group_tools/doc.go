// Package group_tools provides MCP tools for SingularityApp task
// groups (the sections within a project).
//
//   - list_task_groups: List the task groups of a project
//   - get_default_task_group: Resolve the project's default group
//   - create_task_group: Create a new group (requires --yolo)
//   - invalidate_group_cache: Drop cached default-group resolutions
package group_tools
