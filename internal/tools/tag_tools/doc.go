// Package tag_tools provides MCP tools for SingularityApp tags.
//
//   - list_tags: List tags
//   - create_tag: Create a tag, optionally nested (requires --yolo)
//   - delete_tag: Delete a tag (requires --yolo)
package tag_tools
