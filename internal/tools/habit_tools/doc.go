// Package habit_tools provides MCP tools for SingularityApp habits.
//
//   - list_habits: List habits
//   - create_habit: Create a new habit (requires --yolo)
//   - mark_habit: Record habit progress for a date (requires --yolo)
//   - delete_habit: Delete a habit (requires --yolo)
//
// Habit progress distinguishes done (2) from skipped (1); a skipped
// day keeps the streak alive without counting as done.
package habit_tools
