package singularity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ListTasks lists tasks matching the given filter.
//
// The listing endpoint returns either a bare array of tasks or an
// object wrapping the array under a "tasks" key; both shapes are
// accepted. Any other payload shape yields an empty result with a
// warning, never an error, since an empty list is a safe default for a
// read operation.
func (c *Client) ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	query := url.Values{}
	query.Set("includeArchived", strconv.FormatBool(filter.IncludeArchived))
	query.Set("includeRemoved", strconv.FormatBool(filter.IncludeRemoved))
	query.Set("includeAllRecurrenceInstances", strconv.FormatBool(filter.IncludeAllRecurrenceInstances))
	if filter.ProjectID != "" {
		query.Set("projectId", filter.ProjectID)
	}
	if filter.StartDateFrom != "" {
		query.Set("startDateFrom", filter.StartDateFrom)
	}
	if filter.StartDateTo != "" {
		query.Set("startDateTo", filter.StartDateTo)
	}
	if filter.MaxCount > 0 {
		query.Set("maxCount", strconv.Itoa(filter.MaxCount))
	}

	var raw json.RawMessage
	if err := c.do(ctx, "listTasks", "GET", "/task", query, nil, &raw); err != nil {
		return nil, err
	}

	tasks, ok := decodeListPayload[Task](raw, "tasks")
	if !ok {
		c.logger.Warn("unexpected task listing payload shape, treating as empty")
	}
	return tasks, nil
}

// TodayTasks lists the tasks scheduled for today. The range runs from
// the start of the current local day to the start of the next day, the
// upper bound being exclusive on the API side, so midnight-boundary
// tasks are neither dropped nor double-counted. Only the current
// instance of each recurring task is returned.
//
// The filter matches the scheduled start timestamp, not the due date.
func (c *Client) TodayTasks(ctx context.Context) ([]Task, error) {
	start, end := todayRange(time.Now())
	return c.ListTasks(ctx, TaskFilter{
		StartDateFrom:                 start.Format(DateLayout),
		StartDateTo:                   end.Format(DateLayout),
		IncludeAllRecurrenceInstances: false,
	})
}

// GetTask retrieves a single task by ID.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("taskID cannot be empty")
	}

	var task Task
	if err := c.do(ctx, "getTask", "GET", "/task/"+taskID, nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task. When the input names a project but no
// task group, the project's default group is resolved first so the task
// renders inside the project view. A group without a project is
// meaningless downstream and is dropped from the outgoing request.
func (c *Client) CreateTask(ctx context.Context, input TaskInput) (*Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	body := map[string]interface{}{
		"title": input.Title,
	}
	if input.Priority != nil {
		body["priority"] = *input.Priority
	} else {
		body["priority"] = PriorityNormal
	}
	if input.Note != "" {
		body["note"] = input.Note
	}
	if input.Start != "" {
		body["start"] = input.Start
	}
	if input.Due != "" {
		body["due"] = input.Due
	}
	if input.Parent != "" {
		body["parent"] = input.Parent
	}

	if err := c.applyProjectAndGroup(ctx, body, input.Project, input.Group); err != nil {
		return nil, err
	}

	var task Task
	if err := c.do(ctx, "createTask", "POST", "/task", nil, body, &task); err != nil {
		return nil, err
	}

	c.logger.Info("task created", "task", task.ID, "project", input.Project)
	return &task, nil
}

// UpdateTask updates an existing task. Only the provided fields are
// sent. The project/group rule matches CreateTask: moving a task to a
// different project without naming a group re-resolves the default
// group for the new project.
func (c *Client) UpdateTask(ctx context.Context, taskID string, input TaskInput) (*Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("taskID cannot be empty")
	}

	body := map[string]interface{}{}
	if input.Title != "" {
		body["title"] = input.Title
	}
	if input.Note != "" {
		body["note"] = input.Note
	}
	if input.Priority != nil {
		body["priority"] = *input.Priority
	}
	if input.Start != "" {
		body["start"] = input.Start
	}
	if input.Due != "" {
		body["due"] = input.Due
	}
	if input.Parent != "" {
		body["parent"] = input.Parent
	}

	if err := c.applyProjectAndGroup(ctx, body, input.Project, input.Group); err != nil {
		return nil, err
	}

	var task Task
	if err := c.do(ctx, "updateTask", "PATCH", "/task/"+taskID, nil, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CompleteTask marks a task as completed by stamping today's journal
// date, which archives it in the client application.
func (c *Client) CompleteTask(ctx context.Context, taskID string) (*Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("taskID cannot be empty")
	}

	body := map[string]interface{}{
		"journalDate": time.Now().Format(DayLayout),
	}

	var task Task
	if err := c.do(ctx, "completeTask", "PATCH", "/task/"+taskID, nil, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task permanently.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return fmt.Errorf("taskID cannot be empty")
	}
	return c.do(ctx, "deleteTask", "DELETE", "/task/"+taskID, nil, nil, nil)
}

// CreateChecklistItem adds a checklist item to a task.
func (c *Client) CreateChecklistItem(ctx context.Context, taskID, title string) (*ChecklistItem, error) {
	if taskID == "" {
		return nil, fmt.Errorf("taskID cannot be empty")
	}
	if title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	body := map[string]interface{}{
		"title":  title,
		"parent": taskID,
	}

	var item ChecklistItem
	if err := c.do(ctx, "createChecklistItem", "POST", "/checklist-item", nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// applyProjectAndGroup fills the project and group fields of an
// outgoing task payload. A group is only ever sent together with a
// project; when the project is given without a group, the project's
// default group is resolved (cached per project).
func (c *Client) applyProjectAndGroup(ctx context.Context, body map[string]interface{}, project, group string) error {
	if project == "" {
		return nil
	}

	body["project"] = project

	if group == "" {
		resolved, err := c.DefaultTaskGroup(ctx, project)
		if err != nil {
			return err
		}
		group = resolved
	}
	body["group"] = group
	return nil
}

// decodeListPayload decodes a listing payload that is either a bare
// JSON array or an object wrapping the array under the given key.
// The second return value is false when the shape is unrecognized
// (null, a wrapper without the key, or anything else); the caller gets
// an empty slice either way.
func decodeListPayload[T any](raw json.RawMessage, key string) ([]T, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}, false
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return []T{}, false
		}
		if items == nil {
			items = []T{}
		}
		return items, true
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return []T{}, false
		}
		inner, ok := wrapper[key]
		if !ok {
			return []T{}, false
		}
		var items []T
		if err := json.Unmarshal(inner, &items); err != nil {
			return []T{}, false
		}
		if items == nil {
			items = []T{}
		}
		return items, true
	default:
		return []T{}, false
	}
}
