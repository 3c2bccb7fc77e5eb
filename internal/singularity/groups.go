package singularity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListTaskGroups lists the task groups of a project. maxCount bounds
// the page size; zero means the API default.
func (c *Client) ListTaskGroups(ctx context.Context, projectID string, maxCount int) ([]TaskGroup, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID cannot be empty")
	}

	query := url.Values{}
	query.Set("parent", projectID)
	if maxCount > 0 {
		query.Set("maxCount", strconv.Itoa(maxCount))
	}

	var raw json.RawMessage
	if err := c.do(ctx, "listTaskGroups", "GET", "/task-group", query, nil, &raw); err != nil {
		return nil, err
	}

	groups, ok := decodeListPayload[TaskGroup](raw, "taskGroups")
	if !ok {
		c.logger.Warn("unexpected task-group listing payload shape, treating as empty",
			"project", projectID)
	}
	return groups, nil
}

// CreateTaskGroup creates a new task group inside a project.
func (c *Client) CreateTaskGroup(ctx context.Context, input TaskGroupInput) (*TaskGroup, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	if input.Parent == "" {
		return nil, fmt.Errorf("parent project cannot be empty")
	}

	var group TaskGroup
	if err := c.do(ctx, "createTaskGroup", "POST", "/task-group", nil, input, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DefaultTaskGroup resolves the default task group for a project: the
// first group the listing endpoint returns. The result is cached per
// project for the lifetime of the process; a cache hit performs no
// network access.
//
// Failures are never cached: an HTTP or transport error propagates and
// a later call retries against the network. A project with zero task
// groups yields *NoTaskGroupError, never an empty group ID.
//
// The upstream API does not document a stable ordering for groups, so
// "first returned" may be nondeterministic for projects with several
// groups of equal standing. The listing is pinned to a single result
// per request, so at least each resolution observes the same head.
func (c *Client) DefaultTaskGroup(ctx context.Context, projectID string) (string, error) {
	if projectID == "" {
		return "", fmt.Errorf("projectID cannot be empty")
	}

	c.mu.Lock()
	if id, ok := c.groups[projectID]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	// Only the first group is used, so one result is enough.
	groups, err := c.ListTaskGroups(ctx, projectID, 1)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "", &NoTaskGroupError{ProjectID: projectID}
	}

	id := groups[0].ID

	// Concurrent misses may race here; both resolve the same project,
	// so the last write is as good as the first.
	c.mu.Lock()
	if c.groups == nil {
		c.groups = make(map[string]string)
	}
	c.groups[projectID] = id
	c.mu.Unlock()

	c.logger.Debug("resolved default task group", "project", projectID, "group", id)
	return id, nil
}

// InvalidateGroupCache drops the cached default task group for the
// given project, or the whole cache when projectID is empty. Project
// topology changes are rare relative to process lifetime, so there is
// no TTL; this hook exists for long-lived servers that need to pick up
// a reorganized project.
func (c *Client) InvalidateGroupCache(projectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if projectID == "" {
		c.groups = nil
		return
	}
	delete(c.groups, projectID)
}
