package singularity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListProjects lists projects. maxCount bounds the page size; zero
// means the API default.
func (c *Client) ListProjects(ctx context.Context, includeArchived, includeRemoved bool, maxCount int) ([]Project, error) {
	query := url.Values{}
	query.Set("includeArchived", strconv.FormatBool(includeArchived))
	query.Set("includeRemoved", strconv.FormatBool(includeRemoved))
	if maxCount > 0 {
		query.Set("maxCount", strconv.Itoa(maxCount))
	}

	var raw json.RawMessage
	if err := c.do(ctx, "listProjects", "GET", "/project", query, nil, &raw); err != nil {
		return nil, err
	}

	projects, ok := decodeListPayload[Project](raw, "projects")
	if !ok {
		c.logger.Warn("unexpected project listing payload shape, treating as empty")
	}
	return projects, nil
}

// GetProject retrieves a single project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID cannot be empty")
	}

	var project Project
	if err := c.do(ctx, "getProject", "GET", "/project/"+projectID, nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, input ProjectInput) (*Project, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	body := map[string]interface{}{
		"title": input.Title,
	}
	if input.Note != "" {
		body["note"] = input.Note
	}
	if input.Color != "" {
		body["color"] = input.Color
	}
	if input.Emoji != "" {
		body["emoji"] = input.Emoji
	}

	var project Project
	if err := c.do(ctx, "createProject", "POST", "/project", nil, body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject updates an existing project. Only the provided fields
// are sent.
func (c *Client) UpdateProject(ctx context.Context, projectID string, input ProjectInput) (*Project, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID cannot be empty")
	}

	body := map[string]interface{}{}
	if input.Title != "" {
		body["title"] = input.Title
	}
	if input.Note != "" {
		body["note"] = input.Note
	}
	if input.Color != "" {
		body["color"] = input.Color
	}

	var project Project
	if err := c.do(ctx, "updateProject", "PATCH", "/project/"+projectID, nil, body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project permanently. The cached default task
// group for the project is dropped alongside.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return fmt.Errorf("projectID cannot be empty")
	}
	if err := c.do(ctx, "deleteProject", "DELETE", "/project/"+projectID, nil, nil, nil); err != nil {
		return err
	}
	c.InvalidateGroupCache(projectID)
	return nil
}
