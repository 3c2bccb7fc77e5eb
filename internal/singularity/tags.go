package singularity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListTags lists tags. maxCount bounds the page size; zero means the
// API default.
func (c *Client) ListTags(ctx context.Context, includeRemoved bool, maxCount int) ([]Tag, error) {
	query := url.Values{}
	query.Set("includeRemoved", strconv.FormatBool(includeRemoved))
	if maxCount > 0 {
		query.Set("maxCount", strconv.Itoa(maxCount))
	}

	var raw json.RawMessage
	if err := c.do(ctx, "listTags", "GET", "/tag", query, nil, &raw); err != nil {
		return nil, err
	}

	tags, ok := decodeListPayload[Tag](raw, "tags")
	if !ok {
		c.logger.Warn("unexpected tag listing payload shape, treating as empty")
	}
	return tags, nil
}

// CreateTag creates a new tag, optionally nested under a parent tag.
func (c *Client) CreateTag(ctx context.Context, title, parent string) (*Tag, error) {
	if title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	body := map[string]interface{}{
		"title": title,
	}
	if parent != "" {
		body["parent"] = parent
	}

	var tag Tag
	if err := c.do(ctx, "createTag", "POST", "/tag", nil, body, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag deletes a tag.
func (c *Client) DeleteTag(ctx context.Context, tagID string) error {
	if tagID == "" {
		return fmt.Errorf("tagID cannot be empty")
	}
	return c.do(ctx, "deleteTag", "DELETE", "/tag/"+tagID, nil, nil, nil)
}
