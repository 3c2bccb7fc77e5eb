package singularity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListHabits lists habits. maxCount bounds the page size; zero means
// the API default.
func (c *Client) ListHabits(ctx context.Context, maxCount int) ([]Habit, error) {
	query := url.Values{}
	if maxCount > 0 {
		query.Set("maxCount", strconv.Itoa(maxCount))
	}

	var raw json.RawMessage
	if err := c.do(ctx, "listHabits", "GET", "/habit", query, nil, &raw); err != nil {
		return nil, err
	}

	habits, ok := decodeListPayload[Habit](raw, "habits")
	if !ok {
		c.logger.Warn("unexpected habit listing payload shape, treating as empty")
	}
	return habits, nil
}

// CreateHabit creates a new habit. Color is a color name (e.g. "red").
func (c *Client) CreateHabit(ctx context.Context, title, description, color string) (*Habit, error) {
	if title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	body := map[string]interface{}{
		"title": title,
	}
	if description != "" {
		body["description"] = description
	}
	if color != "" {
		body["color"] = color
	}

	var habit Habit
	if err := c.do(ctx, "createHabit", "POST", "/habit", nil, body, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

// MarkHabit records habit progress for a date (DateLayout format).
// Progress is HabitProgressDone or HabitProgressSkipped; skipped keeps
// the streak without counting the day as done.
func (c *Client) MarkHabit(ctx context.Context, habitID, date string, progress int) error {
	if habitID == "" {
		return fmt.Errorf("habitID cannot be empty")
	}
	if date == "" {
		return fmt.Errorf("date cannot be empty")
	}

	body := map[string]interface{}{
		"habit":    habitID,
		"date":     date,
		"progress": progress,
	}

	return c.do(ctx, "markHabit", "POST", "/habit-progress", nil, body, nil)
}

// DeleteHabit deletes a habit.
func (c *Client) DeleteHabit(ctx context.Context, habitID string) error {
	if habitID == "" {
		return fmt.Errorf("habitID cannot be empty")
	}
	return c.do(ctx, "deleteHabit", "DELETE", "/habit/"+habitID, nil, nil, nil)
}
