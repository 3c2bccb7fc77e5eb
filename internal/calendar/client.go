package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/singularity-tools/singularity-mcp/internal/config"
)

// Client wraps the Google Calendar service.
type Client struct {
	svc *calendar.Service
}

// NewClient creates a Calendar client authenticated with the access
// token from the configuration.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.GoogleToken == "" {
		return nil, fmt.Errorf("google access token is required")
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GoogleToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// newClientWithService is used by tests to inject a service backed by
// a local HTTP server.
func newClientWithService(svc *calendar.Service) *Client {
	return &Client{svc: svc}
}

// ListEvents lists events on a calendar between timeMin and timeMax
// (RFC 3339). calendarID defaults to "primary" when empty; maxResults
// defaults to 50 when zero.
func (c *Client) ListEvents(ctx context.Context, calendarID, timeMin, timeMax string, maxResults int64) ([]EventSummary, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	if maxResults <= 0 {
		maxResults = 50
	}

	call := c.svc.Events.List(calendarID).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults)
	if timeMin != "" {
		call = call.TimeMin(timeMin)
	}
	if timeMax != "" {
		call = call.TimeMax(timeMax)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	summaries := make([]EventSummary, 0, len(events.Items))
	for _, item := range events.Items {
		summaries = append(summaries, summarizeEvent(item))
	}
	return summaries, nil
}

// TodayEvents lists events on the calendar for the current local day.
func (c *Client) TodayEvents(ctx context.Context, calendarID string) ([]EventSummary, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	return c.ListEvents(ctx, calendarID, start.Format(time.RFC3339), end.Format(time.RFC3339), 0)
}

// CreateEvent creates an event on the given calendar.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, input EventInput) (*EventSummary, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	if input.Summary == "" {
		return nil, fmt.Errorf("summary cannot be empty")
	}
	if input.Start == "" || input.End == "" {
		return nil, fmt.Errorf("start and end are required")
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
	}
	if input.AllDay {
		event.Start = &calendar.EventDateTime{Date: input.Start}
		event.End = &calendar.EventDateTime{Date: input.End}
	} else {
		event.Start = &calendar.EventDateTime{DateTime: input.Start}
		event.End = &calendar.EventDateTime{DateTime: input.End}
	}

	created, err := c.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	summary := summarizeEvent(created)
	return &summary, nil
}

// ListCalendars lists the calendars on the authenticated user's
// calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	list, err := c.svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]CalendarInfo, 0, len(list.Items))
	for _, item := range list.Items {
		calendars = append(calendars, CalendarInfo{
			ID:       item.Id,
			Summary:  item.Summary,
			Primary:  item.Primary,
			TimeZone: item.TimeZone,
		})
	}
	return calendars, nil
}

func summarizeEvent(event *calendar.Event) EventSummary {
	summary := EventSummary{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
		HTMLLink:    event.HtmlLink,
	}
	if event.Start != nil {
		if event.Start.Date != "" {
			summary.Start = event.Start.Date
			summary.AllDay = true
		} else {
			summary.Start = event.Start.DateTime
		}
	}
	if event.End != nil {
		if event.End.Date != "" {
			summary.End = event.End.Date
		} else {
			summary.End = event.End.DateTime
		}
	}
	return summary
}
