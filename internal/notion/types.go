package notion

import "fmt"

// Page is the subset of a Notion page object the server cares about.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// APIError represents a failed Notion API call. The raw response body
// is preserved so callers can surface Notion's own error message.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("notion: %s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("notion: %s failed with status %d", e.Op, e.StatusCode)
}
