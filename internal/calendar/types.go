package calendar

// EventSummary is the condensed view of a calendar event returned to
// tool callers.
type EventSummary struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	AllDay      bool   `json:"allDay,omitempty"`
	Status      string `json:"status,omitempty"`
	HTMLLink    string `json:"htmlLink,omitempty"`
}

// EventInput holds the fields for creating a new event. Start and End
// are RFC 3339 timestamps for timed events, or YYYY-MM-DD dates when
// AllDay is set.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       string
	End         string
	AllDay      bool
}

// CalendarInfo describes a calendar on the authenticated user's list.
type CalendarInfo struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Primary  bool   `json:"primary,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}
