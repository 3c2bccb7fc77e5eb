package singularity

// DateLayout is the timestamp format the SingularityApp API uses:
// ISO-8601 without a timezone offset, interpreted as local time.
const DateLayout = "2006-01-02T15:04:05"

// DayLayout is the date-only format used for journal dates.
const DayLayout = "2006-01-02"

// Task priorities as defined by the API.
const (
	PriorityHigh   = 0
	PriorityNormal = 1
	PriorityLow    = 2
)

// Task represents a SingularityApp task. Identifiers are opaque strings
// prefixed "T-". Project and Group reference a project ("P-") and a
// task group ("Q-") respectively; both must be set for the task to
// render inside the project view.
type Task struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Note        string `json:"note,omitempty"`
	Priority    int    `json:"priority"`
	Project     string `json:"project,omitempty"`
	Group       string `json:"group,omitempty"`
	Parent      string `json:"parent,omitempty"`
	Start       string `json:"start,omitempty"`
	Due         string `json:"due,omitempty"`
	Recurrence  bool   `json:"recurrence,omitempty"`
	JournalDate string `json:"journalDate,omitempty"`
	Archived    bool   `json:"archived,omitempty"`
	Removed     bool   `json:"removed,omitempty"`
}

// TaskInput represents the input for creating or updating a task.
// Zero-valued fields are omitted from the outgoing request.
type TaskInput struct {
	Title string
	Note  string
	// Priority: 0=high, 1=normal, 2=low. Nil means "not provided"
	// (create defaults to normal, update leaves the field untouched).
	Priority *int
	// Project is the project to place the task in ("P-" prefixed).
	Project string
	// Group is the task group within the project ("Q-" prefixed).
	// When Project is set and Group is empty, the project's default
	// group is resolved automatically.
	Group string
	// Parent is a parent task ID for subtasks.
	Parent string
	// Start is the scheduled start timestamp in DateLayout format.
	Start string
	// Due is the due timestamp in DateLayout format.
	Due string
}

// TaskFilter holds the filters for listing tasks.
type TaskFilter struct {
	ProjectID                     string
	StartDateFrom                 string
	StartDateTo                   string
	IncludeArchived               bool
	IncludeRemoved                bool
	IncludeAllRecurrenceInstances bool
	// MaxCount bounds the page size; zero means the API default.
	MaxCount int
}

// TaskGroup represents a section within a project. Identifiers are
// "Q-" prefixed; Parent is the owning project ID.
type TaskGroup struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Parent string `json:"parent,omitempty"`
}

// TaskGroupInput represents the input for creating a task group.
type TaskGroupInput struct {
	Title  string `json:"title"`
	Parent string `json:"parent"`
}

// Project represents a SingularityApp project ("P-" prefixed ID).
type Project struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Note     string `json:"note,omitempty"`
	Color    string `json:"color,omitempty"`
	Emoji    string `json:"emoji,omitempty"`
	Archived bool   `json:"archived,omitempty"`
}

// ProjectInput represents the input for creating or updating a project.
type ProjectInput struct {
	Title string
	Note  string
	// Color is a HEX color (e.g. "#ad1457").
	Color string
	// Emoji is an emoji hex code (e.g. "1f49e").
	Emoji string
}

// Tag represents a SingularityApp tag.
type Tag struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Parent string `json:"parent,omitempty"`
}

// Habit represents a SingularityApp habit.
type Habit struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Habit progress values as defined by the API.
const (
	HabitProgressNone = 0
	// HabitProgressSkipped marks the habit not done while keeping the streak.
	HabitProgressSkipped = 1
	HabitProgressDone    = 2
)

// ChecklistItem represents a checklist entry attached to a task.
type ChecklistItem struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Parent string `json:"parent,omitempty"`
}
