package singularity

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the SingularityApp API.
type APIError struct {
	// Op is the operation that failed (e.g., "listTasks", "createTask")
	Op string

	// StatusCode is the HTTP status code returned by the API
	StatusCode int

	// Body is the raw response body, kept for diagnostics
	Body string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("singularity %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("singularity %s: unexpected status %d", e.Op, e.StatusCode)
}

// NoTaskGroupError reports that a project has zero task groups, so no
// default group can be resolved. This is a distinct, user-actionable
// condition: the project is misconfigured upstream, and a task created
// in it would not render in the project view.
type NoTaskGroupError struct {
	// ProjectID is the project that has no task groups
	ProjectID string
}

// Error implements the error interface
func (e *NoTaskGroupError) Error() string {
	return fmt.Sprintf("project %s has no task groups; create one with create_task_group before assigning tasks to it", e.ProjectID)
}

// IsNoTaskGroup reports whether err indicates a project without task groups.
func IsNoTaskGroup(err error) bool {
	var ng *NoTaskGroupError
	return errors.As(err, &ng)
}
