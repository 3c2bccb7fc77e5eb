// Package singularity provides a client for the SingularityApp API v2.
//
// This package wraps the HTTP API and provides functionality for:
//   - Managing tasks (list, get, create, update, complete, delete)
//   - Managing projects, task groups, tags, habits and checklist items
//   - Resolving a project's default task group, with a process-local cache
//   - Building "tasks due today" date-range filters
//
// # Task groups
//
// A task that carries a project ID but no task-group ID will not render
// inside that project's view in the SingularityApp client. The client
// therefore resolves the project's default (first-listed) task group
// before creating or moving a task into a project, and memoizes the
// result per project for the lifetime of the process. See
// Client.DefaultTaskGroup.
//
// # Authentication
//
// All requests carry a bearer token read from the configuration
// (SINGULARITY_API_TOKEN). There is no OAuth flow; tokens are issued by
// the upstream service.
//
// # Example Usage
//
//	client, err := singularity.NewClient(config.FromEnv(), logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tasks, err := client.TodayTasks(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
package singularity
