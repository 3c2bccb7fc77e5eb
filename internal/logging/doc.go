// Package logging provides structured logging helpers built on log/slog.
//
// It defines canonical attribute keys so that log entries are
// consistently named across the codebase, along with small helpers for
// attaching common attributes (operation, service, tool, status) and
// for logging errors and secrets safely.
//
// The MCP stdio transport uses stdout for JSON-RPC framing, so all
// loggers created by this package write to stderr.
package logging
