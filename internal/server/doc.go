// Package server provides the MCP server context, Prometheus metrics,
// and the health endpoints for the operational HTTP listener.
//
// ServerContext manages the upstream API clients with lazy
// initialization and caching. Clients are created on first use so the
// server can start with only the credentials the caller actually
// configured: a missing Notion token only matters once a Notion tool
// is invoked.
//
// MetricsServer serves Prometheus metrics and Kubernetes-style health
// probes on a dedicated port, keeping them off the MCP transport.
package server
