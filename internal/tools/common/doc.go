// Package common provides helpers shared by the MCP tool packages:
// argument extraction from tool requests and a handler wrapper that
// records Prometheus metrics per invocation.
package common
