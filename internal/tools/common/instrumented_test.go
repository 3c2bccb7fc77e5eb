package common

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/server"
)

func newTestContext(t *testing.T) *server.ServerContext {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc, err := server.NewServerContext(context.Background(), &config.Config{HTTPTimeout: time.Second}, logger)
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	return sc
}

func TestInstrumentedToolHandlerRecordsSuccess(t *testing.T) {
	sc := newTestContext(t)
	metrics := server.NewMetrics()
	sc.SetMetrics(metrics)

	handler := InstrumentedToolHandler("list_tasks", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	})

	if _, err := handler(context.Background(), mcp.CallToolRequest{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	count, err := testutil.GatherAndCount(metrics.Registry(), "mcp_tool_invocations_total")
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 series recorded, got %d", count)
	}
}

func TestInstrumentedToolHandlerRecordsToolError(t *testing.T) {
	sc := newTestContext(t)
	metrics := server.NewMetrics()
	sc.SetMetrics(metrics)

	handler := InstrumentedToolHandler("create_task", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("upstream failed"), nil
	})

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result")
	}

	// An error result counts under the error status even though the
	// handler returned a nil Go error.
	count, err := testutil.GatherAndCount(metrics.Registry(), "mcp_tool_invocations_total")
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 series recorded, got %d", count)
	}
}

func TestInstrumentedToolHandlerWithoutMetrics(t *testing.T) {
	sc := newTestContext(t)

	called := false
	handler := InstrumentedToolHandler("list_tasks", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("ok"), nil
	})

	if _, err := handler(context.Background(), mcp.CallToolRequest{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !called {
		t.Error("Expected handler to be invoked without metrics configured")
	}
}
