package group_tools

import (
	"context"
	"io"
	"log/slog"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/server"
)

func TestRegisterGroupTools(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc, err := server.NewServerContext(context.Background(), &config.Config{}, logger)
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	s := mcpserver.NewMCPServer("test", "0.0.0")
	if err := RegisterGroupTools(s, sc, false); err != nil {
		t.Fatalf("Failed to register group tools: %v", err)
	}

	s = mcpserver.NewMCPServer("test", "0.0.0")
	if err := RegisterGroupTools(s, sc, true); err != nil {
		t.Fatalf("Failed to register group tools in read-only mode: %v", err)
	}
}
