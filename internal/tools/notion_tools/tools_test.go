package notion_tools

import (
	"context"
	"io"
	"log/slog"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/server"
)

func TestRegisterNotionTools(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc, err := server.NewServerContext(context.Background(), &config.Config{}, logger)
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	s := mcpserver.NewMCPServer("test", "0.0.0")
	if err := RegisterNotionTools(s, sc, false); err != nil {
		t.Fatalf("Failed to register notion tools: %v", err)
	}

	// Read-only mode registers nothing; page creation is a write.
	s = mcpserver.NewMCPServer("test", "0.0.0")
	if err := RegisterNotionTools(s, sc, true); err != nil {
		t.Fatalf("Failed to register notion tools in read-only mode: %v", err)
	}
}
