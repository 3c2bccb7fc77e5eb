package server

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/singularity"
)

func testConfig() *config.Config {
	return &config.Config{
		SingularityToken: "sg-token",
		SingularityURL:   "http://localhost:0",
		HTTPTimeout:      time.Second,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(), testLogger())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	if sc.Context() == nil {
		t.Error("Expected non-nil context")
	}
	if sc.IsShutdown() {
		t.Error("Expected server context to not be shutdown initially")
	}
}

func TestServerContextShutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(), testLogger())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Unexpected error on shutdown: %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("Expected server context to be shutdown")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("Expected context to be cancelled after shutdown")
	}

	// Shutdown is idempotent.
	if err := sc.Shutdown(); err != nil {
		t.Errorf("Unexpected error on repeated shutdown: %v", err)
	}
}

func TestSingularityClientLazyInit(t *testing.T) {
	sc, err := NewServerContext(context.Background(), testConfig(), testLogger())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	first, err := sc.SingularityClient()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	second, err := sc.SingularityClient()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first != second {
		t.Error("Expected the client to be cached across calls")
	}
}

func TestSingularityClientMissingToken(t *testing.T) {
	sc, err := NewServerContext(context.Background(), &config.Config{}, testLogger())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	if _, err := sc.SingularityClient(); err == nil {
		t.Error("Expected error when no API token is configured")
	}
}

func TestNotionClientMissingToken(t *testing.T) {
	sc, err := NewServerContext(context.Background(), &config.Config{}, testLogger())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	if _, err := sc.NotionClient(); err == nil {
		t.Error("Expected error when no Notion token is configured")
	}
}

func TestCalendarClientMissingToken(t *testing.T) {
	sc, err := NewServerContext(context.Background(), &config.Config{}, testLogger())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	if _, err := sc.CalendarClient(); err == nil {
		t.Error("Expected error when no Google access token is configured")
	}
}

func TestSetSingularityClient(t *testing.T) {
	sc, err := NewServerContext(context.Background(), &config.Config{}, testLogger())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}

	injected, err := singularity.NewClient(testConfig(), testLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	sc.SetSingularityClient(injected)

	got, err := sc.SingularityClient()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != injected {
		t.Error("Expected injected client to be returned")
	}
}
