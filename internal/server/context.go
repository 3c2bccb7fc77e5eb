package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/singularity-tools/singularity-mcp/internal/calendar"
	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/notion"
	"github.com/singularity-tools/singularity-mcp/internal/singularity"
)

// ServerContext holds the shared state for the MCP server.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	logger *slog.Logger

	singularityClient *singularity.Client
	notionClient      *notion.Client
	calendarClient    *calendar.Client
	metrics           *Metrics

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. Clients are lazily
// initialized, so missing credentials only surface when the
// corresponding tool is first invoked.
func NewServerContext(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if logger == nil {
		logger = slog.Default()
	}

	return &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// SingularityClient returns the SingularityApp client, creating it on
// first use. Returns an error if the API token is not configured.
func (sc *ServerContext) SingularityClient() (*singularity.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.singularityClient != nil {
		return sc.singularityClient, nil
	}

	if err := sc.cfg.RequireSingularity(); err != nil {
		return nil, err
	}

	client, err := singularity.NewClient(sc.cfg, sc.logger)
	if err != nil {
		return nil, err
	}

	sc.singularityClient = client
	return client, nil
}

// SetSingularityClient sets the SingularityApp client. Used by tests.
func (sc *ServerContext) SetSingularityClient(client *singularity.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.singularityClient = client
}

// NotionClient returns the Notion client, creating it on first use.
func (sc *ServerContext) NotionClient() (*notion.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.notionClient != nil {
		return sc.notionClient, nil
	}

	if err := sc.cfg.RequireNotion(); err != nil {
		return nil, err
	}

	client, err := notion.NewClient(sc.cfg, sc.logger)
	if err != nil {
		return nil, err
	}

	sc.notionClient = client
	return client, nil
}

// SetNotionClient sets the Notion client. Used by tests.
func (sc *ServerContext) SetNotionClient(client *notion.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.notionClient = client
}

// CalendarClient returns the Google Calendar client, creating it on
// first use.
func (sc *ServerContext) CalendarClient() (*calendar.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.calendarClient != nil {
		return sc.calendarClient, nil
	}

	if err := sc.cfg.RequireGoogle(); err != nil {
		return nil, err
	}

	client, err := calendar.NewClient(sc.ctx, sc.cfg)
	if err != nil {
		return nil, err
	}

	sc.calendarClient = client
	return client, nil
}

// SetCalendarClient sets the Google Calendar client. Used by tests.
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClient = client
}

// Metrics returns the Prometheus collectors, or nil when metrics
// collection is disabled.
func (sc *ServerContext) Metrics() *Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics attaches the Prometheus collectors to the context.
func (sc *ServerContext) SetMetrics(m *Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// IsShutdown returns whether the server has been shut down.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
