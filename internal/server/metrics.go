package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// DefaultMetricsAddr is the default address for the metrics server.
	DefaultMetricsAddr = ":9090"

	// DefaultMetricsReadTimeout is the default read timeout for the metrics server.
	DefaultMetricsReadTimeout = 10 * time.Second

	// DefaultMetricsWriteTimeout is the default write timeout for the metrics server.
	DefaultMetricsWriteTimeout = 10 * time.Second

	// DefaultMetricsIdleTimeout is the default idle timeout for the metrics server.
	DefaultMetricsIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful server shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// Metrics holds the Prometheus collectors for tool invocations.
type Metrics struct {
	registry *prometheus.Registry

	toolInvocations *prometheus.CounterVec
	toolDuration    *prometheus.HistogramVec
}

// NewMetrics creates the metric collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	toolInvocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mcp_tool_invocations_total",
		Help: "Number of MCP tool invocations by tool name and outcome.",
	}, []string{"tool", "status"})

	toolDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mcp_tool_duration_seconds",
		Help:    "Duration of MCP tool invocations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})

	registry.MustRegister(toolInvocations, toolDuration)

	return &Metrics{
		registry:        registry,
		toolInvocations: toolInvocations,
		toolDuration:    toolDuration,
	}
}

// ObserveTool records one tool invocation with its outcome and
// duration.
func (m *Metrics) ObserveTool(tool, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.toolInvocations.WithLabelValues(tool, status).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// MetricsServerConfig holds configuration for the metrics server.
type MetricsServerConfig struct {
	// Addr is the address to bind the metrics server to (e.g., ":9090").
	Addr string

	// Metrics provides the collectors exposed on /metrics.
	Metrics *Metrics

	// Health provides the health check endpoints.
	Health *HealthChecker
}

// MetricsServer serves Prometheus metrics and health probes on a
// dedicated port, keeping them off the MCP transport.
type MetricsServer struct {
	httpServer *http.Server
	addr       string
	metrics    *Metrics
	health     *HealthChecker
}

// NewMetricsServer creates a new metrics server with the given
// configuration.
func NewMetricsServer(config MetricsServerConfig) *MetricsServer {
	if config.Addr == "" {
		config.Addr = DefaultMetricsAddr
	}
	if config.Metrics == nil {
		config.Metrics = NewMetrics()
	}

	return &MetricsServer{
		addr:    config.Addr,
		metrics: config.Metrics,
		health:  config.Health,
	}
}

// Start starts the metrics server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *MetricsServer) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	if s.health != nil {
		s.health.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: DefaultMetricsReadTimeout,
		WriteTimeout:      DefaultMetricsWriteTimeout,
		IdleTimeout:       DefaultMetricsIdleTimeout,
	}

	slog.Info("starting metrics server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		slog.Info("shutting down metrics server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured address for the metrics server.
func (s *MetricsServer) Addr() string {
	return s.addr
}
