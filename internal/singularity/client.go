package singularity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/logging"
)

// Client provides access to the SingularityApp API v2.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger

	// groups caches the default task-group ID per project for the
	// lifetime of the process. Guarded by mu; see DefaultTaskGroup.
	mu     sync.Mutex
	groups map[string]string
}

// NewClient creates a new SingularityApp client from the given
// configuration. It fails immediately when no API token is configured.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.RequireSingularity(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.SingularityURL, "/"),
		token:      cfg.SingularityToken,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logging.WithService(logger, "singularity"),
	}, nil
}

// BaseURL returns the base URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a single authenticated request and decodes the JSON
// response into out (unless out is nil or the response is 204).
// Non-2xx responses are returned as *APIError with the raw body kept
// for diagnostics; transport failures propagate wrapped.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("request", logging.Operation(op), "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed for %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}

	return nil
}
