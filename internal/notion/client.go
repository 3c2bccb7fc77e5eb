package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/singularity-tools/singularity-mcp/internal/config"
	"github.com/singularity-tools/singularity-mcp/internal/logging"
)

const maxErrorBody = 4096

// Client talks to the Notion API on behalf of a single integration.
type Client struct {
	baseURL    string
	token      string
	version    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Notion client from the given configuration.
// The integration token must be present.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.NotionToken == "" {
		return nil, fmt.Errorf("notion token is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	baseURL := cfg.NotionURL
	if baseURL == "" {
		baseURL = config.DefaultNotionURL
	}
	version := cfg.NotionVersion
	if version == "" {
		version = config.DefaultNotionVersion
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.NotionToken,
		version:    version,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logging.WithService(logger, "notion"),
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreatePage creates a new page inside a Notion database with the
// given title. It returns the created page, whose ID callers hand back
// to the user for follow-up edits.
func (c *Client) CreatePage(ctx context.Context, databaseID, title string) (*Page, error) {
	if databaseID == "" {
		return nil, fmt.Errorf("databaseID cannot be empty")
	}
	if title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}

	body := map[string]interface{}{
		"parent": map[string]interface{}{
			"database_id": databaseID,
		},
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"title": []interface{}{
					map[string]interface{}{
						"text": map[string]interface{}{
							"content": title,
						},
					},
				},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build page request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read page response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("page creation failed",
			logging.Operation("createPage"),
			slog.Int("statusCode", resp.StatusCode))
		return nil, &APIError{Op: "createPage", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var page Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("failed to decode page response %q: %w", string(raw), err)
	}
	if page.ID == "" {
		// A 2xx without an id means the response shape changed; keep
		// the raw body so the caller can see what came back.
		return nil, fmt.Errorf("page response missing id: %s", string(raw))
	}

	c.logger.Debug("created page",
		logging.Operation("createPage"),
		slog.String("pageId", page.ID))
	return &page, nil
}
