// Package proxy implements the HTTP client for the local CodeTime
// telemetry proxy.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/xylex-group/code-time/pkg/model"
)

const userAgent = "CodeTime Client"

// requestTimeout bounds every proxy call; a command invocation must not
// hang indefinitely on an unreachable proxy.
const requestTimeout = 10 * time.Second

type userAgentTransport struct {
	rt http.RoundTripper
}

func (u *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r2 := req.Clone(req.Context())
	r2.Header.Set("User-Agent", userAgent)
	return u.rt.RoundTrip(r2)
}

// Client talks to the CodeTime proxy. It holds no state beyond the
// resolved configuration; callers construct one per invocation.
type Client struct {
	cfg        model.Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a Client for the given configuration.
func NewClient(cfg model.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: &userAgentTransport{rt: http.DefaultTransport},
			Timeout:   requestTimeout,
		},
		logger: logger,
	}
}

type minutesResponse struct {
	Minutes *string `json:"minutes"`
}

// Minutes queries the proxy for the accumulated tracked minutes of the
// current user. An absent minutes field counts as "0".
func (c *Client) Minutes(ctx context.Context) (string, error) {
	url := c.cfg.BaseURL + "/v3/users/self/minutes"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build minutes request: %w", err)
	}
	c.authorize(req)

	c.logger.Debug("querying tracked minutes", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("codetime proxy unreachable (check CODETIME_PROXY_URL and network): %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read proxy response: %w", err)
	}

	var parsed minutesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("invalid response from proxy (check proxy version): %w", err)
	}
	if parsed.Minutes == nil {
		return "0", nil
	}
	return *parsed.Minutes, nil
}

// ReportEvent posts a single coding-activity event to the proxy event log.
// The response body is not inspected beyond the status code.
func (c *Client) ReportEvent(ctx context.Context, ev model.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	url := c.cfg.BaseURL + "/v3/users/event-log"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build event request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	c.logger.Debug("reporting event",
		"event_type", ev.EventType,
		"relative_file", ev.RelativeFile,
		"url", url,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("codetime proxy unreachable (check CODETIME_PROXY_URL and network): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("proxy rejected event: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.cfg.HasAPIKey() {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}
