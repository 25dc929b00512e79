package swapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/holonet/internal/domain"
)

const (
	DefaultBaseURL   = "https://swapi.dev/api"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Holonet/1.0"

	// maxBodySize caps a single collection page
	maxBodySize = 8 << 20
)

// Ensure Client implements CollectionRepository at compile time.
var _ domain.CollectionRepository = (*Client)(nil)

// Client fetches SWAPI resource collections
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides the transport timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new SWAPI client rooted at baseURL (e.g., https://swapi.dev/api)
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:   base,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the absolute URL of a collection
func (c *Client) Endpoint(kind domain.ResourceKind) *url.URL {
	return c.baseURL.JoinPath(kind.Path())
}

// FetchCollection fetches one page of a collection and decodes it
func (c *Client) FetchCollection(ctx context.Context, kind domain.ResourceKind, query url.Values) ([]domain.Displayable, error) {
	if kind.Path() == "" {
		return nil, fmt.Errorf("%w: unknown resource kind %d", domain.ErrRequestFailed, int(kind))
	}

	body, err := c.Fetch(ctx, c.Endpoint(kind), query)
	if err != nil {
		return nil, err
	}

	items, err := Decode(body, kind)
	if err != nil {
		c.logger.Error("swapi decode failed", "kind", kind.String(), "error", err, "bodyLen", len(body))
		return nil, err
	}

	c.logger.Debug("swapi collection fetched", "kind", kind.String(), "count", len(items))
	return items, nil
}

// Fetch issues exactly one GET to endpoint with the given query parameters
// and returns the raw body. Transport failures and non-2xx responses return
// an error wrapping domain.ErrRequestFailed.
func (c *Client) Fetch(ctx context.Context, endpoint *url.URL, query url.Values) ([]byte, error) {
	reqURL := *endpoint
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("swapi request", "url", reqURL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("swapi request failed", "url", reqURL.String(), "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("swapi request error", "url", reqURL.String(), "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: GET %s returned status %d", domain.ErrRequestFailed, endpoint.Path, resp.StatusCode)
	}

	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
