// Package curseforge is a client for the CurseForge v1 API and the secondary
// catalog adapter built on it. Every request needs an API key.
package curseforge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/steviee/go-modlist/internal/ratelimit"
)

const (
	// DefaultBaseURL is the default CurseForge API base URL.
	DefaultBaseURL = "https://api.curseforge.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "go-modlist/dev (https://github.com/steviee/go-modlist)"

	requestsPerMinute = 120
)

// Client is a CurseForge API client bound to one API key.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	userAgent   string
	rateLimiter *ratelimit.Limiter
}

// Config holds client configuration.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new CurseForge API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = UserAgent
	}

	slog.Debug("creating CurseForge API client",
		"base_url", baseURL,
		"timeout", timeout,
		"has_api_key", config.APIKey != "")

	return &Client{
		baseURL:     baseURL,
		apiKey:      config.APIKey,
		httpClient:  &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		rateLimiter: ratelimit.New(requestsPerMinute, time.Minute),
	}
}

// WithAPIKey returns a copy of the client that sends key instead.
// The copy shares the HTTP client and rate limiter with c.
func (c *Client) WithAPIKey(key string) *Client {
	clone := *c
	clone.apiKey = key
	return &clone
}

// HasAPIKey reports whether the client carries a credential.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// getJSON performs a rate-limited GET and decodes a successful response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	slog.Debug("curseforge API request",
		"method", http.MethodGet,
		"url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if err := checkResponse(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkResponse maps a non-success response to a sentinel or *APIError.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimitExceeded
	case http.StatusNotFound:
		return ErrModNotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return NewAPIError(resp.StatusCode, "invalid API key")
	}

	var apiErr APIError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.ErrorMsg == "" {
		return NewAPIError(resp.StatusCode, resp.Status)
	}
	apiErr.StatusCode = resp.StatusCode
	return &apiErr
}
