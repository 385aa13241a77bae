// Package api talks to the upstream sports/stream HTTP API.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/abouramd/live-stream/constant"
	"github.com/abouramd/live-stream/model"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options controls how the client reaches the upstream.
type Options struct {
	// BaseURL defaults to constant.DefaultBaseURL.
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client performs anonymous GET requests against the upstream and decodes JSON.
// It does not retry and does not cache.
type Client struct {
	baseURL   string
	userAgent string
	http      httpDoer
}

// New creates a client. Zero options fall back to the default base URL, http.DefaultClient and the app user agent.
func New(options Options) *Client {
	var doer httpDoer = http.DefaultClient
	if options.HTTPClient != nil {
		doer = options.HTTPClient
	}

	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	return &Client{
		baseURL:   normalizeBaseURL(options.BaseURL),
		userAgent: userAgent,
		http:      doer,
	}
}

// BaseURL returns the normalized upstream root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Sports reads the sport list.
func (c *Client) Sports(ctx context.Context) ([]model.Sport, error) {
	var sports []model.Sport
	if err := c.get(ctx, sportsPath(), &sports); err != nil {
		return nil, err
	}
	return sports, nil
}

// Matches fetches one listing. category is a slash separated path such as
// "live/popular" or "sport/football".
func (c *Client) Matches(ctx context.Context, category string) ([]model.Match, error) {
	var matches []model.Match
	if err := c.get(ctx, matchesPath(category), &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Streams fetches the variants of one feed. The returned streams carry no Origin.
func (c *Client) Streams(ctx context.Context, source, id string) ([]model.Stream, error) {
	var streams []model.Stream
	if err := c.get(ctx, streamPath(source, id), &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

// BadgeURL composes the address of a team badge image. Nothing is fetched.
func (c *Client) BadgeURL(badgeID string) string {
	return c.baseURL + badgePath(badgeID)
}

// PosterURL composes the absolute address of a match poster path.
// Absolute posters are returned unchanged and empty paths yield "".
func (c *Client) PosterURL(poster string) string {
	switch {
	case poster == "":
		return ""
	case strings.HasPrefix(poster, "http://"), strings.HasPrefix(poster, "https://"):
		return poster
	case strings.HasPrefix(poster, "/"):
		return c.baseURL + poster
	default:
		return c.baseURL + "/" + poster
	}
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &TransportError{URL: url, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{URL: url, Err: err}
	}

	return nil
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = constant.DefaultBaseURL
	}
	return strings.TrimRight(raw, "/")
}
