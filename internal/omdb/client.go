package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Result is the normalized record for a movie found on OMDb.
type Result struct {
	Title     string
	Year      int
	Rating    float64
	Director  string
	PosterURL string
	Plot      string
	Actors    string
	Genre     string
}

// payload models the raw OMDb "by title" response.
type payload struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDBRating string `json:"imdbRating"`
	Director   string `json:"Director"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	Actors     string `json:"Actors"`
	Genre      string `json:"Genre"`
}

// Fetcher defines the lookup operation the session controller depends on.
type Fetcher interface {
	Lookup(ctx context.Context, title string) (*Result, error)
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger attaches a logger for transport diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup fetches movie details by title. A nil result with a nil error means
// the movie was not found. Transport failures and malformed payloads also
// report not-found: the remote "no such movie" answer and an unreachable API
// are indistinguishable to the caller, matching the app's historical behavior.
// The underlying cause is logged at debug level.
func (c *Client) Lookup(ctx context.Context, title string) (*Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)
	params.Set("r", "json")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		c.logger.Debug("omdb request failed", "title", title, "latency", latency, "error", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("omdb returned non-OK status", "title", title, "status", resp.StatusCode, "latency", latency)
		return nil, nil
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Debug("omdb response malformed", "title", title, "error", err)
		return nil, nil
	}

	if !strings.EqualFold(body.Response, "True") {
		c.logger.Debug("omdb reported no match", "title", title, "remote_error", body.Error)
		return nil, nil
	}

	return normalize(title, body), nil
}

func normalize(query string, body payload) *Result {
	result := &Result{
		Title:    body.Title,
		Director: body.Director,
		Plot:     body.Plot,
		Actors:   body.Actors,
		Genre:    body.Genre,
	}
	if result.Title == "" {
		result.Title = query
	}
	if isDigits(body.Year) {
		// Ranged years like "1988–1997" stay at zero.
		if year, err := strconv.Atoi(body.Year); err == nil {
			result.Year = year
		}
	}
	if rating, err := strconv.ParseFloat(strings.TrimSpace(body.IMDBRating), 64); err == nil {
		result.Rating = rating
	}
	if body.Poster != "" && body.Poster != "N/A" {
		result.PosterURL = body.Poster
	}
	return result
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
