package mycf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.mycareersfuture.gov.sg"
	defaultTimeout  = 12 * time.Second
	defaultPageSize = 20
	maxPageSize     = 50
	maxPage         = 50

	userAgent = "mycf-widgets/1.0"
)

type rateLimiter struct {
	l *rate.Limiter
}

func (r *rateLimiter) wait(ctx context.Context) error {
	if r == nil || r.l == nil {
		return nil
	}
	return r.l.Wait(ctx)
}

// NewClient instantiates a MyCareersFuture API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("mycf: parse base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var limiter *rateLimiter
	if cfg.RatePerSec > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = &rateLimiter{l: rate.NewLimiter(rate.Limit(cfg.RatePerSec), burst)}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		pageSize:   pageSize,
		limiter:    limiter,
	}, nil
}

// Search issues a single search request against the upstream API. Any
// non-success response, transport fault, or undecodable body is an error;
// zero results with a 2xx status is not.
func (c *Client) Search(ctx context.Context, term string, params SearchParams) (SearchResult, error) {
	if c == nil {
		return SearchResult{}, fmt.Errorf("mycf: client is nil")
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return SearchResult{}, fmt.Errorf("mycf: search term is required")
	}

	if err := c.limiter.wait(ctx); err != nil {
		return SearchResult{}, fmt.Errorf("mycf: rate limiter: %w", err)
	}

	u, err := c.buildSearchURL(params)
	if err != nil {
		return SearchResult{}, err
	}

	body, err := json.Marshal(map[string]string{"search": term})
	if err != nil {
		return SearchResult{}, fmt.Errorf("mycf: encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return SearchResult{}, fmt.Errorf("mycf: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("mycf: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return SearchResult{}, fmt.Errorf("mycf: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SearchResult{}, fmt.Errorf("mycf: decode response: %w", err)
	}

	total := payload.Total
	if total < len(payload.Results) {
		total = len(payload.Results)
	}

	return SearchResult{
		Total:   total,
		Results: payload.Results,
	}, nil
}

// PageSize reports the effective per-request result cap.
func (c *Client) PageSize() int {
	return c.pageSize
}

func (c *Client) buildSearchURL(params SearchParams) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("mycf: parse base url: %w", err)
	}

	u.Path = path.Join(u.Path, "v2", "search")

	limit := params.Limit
	if limit <= 0 {
		limit = c.pageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	page := params.Page
	if page < 0 {
		page = 0
	}
	if page > maxPage {
		page = maxPage
	}

	values := url.Values{}
	values.Set("limit", fmt.Sprint(limit))
	values.Set("page", fmt.Sprint(page))

	u.RawQuery = values.Encode()
	return u.String(), nil
}
