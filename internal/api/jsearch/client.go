package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"
	"jobpulse/internal/ratelimit"

	"go.uber.org/zap"
)

const sourceName = "jsearch"

// Client for the rate-limited third-party search provider. Every outbound
// call first acquires a limiter slot; the limiter cursor is process-wide.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     *zap.Logger
}

func New(baseURL, apiKey, apiHost string, timeout time.Duration, limiter *ratelimit.Limiter, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		apiHost: apiHost,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: limiter,
		logger:  logger,
	}
}

func (c *Client) Name() string {
	return sourceName
}

func (c *Client) Search(ctx context.Context, filters models.SearchFilters, page, perPage int) ([]models.Job, error) {
	query := strings.TrimSpace(filters.Query)
	if query == "" {
		query = "jobs"
	}
	if loc := strings.TrimSpace(filters.Location); loc != "" {
		query += " in " + loc
	}

	return c.search(ctx, query, page, "")
}

// Featured is approximated with a default-query search; the provider has no
// featured concept.
func (c *Client) Featured(ctx context.Context, limit int) ([]models.Job, error) {
	jobs, err := c.search(ctx, "software developer jobs", 0, "")
	if err != nil {
		return nil, err
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (c *Client) Latest(ctx context.Context, limit int) ([]models.Job, error) {
	jobs, err := c.search(ctx, "jobs", 0, "today")
	if err != nil {
		return nil, err
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	return nil, jobdata.ErrUnsupported
}

func (c *Client) Stats(ctx context.Context) (*models.JobStats, error) {
	return nil, jobdata.ErrUnsupported
}

func (c *Client) search(ctx context.Context, query string, page int, datePosted string) ([]models.Job, error) {
	if err := c.limiter.WaitForSlot(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", jobdata.ErrSourceUnavailable, err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page+1)) // provider pages are 1-based
	params.Set("num_pages", "1")
	if datePosted != "" {
		params.Set("date_posted", datePosted)
	}

	fullURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("search provider request failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", jobdata.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("search provider API error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(body))),
		)
		return nil, fmt.Errorf("%w: status %d", jobdata.ErrSourceUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", jobdata.ErrSourceUnavailable, err)
	}

	jobs := make([]models.Job, 0, len(payload.Data))
	for _, posting := range payload.Data {
		jobs = append(jobs, mapPosting(posting))
	}

	c.logger.Debug("search provider results",
		zap.String("query", query),
		zap.Int("count", len(jobs)),
	)

	return jobs, nil
}
