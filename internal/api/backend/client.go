package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"jobpulse/internal/jobdata"

	"go.uber.org/zap"
)

// TokenSource supplies the current bearer credential. An empty token means
// the user is unauthenticated; requests then go out without authorization.
type TokenSource interface {
	Token() string
}

// Client for requests to the first-party job board API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
	userAgent  string
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		tokens:    tokens,
		logger:    logger,
		userAgent: "JobPulse-Client/1.0",
	}
}

// envelope is the API's uniform response wrapper. Anything other than
// status "success" is a failure, whatever the HTTP code says.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doRequest issues one request and classifies the outcome into an error kind.
// The client never falls back itself; ordering failures is the orchestrator's
// job.
func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, body interface{}) (json.RawMessage, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("url", fullURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", jobdata.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", jobdata.ErrSourceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("backend API error",
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
		)

		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("%w: status %d", jobdata.ErrAuthRequired, resp.StatusCode)
		case http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s", jobdata.ErrNotFound, path)
		case http.StatusConflict:
			return nil, jobdata.ErrAlreadyExists
		case http.StatusBadRequest:
			return nil, fmt.Errorf("%w: status 400", jobdata.ErrValidation)
		default:
			return nil, fmt.Errorf("%w: status %d", jobdata.ErrSourceUnavailable, resp.StatusCode)
		}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", jobdata.ErrSourceUnavailable, err)
	}

	if env.Status != "success" {
		c.logger.Warn("backend returned error envelope",
			zap.String("url", fullURL),
			zap.String("message", env.Message),
		)
		return nil, fmt.Errorf("%w: %s", jobdata.ErrSourceUnavailable, env.Message)
	}

	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, path, params, nil)
}

func (c *Client) parseData(data json.RawMessage, dest interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: unmarshal data: %v", jobdata.ErrSourceUnavailable, err)
	}
	return nil
}
