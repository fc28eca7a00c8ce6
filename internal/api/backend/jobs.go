package backend

import (
	"context"
	"net/url"
	"strconv"

	"jobpulse/internal/models"

	"go.uber.org/zap"
)

// The read side of the client implements jobdata.Source.

func (c *Client) Name() string {
	return "backend"
}

// Search hits /jobs/search with the stripped filters, or /jobs when no
// constraint is set.
func (c *Client) Search(ctx context.Context, filters models.SearchFilters, page, perPage int) ([]models.Job, error) {
	params := filters.Values()
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(perPage))

	path := "/jobs/search"
	if filters.IsZero() {
		path = "/jobs"
	}

	data, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := c.parseData(data, &jobs); err != nil {
		return nil, err
	}

	c.logger.Debug("backend search done",
		zap.Int("count", len(jobs)),
		zap.String("query", filters.Query),
	)

	return jobs, nil
}

func (c *Client) Featured(ctx context.Context, limit int) ([]models.Job, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	data, err := c.get(ctx, "/jobs/featured", params)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := c.parseData(data, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) Latest(ctx context.Context, limit int) ([]models.Job, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	data, err := c.get(ctx, "/jobs/latest", params)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := c.parseData(data, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	data, err := c.get(ctx, "/jobs/categories", nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := c.parseData(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Stats(ctx context.Context) (*models.JobStats, error) {
	data, err := c.get(ctx, "/jobs/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats models.JobStats
	if err := c.parseData(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
