package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"

	"go.uber.org/zap"
)

// The write surface: saved jobs and applications. These calls are
// account-scoped and require credentials; the fallback chain does not apply.

func (c *Client) SavedJobs(ctx context.Context) ([]models.SavedJob, error) {
	data, err := c.get(ctx, "/jobs/saved", nil)
	if err != nil {
		return nil, err
	}

	var saved []models.SavedJob
	if err := c.parseData(data, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *Client) SaveJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return fmt.Errorf("%w: empty job id", jobdata.ErrValidation)
	}

	_, err := c.doRequest(ctx, http.MethodPost, "/jobs/"+url.PathEscape(jobID)+"/save", nil, nil)
	if err != nil {
		return fmt.Errorf("save job: %w", err)
	}

	c.logger.Info("job saved on backend", zap.String("job_id", jobID))
	return nil
}

func (c *Client) UnsaveJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return fmt.Errorf("%w: empty job id", jobdata.ErrValidation)
	}

	_, err := c.doRequest(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(jobID)+"/save", nil, nil)
	if err != nil {
		return fmt.Errorf("unsave job: %w", err)
	}

	c.logger.Info("job unsaved on backend", zap.String("job_id", jobID))
	return nil
}

func (c *Client) Applications(ctx context.Context) ([]models.Application, error) {
	data, err := c.get(ctx, "/applications", nil)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := c.parseData(data, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) Apply(ctx context.Context, jobID string, req models.ApplicationRequest) error {
	if jobID == "" {
		return fmt.Errorf("%w: empty job id", jobdata.ErrValidation)
	}

	_, err := c.doRequest(ctx, http.MethodPost, "/jobs/"+url.PathEscape(jobID)+"/apply", nil, req)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	c.logger.Info("application submitted", zap.String("job_id", jobID))
	return nil
}
