package state

import (
	"context"
	"errors"
	"time"

	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"

	"go.uber.org/zap"
)

// SaveJob handles the save intent. Unauthenticated users save into the local
// mirror; authenticated users save on the backend and re-fetch it as source
// of truth, degrading to the local path when the backend is unreachable. The
// mirror is updated as the last step on every path.
func (c *Container) SaveJob(ctx context.Context, jobID string) IntentResult {
	if jobID == "" {
		return IntentResult{Message: "Invalid job."}
	}

	job, ok := c.findJob(jobID)
	if !ok {
		return IntentResult{Message: "Job not found."}
	}

	if !c.auth.IsAuthenticated() {
		return c.saveLocally(ctx, job, "Saved locally — sign in to sync across devices.")
	}

	if err := c.account.SaveJob(ctx, jobID); err != nil {
		if errors.Is(err, jobdata.ErrAlreadyExists) {
			return IntentResult{Success: true, Message: "Job already saved."}
		}

		c.logger.Warn("backend save failed, degrading to local mirror",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return c.saveLocally(ctx, job, "Couldn't reach the server — saved locally for now.")
	}

	// backend is source of truth after a durable save
	saved, err := c.account.SavedJobs(ctx)
	if err != nil {
		c.logger.Warn("saved jobs re-fetch failed after save", zap.Error(err))
		c.mu.Lock()
		if !models.ContainsJob(c.savedJobs, jobID) {
			c.savedJobs = append(c.savedJobs, models.SavedJob{Job: job, SavedAt: time.Now()})
		}
		saved = append([]models.SavedJob(nil), c.savedJobs...)
		c.mu.Unlock()
	} else {
		c.mu.Lock()
		c.savedJobs = saved
		c.mu.Unlock()
	}

	// mirror for offline reads
	if err := c.mirror.WriteSavedJobs(ctx, saved); err != nil {
		c.logger.Warn("mirror write failed after save", zap.Error(err))
	}

	return IntentResult{Success: true, Message: "Job saved."}
}

func (c *Container) saveLocally(ctx context.Context, job models.Job, message string) IntentResult {
	c.mu.Lock()
	if models.ContainsJob(c.savedJobs, job.ID) {
		c.mu.Unlock()
		return IntentResult{Success: true, Message: "Job already saved.", LocalOnly: true}
	}
	c.savedJobs = append(c.savedJobs, models.SavedJob{Job: job, SavedAt: time.Now()})
	saved := append([]models.SavedJob(nil), c.savedJobs...)
	c.mu.Unlock()

	if err := c.mirror.WriteSavedJobs(ctx, saved); err != nil {
		c.logger.Warn("mirror write failed on local save",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
	}

	return IntentResult{Success: true, Message: message, LocalOnly: true}
}

// UnsaveJob removes a saved job, with the same authenticated/unauthenticated
// branching as SaveJob. The mirror write is the last step regardless of path.
func (c *Container) UnsaveJob(ctx context.Context, jobID string) IntentResult {
	if jobID == "" {
		return IntentResult{Message: "Invalid job."}
	}

	c.mu.Lock()
	if !models.ContainsJob(c.savedJobs, jobID) {
		c.mu.Unlock()
		return IntentResult{Success: true, Message: "Job was not saved."}
	}
	c.mu.Unlock()

	message := "Job removed from saved."
	localOnly := false

	if c.auth.IsAuthenticated() {
		if err := c.account.UnsaveJob(ctx, jobID); err != nil && !errors.Is(err, jobdata.ErrNotFound) {
			c.logger.Warn("backend unsave failed, removing locally",
				zap.String("job_id", jobID),
				zap.Error(err),
			)
			message = "Couldn't reach the server — removed locally for now."
			localOnly = true
		} else if saved, err := c.account.SavedJobs(ctx); err == nil {
			c.mu.Lock()
			c.savedJobs = saved
			c.mu.Unlock()
		}
	}

	c.mu.Lock()
	kept := make([]models.SavedJob, 0, len(c.savedJobs))
	for _, s := range c.savedJobs {
		if s.Job.ID != jobID {
			kept = append(kept, s)
		}
	}
	c.savedJobs = kept
	saved := append([]models.SavedJob(nil), kept...)
	c.mu.Unlock()

	if err := c.mirror.WriteSavedJobs(ctx, saved); err != nil {
		c.logger.Warn("mirror write failed on unsave", zap.Error(err))
	}

	return IntentResult{Success: true, Message: message, LocalOnly: localOnly}
}

// Apply fails fast without a network call when unauthenticated. On success
// the applications list is re-fetched rather than appended, so status fields
// stay server-authoritative; on failure no state is mutated.
func (c *Container) Apply(ctx context.Context, jobID string, req models.ApplicationRequest) IntentResult {
	if !c.auth.IsAuthenticated() {
		return IntentResult{
			RequireAuth: true,
			Message:     "Sign in to apply for jobs.",
		}
	}

	if jobID == "" {
		return IntentResult{Message: "Invalid job."}
	}

	if err := c.account.Apply(ctx, jobID, req); err != nil {
		if errors.Is(err, jobdata.ErrAlreadyExists) {
			return IntentResult{Message: "You have already applied to this job."}
		}
		if errors.Is(err, jobdata.ErrAuthRequired) {
			return IntentResult{RequireAuth: true, Message: "Sign in to apply for jobs."}
		}

		c.logger.Warn("apply failed",
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return IntentResult{Message: "Failed to submit application, please try again."}
	}

	if apps, err := c.account.Applications(ctx); err == nil {
		c.mu.Lock()
		c.applications = apps
		c.mu.Unlock()
	} else {
		c.logger.Warn("applications re-fetch failed after apply", zap.Error(err))
	}

	return IntentResult{Success: true, Message: "Application submitted."}
}
