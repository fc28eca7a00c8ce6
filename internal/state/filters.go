package state

import (
	"context"
	"strings"

	"jobpulse/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SetFilters re-derives filteredJobs from the backend search with the
// stripped filters. On backend failure it falls back to an in-memory
// predicate over the already-loaded jobs — a degraded approximation of
// server-side search, not an equivalent. In-flight searches are not aborted;
// a request token ensures only the latest filter application lands.
func (c *Container) SetFilters(ctx context.Context, filters models.SearchFilters) {
	token := uuid.NewString()

	c.mu.Lock()
	c.filters = filters
	c.searchToken = token
	if filters.IsZero() {
		c.filteredJobs = append([]models.Job(nil), c.jobs...)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	results, err := c.account.Search(ctx, filters, 0, 20)
	if err != nil {
		c.logger.Warn("backend search failed, filtering loaded jobs in memory", zap.Error(err))

		c.mu.Lock()
		if c.searchToken == token {
			c.filteredJobs = filterJobs(c.jobs, filters)
		}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	if c.searchToken == token {
		c.filteredJobs = models.DedupeJobs(results)
	} else {
		c.logger.Debug("stale search result dropped")
	}
	c.mu.Unlock()
}

// filterJobs is the client-side fallback predicate: substring match on
// title/company/description, exact match on type and experience, substring
// on location.
func filterJobs(jobs []models.Job, f models.SearchFilters) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if matchesFilters(j, f) {
			out = append(out, j)
		}
	}
	return out
}

func matchesFilters(j models.Job, f models.SearchFilters) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(j.Title + " " + j.Company.Name + " " + j.Description)
		if !strings.Contains(haystack, q) {
			return false
		}
	}

	if f.JobType != "" && !strings.EqualFold(j.Type, f.JobType) {
		return false
	}

	if f.Experience != "" && !strings.EqualFold(j.Experience, f.Experience) {
		return false
	}

	if loc := strings.ToLower(strings.TrimSpace(f.Location)); loc != "" {
		haystack := strings.ToLower(j.Location.String() + " " + j.Company.Location)
		if !strings.Contains(haystack, loc) {
			return false
		}
	}

	if company := strings.ToLower(strings.TrimSpace(f.Company)); company != "" {
		if !strings.Contains(strings.ToLower(j.Company.Name), company) {
			return false
		}
	}

	return true
}
