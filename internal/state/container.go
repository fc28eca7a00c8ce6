package state

import (
	"context"
	"strings"
	"sync"

	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"
	"jobpulse/internal/storage/mirror"

	"go.uber.org/zap"
)

// AuthProvider is the black-box authentication signal. The container never
// touches tokens; the backend client carries credentials itself.
type AuthProvider interface {
	IsAuthenticated() bool
	UserID() string
}

// AccountAPI is the backend surface the container calls directly: the write
// path and the account-scoped reads. The read fallback chain lives in the
// orchestrator, not here.
type AccountAPI interface {
	Search(ctx context.Context, filters models.SearchFilters, page, perPage int) ([]models.Job, error)
	SavedJobs(ctx context.Context) ([]models.SavedJob, error)
	SaveJob(ctx context.Context, jobID string) error
	UnsaveJob(ctx context.Context, jobID string) error
	Applications(ctx context.Context) ([]models.Application, error)
	Apply(ctx context.Context, jobID string, req models.ApplicationRequest) error
}

// IntentResult is the only failure shape surfaced to the UI: a soft,
// structured message. Data reads never produce a hard error.
type IntentResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RequireAuth bool   `json:"requireAuth,omitempty"`
	// LocalOnly marks an outcome durable in the local mirror but not yet on
	// the backend.
	LocalOnly bool `json:"localOnly,omitempty"`
}

// Container holds the job-board state the UI renders from and owns every
// intent against it. It is constructed once at application startup and passed
// by reference; there is no ambient global.
type Container struct {
	orchestrator *jobdata.Orchestrator
	account      AccountAPI
	mirror       *mirror.Store
	auth         AuthProvider
	logger       *zap.Logger

	mu           sync.Mutex
	jobs         []models.Job
	filteredJobs []models.Job
	savedJobs    []models.SavedJob
	applications []models.Application
	filters      models.SearchFilters
	loading      bool

	// searchToken suppresses stale filter responses: in-flight searches are
	// not aborted, but only the latest one may land.
	searchToken string
}

type Deps struct {
	Orchestrator *jobdata.Orchestrator
	Account      AccountAPI
	Mirror       *mirror.Store
	Auth         AuthProvider
	Logger       *zap.Logger
}

func New(deps Deps) *Container {
	return &Container{
		orchestrator: deps.Orchestrator,
		account:      deps.Account,
		mirror:       deps.Mirror,
		auth:         deps.Auth,
		logger:       deps.Logger,
		savedJobs:    []models.SavedJob{},
		applications: []models.Application{},
		loading:      true,
	}
}

// isAuthRoute guards against firing data fetches mid-login-flow.
func isAuthRoute(route string) bool {
	return strings.HasPrefix(route, "/login") || strings.HasPrefix(route, "/register")
}

// Bootstrap loads the initial state once authentication has settled. On an
// authentication route it does nothing at all: no fetch may fire mid-login.
func (c *Container) Bootstrap(ctx context.Context, route string) {
	if isAuthRoute(route) {
		c.logger.Debug("bootstrap skipped on auth route", zap.String("route", route))
		return
	}

	jobs := c.orchestrator.SearchJobs(ctx, models.SearchFilters{}, 0, 20)

	saved, apps := c.loadAccountState(ctx)

	c.mu.Lock()
	c.jobs = jobs
	c.filteredJobs = jobs
	c.savedJobs = saved
	c.applications = apps
	c.loading = false
	c.mu.Unlock()

	c.logger.Info("state bootstrapped",
		zap.Int("jobs", len(jobs)),
		zap.Int("saved", len(saved)),
		zap.Int("applications", len(apps)),
		zap.Bool("authenticated", c.auth.IsAuthenticated()),
	)
}

// loadAccountState resolves savedJobs and applications for the current
// authentication state, degrading to the mirror and to empty on failure.
func (c *Container) loadAccountState(ctx context.Context) ([]models.SavedJob, []models.Application) {
	if !c.auth.IsAuthenticated() {
		return c.mirror.SavedJobs(ctx), []models.Application{}
	}

	saved, err := c.account.SavedJobs(ctx)
	if err != nil {
		c.logger.Warn("saved jobs fetch failed, using local mirror", zap.Error(err))
		saved = c.mirror.SavedJobs(ctx)
	}

	apps, err := c.account.Applications(ctx)
	if err != nil {
		c.logger.Warn("applications fetch failed, using empty list", zap.Error(err))
		apps = []models.Application{}
	}

	return saved, apps
}

// OnAuthChange re-synchronizes after a login or logout. On login, local-only
// saves are pushed to the backend first (the "sign in to sync" promise), then
// the merged view is rebuilt backend-preferred; local saves are never
// silently dropped.
func (c *Container) OnAuthChange(ctx context.Context) {
	if !c.auth.IsAuthenticated() {
		saved := c.mirror.SavedJobs(ctx)
		c.mu.Lock()
		c.savedJobs = saved
		c.applications = []models.Application{}
		c.mu.Unlock()
		return
	}

	local := c.mirror.SavedJobs(ctx)

	remote, err := c.account.SavedJobs(ctx)
	if err != nil {
		c.logger.Warn("saved jobs fetch failed after login, keeping local mirror", zap.Error(err))
		c.mu.Lock()
		c.savedJobs = local
		c.mu.Unlock()
		return
	}

	pushed := 0
	for _, s := range local {
		if models.ContainsJob(remote, s.Job.ID) {
			continue
		}
		if err := c.account.SaveJob(ctx, s.Job.ID); err != nil {
			c.logger.Warn("failed to sync local save to backend",
				zap.String("job_id", s.Job.ID),
				zap.Error(err),
			)
			continue
		}
		pushed++
	}

	if pushed > 0 {
		c.logger.Info("synced local saves to backend", zap.Int("count", pushed))
		if refreshed, err := c.account.SavedJobs(ctx); err == nil {
			remote = refreshed
		}
	}

	merged := mergeSaved(remote, local)
	if err := c.mirror.WriteSavedJobs(ctx, merged); err != nil {
		c.logger.Warn("mirror write failed after login sync", zap.Error(err))
	}

	apps, err := c.account.Applications(ctx)
	if err != nil {
		apps = []models.Application{}
	}

	c.mu.Lock()
	c.savedJobs = merged
	c.applications = apps
	c.mu.Unlock()
}

// mergeSaved unions two saved lists by job identity; entries from the first
// list win conflicts.
func mergeSaved(preferred, other []models.SavedJob) []models.SavedJob {
	merged := make([]models.SavedJob, 0, len(preferred)+len(other))
	merged = append(merged, preferred...)
	for _, s := range other {
		if !models.ContainsJob(merged, s.Job.ID) {
			merged = append(merged, s)
		}
	}
	return merged
}

func (c *Container) Jobs() []models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Job(nil), c.jobs...)
}

func (c *Container) FilteredJobs() []models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Job(nil), c.filteredJobs...)
}

func (c *Container) SavedJobs() []models.SavedJob {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.SavedJob(nil), c.savedJobs...)
}

func (c *Container) Applications() []models.Application {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Application(nil), c.applications...)
}

func (c *Container) Filters() models.SearchFilters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

func (c *Container) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Container) findJob(jobID string) (models.Job, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, j := range c.jobs {
		if j.ID == jobID {
			return j, true
		}
	}
	return models.Job{}, false
}
