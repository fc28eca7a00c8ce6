package jobdata

import (
	"context"
	"errors"

	"jobpulse/internal/cache"
	"jobpulse/internal/models"

	"go.uber.org/zap"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Orchestrator answers every job-data read by trying sources in a fixed
// priority order and caching successful answers. Its contract is "always
// returns a usable result": failures escalate degradation, they are never
// thrown to the caller. Write intents (save/unsave/apply) do not go through
// this chain; the state container issues those against the backend directly.
type Orchestrator struct {
	primary   Source
	secondary Source
	fallback  Source
	cache     *cache.Cache
	logger    *zap.Logger
}

// New wires the fallback chain. fallback must be a source that cannot fail;
// secondary may be nil.
func New(primary, secondary, fallback Source, c *cache.Cache, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		primary:   primary,
		secondary: secondary,
		fallback:  fallback,
		cache:     c,
		logger:    logger,
	}
}

// fetch is the shared read path: live cache hit wins, then primary, then
// secondary, caching the first success. Static fallback results are not
// cached, so the next identical call retries the real sources instead of
// being pinned to static data for a TTL window.
func fetch[T any](ctx context.Context, o *Orchestrator, op, key string, call func(context.Context, Source) (T, error)) T {
	var cached T
	if o.cache.Get(key, &cached) {
		o.logger.Debug("cache hit", zap.String("op", op), zap.String("key", key))
		return cached
	}

	for _, src := range []Source{o.primary, o.secondary} {
		if src == nil {
			continue
		}

		result, err := call(ctx, src)
		if err != nil {
			if errors.Is(err, ErrUnsupported) {
				o.logger.Debug("source does not support operation",
					zap.String("op", op),
					zap.String("source", src.Name()),
				)
			} else {
				o.logger.Warn("source failed, trying next tier",
					zap.String("op", op),
					zap.String("source", src.Name()),
					zap.Error(err),
				)
			}
			continue
		}

		o.cache.Set(key, result)
		return result
	}

	result, err := call(ctx, o.fallback)
	if err != nil {
		// the static source never fails; this guards a miswired chain
		o.logger.Error("fallback source failed",
			zap.String("op", op),
			zap.Error(err),
		)
		var zero T
		return zero
	}

	o.logger.Info("serving static fallback data", zap.String("op", op))
	return result
}

// SearchJobs returns listings matching the filters, deduplicated by job
// identity.
func (o *Orchestrator) SearchJobs(ctx context.Context, filters models.SearchFilters, page, perPage int) []models.Job {
	if page < 0 {
		page = 0
	}
	if perPage <= 0 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	key := searchKey(filters, page, perPage)
	return fetch(ctx, o, "searchJobs", key, func(ctx context.Context, s Source) ([]models.Job, error) {
		jobs, err := s.Search(ctx, filters, page, perPage)
		if err != nil {
			return nil, err
		}
		return models.DedupeJobs(jobs), nil
	})
}

func (o *Orchestrator) FeaturedJobs(ctx context.Context, limit int) []models.Job {
	if limit <= 0 {
		limit = 6
	}

	return fetch(ctx, o, "getFeaturedJobs", featuredKey(limit), func(ctx context.Context, s Source) ([]models.Job, error) {
		jobs, err := s.Featured(ctx, limit)
		if err != nil {
			return nil, err
		}
		return models.DedupeJobs(jobs), nil
	})
}

func (o *Orchestrator) LatestJobs(ctx context.Context, limit int) []models.Job {
	if limit <= 0 {
		limit = 10
	}

	return fetch(ctx, o, "getLatestJobs", latestKey(limit), func(ctx context.Context, s Source) ([]models.Job, error) {
		jobs, err := s.Latest(ctx, limit)
		if err != nil {
			return nil, err
		}
		return models.DedupeJobs(jobs), nil
	})
}

func (o *Orchestrator) JobCategories(ctx context.Context) []models.Category {
	return fetch(ctx, o, "getJobCategories", categoriesKey(), func(ctx context.Context, s Source) ([]models.Category, error) {
		return s.Categories(ctx)
	})
}

func (o *Orchestrator) JobStats(ctx context.Context) *models.JobStats {
	return fetch(ctx, o, "getJobStats", statsKey(), func(ctx context.Context, s Source) (*models.JobStats, error) {
		return s.Stats(ctx)
	})
}
