package jobdata

import (
	"context"

	"jobpulse/internal/models"
)

// Source is one interchangeable provider of job listings. Implementations
// signal failure upward with a classified error and never fall back
// themselves; ordering is the orchestrator's job. Operations a source cannot
// serve return ErrUnsupported.
type Source interface {
	Name() string
	Search(ctx context.Context, filters models.SearchFilters, page, perPage int) ([]models.Job, error)
	Featured(ctx context.Context, limit int) ([]models.Job, error)
	Latest(ctx context.Context, limit int) ([]models.Job, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Stats(ctx context.Context) (*models.JobStats, error)
}
