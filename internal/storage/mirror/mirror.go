package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"

	"go.uber.org/zap"
)

// ErrNotFound reports an absent key; callers treat it as empty state, not as
// a failure.
var ErrNotFound = errors.New("mirror: key not found")

// The mirror persists exactly two logical keys. There is no transactional
// guarantee across them; the backend remains the reconciling source of truth
// on the next authenticated load.
const (
	KeySavedJobs = "savedJobs"
	KeyUser      = "user"
)

// KV is the injected storage capability. Production deployments back it with
// Redis or Postgres; tests use the in-memory implementation.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes the mirrored collections. Read failures degrade to
// empty and log; they never block a read path.
type Store struct {
	kv     KV
	logger *zap.Logger
}

func NewStore(kv KV, logger *zap.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// SavedJobs returns the mirrored saved-jobs collection, or empty when the key
// is absent or the store is unavailable.
func (s *Store) SavedJobs(ctx context.Context) []models.SavedJob {
	data, err := s.kv.Get(ctx, KeySavedJobs)
	if errors.Is(err, ErrNotFound) {
		return []models.SavedJob{}
	}
	if err != nil {
		s.logger.Warn("mirror read failed, treating as empty",
			zap.String("key", KeySavedJobs),
			zap.Error(err),
		)
		return []models.SavedJob{}
	}

	var saved []models.SavedJob
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Warn("mirror entry corrupt, treating as empty",
			zap.String("key", KeySavedJobs),
			zap.Error(err),
		)
		return []models.SavedJob{}
	}

	return saved
}

// WriteSavedJobs persists the full collection. The whole value is rewritten
// on every mutating intent.
func (s *Store) WriteSavedJobs(ctx context.Context, saved []models.SavedJob) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("%w: marshal saved jobs: %v", jobdata.ErrPersistence, err)
	}

	if err := s.kv.Set(ctx, KeySavedJobs, data); err != nil {
		s.logger.Warn("mirror write failed",
			zap.String("key", KeySavedJobs),
			zap.Int("count", len(saved)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", jobdata.ErrPersistence, err)
	}

	return nil
}

// User returns the mirrored profile, or nil when absent or unavailable.
func (s *Store) User(ctx context.Context) *models.UserProfile {
	data, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("mirror read failed", zap.String("key", KeyUser), zap.Error(err))
		}
		return nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Warn("mirror entry corrupt", zap.String("key", KeyUser), zap.Error(err))
		return nil
	}

	return &profile
}

func (s *Store) WriteUser(ctx context.Context, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: marshal user: %v", jobdata.ErrPersistence, err)
	}

	if err := s.kv.Set(ctx, KeyUser, data); err != nil {
		return fmt.Errorf("%w: %v", jobdata.ErrPersistence, err)
	}
	return nil
}

func (s *Store) ClearUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("%w: %v", jobdata.ErrPersistence, err)
	}
	return nil
}
