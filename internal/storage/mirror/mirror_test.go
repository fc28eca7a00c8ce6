package mirror_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobpulse/internal/jobdata"
	"jobpulse/internal/models"
	"jobpulse/internal/storage/mirror"

	"go.uber.org/zap"
)

// brokenKV fails every operation, standing in for an unreachable store.
type brokenKV struct{}

var errKVDown = errors.New("kv down")

func (brokenKV) Get(ctx context.Context, key string) ([]byte, error)     { return nil, errKVDown }
func (brokenKV) Set(ctx context.Context, key string, value []byte) error { return errKVDown }
func (brokenKV) Delete(ctx context.Context, key string) error            { return errKVDown }

func TestSavedJobs_Roundtrip(t *testing.T) {
	store := mirror.NewStore(mirror.NewMemory(), zap.NewNop())
	ctx := context.Background()

	saved := []models.SavedJob{
		{Job: models.Job{ID: "j1", Title: "Go Developer"}, SavedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
		{Job: models.Job{ID: "j2", Title: "Platform Engineer"}, SavedAt: time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)},
	}

	if err := store.WriteSavedJobs(ctx, saved); err != nil {
		t.Fatalf("WriteSavedJobs: %v", err)
	}

	got := store.SavedJobs(ctx)
	if len(got) != 2 || got[0].Job.ID != "j1" || got[1].Job.ID != "j2" {
		t.Errorf("SavedJobs = %+v, want the two written entries back", got)
	}
	if !got[0].SavedAt.Equal(saved[0].SavedAt) {
		t.Errorf("SavedAt = %v, want %v preserved", got[0].SavedAt, saved[0].SavedAt)
	}
}

func TestSavedJobs_AbsentKeyIsEmpty(t *testing.T) {
	store := mirror.NewStore(mirror.NewMemory(), zap.NewNop())

	got := store.SavedJobs(context.Background())
	if got == nil || len(got) != 0 {
		t.Errorf("SavedJobs = %v, want an empty non-nil slice", got)
	}
}

func TestSavedJobs_ReadFailureDegradesToEmpty(t *testing.T) {
	store := mirror.NewStore(brokenKV{}, zap.NewNop())

	got := store.SavedJobs(context.Background())
	if len(got) != 0 {
		t.Errorf("SavedJobs = %v, want empty when the store is down", got)
	}
}

func TestSavedJobs_CorruptEntryDegradesToEmpty(t *testing.T) {
	kv := mirror.NewMemory()
	if err := kv.Set(context.Background(), mirror.KeySavedJobs, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	store := mirror.NewStore(kv, zap.NewNop())
	if got := store.SavedJobs(context.Background()); len(got) != 0 {
		t.Errorf("SavedJobs = %v, want empty for a corrupt entry", got)
	}
}

func TestWriteSavedJobs_FailureIsPersistenceError(t *testing.T) {
	store := mirror.NewStore(brokenKV{}, zap.NewNop())

	err := store.WriteSavedJobs(context.Background(), []models.SavedJob{{Job: models.Job{ID: "j1"}}})
	if !errors.Is(err, jobdata.ErrPersistence) {
		t.Errorf("err = %v, want ErrPersistence", err)
	}
}

func TestUser_RoundtripAndClear(t *testing.T) {
	store := mirror.NewStore(mirror.NewMemory(), zap.NewNop())
	ctx := context.Background()

	if got := store.User(ctx); got != nil {
		t.Errorf("User = %+v, want nil before any write", got)
	}

	profile := models.UserProfile{ID: "u1", Name: "Sam", Email: "sam@example.com"}
	if err := store.WriteUser(ctx, profile); err != nil {
		t.Fatalf("WriteUser: %v", err)
	}

	got := store.User(ctx)
	if got == nil || got.ID != "u1" || got.Email != "sam@example.com" {
		t.Errorf("User = %+v, want the written profile", got)
	}

	if err := store.ClearUser(ctx); err != nil {
		t.Fatalf("ClearUser: %v", err)
	}
	if got := store.User(ctx); got != nil {
		t.Errorf("User = %+v, want nil after clear", got)
	}
}

func TestUser_ReadFailureIsNil(t *testing.T) {
	store := mirror.NewStore(brokenKV{}, zap.NewNop())
	if got := store.User(context.Background()); got != nil {
		t.Errorf("User = %+v, want nil when the store is down", got)
	}
}
