package cache_test

import (
	"testing"
	"time"

	"jobpulse/internal/cache"

	"go.uber.org/zap"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetAfterSetWithinTTL(t *testing.T) {
	c, err := cache.New(5*time.Minute, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := payload{Name: "backend-search", Count: 42}
	c.Set("jobs:search:q=go", want)

	var got payload
	if !c.Get("jobs:search:q=go", &got) {
		t.Fatal("expected a cache hit immediately after Set")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGetMissingKey(t *testing.T) {
	c, err := cache.New(5*time.Minute, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var got payload
	if c.Get("never-set", &got) {
		t.Error("expected a miss for a key that was never set")
	}
}

func TestExpiredEntryIsAbsent(t *testing.T) {
	c, err := cache.New(50*time.Millisecond, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Set("k", payload{Name: "stale"})

	time.Sleep(80 * time.Millisecond)

	var got payload
	if c.Get("k", &got) {
		t.Error("entry older than the TTL must be treated as absent, never returned")
	}
}

func TestSetOverwrites(t *testing.T) {
	c, err := cache.New(5*time.Minute, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Set("k", payload{Count: 1})
	c.Set("k", payload{Count: 2})

	var got payload
	if !c.Get("k", &got) {
		t.Fatal("expected a hit")
	}
	if got.Count != 2 {
		t.Errorf("got count %d, want 2", got.Count)
	}
}
