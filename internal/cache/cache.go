package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"
)

// Cache is the process-wide TTL cache for orchestrator reads. Entries carry
// their write timestamp; a read past the TTL reports a miss even if bigcache's
// cleaner has not evicted the entry yet. The cache cannot fail: storage or
// codec errors degrade to a miss.
type Cache struct {
	store  *bigcache.BigCache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

type envelope struct {
	WrittenAt time.Time       `json:"writtenAt"`
	Payload   json.RawMessage `json:"payload"`
}

func New(ttl time.Duration, logger *zap.Logger) (*Cache, error) {
	store, err := bigcache.New(context.Background(), bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, err
	}

	return &Cache{
		store:  store,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Set stores a value under the key. Failures are logged, never surfaced.
func (c *Cache) Set(key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	data, err := json.Marshal(envelope{WrittenAt: c.now(), Payload: payload})
	if err != nil {
		c.logger.Warn("cache envelope marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.Set(key, data); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Get loads a live entry into dest and reports whether one was found.
// Expired entries are evicted lazily and treated as absent.
func (c *Cache) Get(key string, dest interface{}) bool {
	data, err := c.store.Get(key)
	if err != nil {
		return false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		_ = c.store.Delete(key)
		return false
	}

	if c.now().Sub(env.WrittenAt) >= c.ttl {
		_ = c.store.Delete(key)
		return false
	}

	if err := json.Unmarshal(env.Payload, dest); err != nil {
		c.logger.Warn("cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
