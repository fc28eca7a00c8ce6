package postgres

import (
	"context"
	"fmt"
	"time"

	"jobpulse/internal/storage/mirror"

	"github.com/gocraft/dbr/v2"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// KV backs the local mirror with a single Postgres table:
//
//	CREATE TABLE IF NOT EXISTS mirror_kv (
//	    key        TEXT PRIMARY KEY,
//	    value      BYTEA NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type KV struct {
	conn   *dbr.Connection
	sess   *dbr.Session
	logger *zap.Logger
}

func New(dsn string, logger *zap.Logger) (*KV, error) {
	conn, err := dbr.Open("postgres", dsn, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// set up connection pool
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	// check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sess := conn.NewSession(nil)

	logger.Info("successfully connected to PostgreSQL")

	return &KV{
		conn:   conn,
		sess:   sess,
		logger: logger,
	}, nil
}

func (k *KV) Close() error {
	return k.conn.Close()
}

func (k *KV) Ping(ctx context.Context) error {
	return k.conn.PingContext(ctx)
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := k.sess.
		Select("value").
		From("mirror_kv").
		Where("key = ?", key).
		LoadOneContext(ctx, &value)

	if err == dbr.ErrNotFound {
		return nil, mirror.ErrNotFound
	}

	if err != nil {
		k.logger.Error("failed to get key",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get key: %w", err)
	}

	return value, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO mirror_kv (key, value, updated_at)
		VALUES (?, ?, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := k.sess.
		InsertBySql(query, key, value).
		ExecContext(ctx)

	if err != nil {
		k.logger.Error("failed to set key",
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("set key: %w", err)
	}

	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	_, err := k.sess.
		DeleteFrom("mirror_kv").
		Where("key = ?", key).
		ExecContext(ctx)

	if err != nil {
		k.logger.Error("failed to delete key",
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("delete key: %w", err)
	}

	return nil
}
