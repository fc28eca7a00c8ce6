package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jobpulse/internal/api/backend"
	"jobpulse/internal/api/jsearch"
	"jobpulse/internal/api/staticjobs"
	"jobpulse/internal/auth"
	"jobpulse/internal/bot"
	"jobpulse/internal/cache"
	"jobpulse/internal/config"
	"jobpulse/internal/jobdata"
	"jobpulse/internal/logger"
	"jobpulse/internal/ratelimit"
	"jobpulse/internal/state"
	"jobpulse/internal/storage/mirror"
	"jobpulse/internal/storage/postgres"
	"jobpulse/internal/storage/redis"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting JobPulse bot",
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.String("mirror_backend", cfg.MirrorBackend),
	)

	kv, closeKV, err := buildMirrorKV(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize mirror store", zap.Error(err))
	}
	defer closeKV()

	mirrorStore := mirror.NewStore(kv, log)

	ttlCache, err := cache.New(cfg.CacheTTL, log)
	if err != nil {
		log.Fatal("failed to create cache", zap.Error(err))
	}

	limiter := ratelimit.New(cfg.RateLimitInterval, log)

	credentials := auth.NewStatic(cfg.BackendToken, cfg.BackendUserID)

	backendClient := backend.New(cfg.BackendBaseURL, cfg.HTTPTimeout, credentials, log)

	var secondary jobdata.Source
	if cfg.SearchAPIKey != "" {
		secondary = jsearch.New(
			cfg.SearchAPIBaseURL,
			cfg.SearchAPIKey,
			cfg.SearchAPIHost,
			cfg.HTTPTimeout,
			limiter,
			log,
		)
	} else {
		log.Warn("no search API key configured, running without the third-party source")
	}

	orchestrator := jobdata.New(backendClient, secondary, staticjobs.New(), ttlCache, log)

	container := state.New(state.Deps{
		Orchestrator: orchestrator,
		Account:      backendClient,
		Mirror:       mirrorStore,
		Auth:         credentials,
		Logger:       log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container.Bootstrap(ctx, "/")

	log.Info("initializing Telegram bot...")
	tgBot, err := bot.New(cfg, container, orchestrator, log)
	if err != nil {
		log.Fatal("failed to create bot", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	log.Info("bot is running...")

	if err := tgBot.Start(ctx); err != nil {
		log.Error("bot stopped with error", zap.Error(err))
	}

	log.Info("bot stopped")
}

func buildMirrorKV(cfg *config.Config, log *zap.Logger) (mirror.KV, func(), error) {
	switch cfg.MirrorBackend {
	case "redis":
		kv, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { kv.Close() }, nil
	case "postgres":
		kv, err := postgres.New(cfg.PostgresDSN, log)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { kv.Close() }, nil
	default:
		return mirror.NewMemory(), func() {}, nil
	}
}
