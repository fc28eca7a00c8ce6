package bot

import (
	"context"
	"fmt"
	"time"

	"jobpulse/internal/bot/handlers"
	"jobpulse/internal/bot/middleware"
	"jobpulse/internal/config"
	"jobpulse/internal/jobdata"
	"jobpulse/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot is the demo consumer of the job-data layer: a Telegram front end that
// plays the role of the UI application.
type Bot struct {
	bot          *tele.Bot
	state        *state.Container
	orchestrator *jobdata.Orchestrator
	config       *config.Config
	logger       *zap.Logger
}

func New(
	cfg *config.Config,
	container *state.Container,
	orchestrator *jobdata.Orchestrator,
	logger *zap.Logger,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	bot := &Bot{
		bot:          b,
		state:        container,
		orchestrator: orchestrator,
		config:       cfg,
		logger:       logger,
	}

	bot.setupMiddleware()
	bot.registerHandlers()

	logger.Info("bot initialized successfully")

	return bot, nil
}

func (b *Bot) setupMiddleware() {
	b.bot.Use(middleware.Recovery(b.logger))
	b.bot.Use(middleware.Logger(b.logger))
	b.bot.Use(middleware.RateLimit(b.logger))
}

func (b *Bot) registerHandlers() {
	ctx := &handlers.Context{
		State:        b.state,
		Orchestrator: b.orchestrator,
		Config:       b.config,
		Logger:       b.logger,
	}

	b.bot.Handle("/start", handlers.HandleStart(ctx))
	b.bot.Handle("/help", handlers.HandleHelp(ctx))
	b.bot.Handle("/search", handlers.HandleSearch(ctx))
	b.bot.Handle("/latest", handlers.HandleLatest(ctx))
	b.bot.Handle("/categories", handlers.HandleCategories(ctx))
	b.bot.Handle("/stats", handlers.HandleStats(ctx))
	b.bot.Handle("/save", handlers.HandleSave(ctx))
	b.bot.Handle("/unsave", handlers.HandleUnsave(ctx))
	b.bot.Handle("/saved", handlers.HandleSaved(ctx))
	b.bot.Handle("/apply", handlers.HandleApply(ctx))

	b.logger.Info("handlers registered")
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting bot...")

	go b.bot.Start()

	<-ctx.Done()

	b.logger.Info("stopping bot...")
	b.bot.Stop()

	return nil
}
