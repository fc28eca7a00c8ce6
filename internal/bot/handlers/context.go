package handlers

import (
	"jobpulse/internal/config"
	"jobpulse/internal/jobdata"
	"jobpulse/internal/state"

	"go.uber.org/zap"
)

// Context contains deps for all handlers
type Context struct {
	State        *state.Container
	Orchestrator *jobdata.Orchestrator
	Config       *config.Config
	Logger       *zap.Logger
}
