package handlers

import (
	"context"
	"strings"

	"jobpulse/internal/models"
	"jobpulse/internal/state"

	tele "gopkg.in/telebot.v3"
)

// /save command
func HandleSave(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		jobID := strings.TrimSpace(c.Message().Payload)
		if jobID == "" {
			return c.Reply("Usage: /save <job id>")
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		result := ctx.State.SaveJob(reqCtx, jobID)
		return c.Send(resultMessage(result))
	}
}

// /unsave command
func HandleUnsave(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		jobID := strings.TrimSpace(c.Message().Payload)
		if jobID == "" {
			return c.Reply("Usage: /unsave <job id>")
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		result := ctx.State.UnsaveJob(reqCtx, jobID)
		return c.Send(resultMessage(result))
	}
}

// /saved command
func HandleSaved(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		saved := ctx.State.SavedJobs()
		if len(saved) == 0 {
			return c.Send("You have no saved jobs yet. Use /save <job id> after a search.")
		}

		var b strings.Builder
		b.WriteString("⭐ Your saved jobs:\n\n")
		for _, s := range saved {
			b.WriteString(formatJobCard(s.Job))
			b.WriteString("\n\n")
		}
		return c.Send(strings.TrimRight(b.String(), "\n"))
	}
}

// /apply command
func HandleApply(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		jobID := strings.TrimSpace(c.Message().Payload)
		if jobID == "" {
			return c.Reply("Usage: /apply <job id>")
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		result := ctx.State.Apply(reqCtx, jobID, models.ApplicationRequest{})
		return c.Send(resultMessage(result))
	}
}

func resultMessage(r state.IntentResult) string {
	switch {
	case r.Success:
		return "✅ " + r.Message
	case r.RequireAuth:
		return "🔒 " + r.Message
	default:
		return "⚠️ " + r.Message
	}
}
