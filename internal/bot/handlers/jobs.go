package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"jobpulse/internal/models"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const handlerTimeout = 30 * time.Second

// /start command
func HandleStart(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		featured := ctx.Orchestrator.FeaturedJobs(reqCtx, 3)

		welcome := "👋 Welcome to JobPulse!\n\n" +
			"/search <query> — find jobs\n" +
			"/latest — newest listings\n" +
			"/categories — browse by category\n" +
			"/saved — your saved jobs\n" +
			"/help — all commands\n\n" +
			formatJobList(featured, "A few featured roles:")

		return c.Send(welcome)
	}
}

// /help command
func HandleHelp(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Send("Commands:\n" +
			"/search <query> — search jobs\n" +
			"/latest — newest listings\n" +
			"/categories — job categories\n" +
			"/stats — board statistics\n" +
			"/save <id> — save a job\n" +
			"/unsave <id> — remove a saved job\n" +
			"/saved — list saved jobs\n" +
			"/apply <id> — apply to a job")
	}
}

// /search command
func HandleSearch(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		query := strings.TrimSpace(c.Message().Payload)
		if query == "" {
			return c.Reply("Usage: /search <query>, e.g. /search golang developer")
		}

		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		jobs := ctx.Orchestrator.SearchJobs(reqCtx, models.SearchFilters{Query: query}, 0, 5)

		ctx.Logger.Debug("search handled",
			zap.String("query", query),
			zap.Int("results", len(jobs)),
		)

		return c.Send(formatJobList(jobs, "Results for \""+query+"\":"))
	}
}

// /latest command
func HandleLatest(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		jobs := ctx.Orchestrator.LatestJobs(reqCtx, 5)
		return c.Send(formatJobList(jobs, "Latest listings:"))
	}
}

// /categories command
func HandleCategories(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		categories := ctx.Orchestrator.JobCategories(reqCtx)

		var b strings.Builder
		b.WriteString("Browse by category:\n\n")
		for _, cat := range categories {
			b.WriteString("• ")
			b.WriteString(cat.Name)
			if cat.Count > 0 {
				b.WriteString(" (")
				b.WriteString(strconv.Itoa(cat.Count))
				b.WriteString(")")
			}
			b.WriteString("\n")
		}

		return c.Send(b.String())
	}
}

// /stats command
func HandleStats(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		reqCtx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()

		stats := ctx.Orchestrator.JobStats(reqCtx)
		if stats == nil {
			return c.Send("Statistics are unavailable right now.")
		}

		return c.Send("📊 Board statistics:\n" +
			"Jobs: " + strconv.Itoa(stats.TotalJobs) + "\n" +
			"Companies: " + strconv.Itoa(stats.TotalCompanies) + "\n" +
			"New today: " + strconv.Itoa(stats.NewToday) + "\n" +
			"Remote: " + strconv.Itoa(stats.RemoteJobs))
	}
}
