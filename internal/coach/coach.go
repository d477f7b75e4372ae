// Package coach phrases the analysis results as a short natural-language
// summary. It calls OpenAI when an API key is configured and otherwise falls
// back to the deterministic recommendation list, so the feature degrades
// gracefully instead of failing the report.
package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/okotila/liftsight/internal/analysis"
	"github.com/okotila/liftsight/internal/report"
)

const systemPrompt = `You are a personal trainer summarizing a training analysis report for your athlete.
Write a short, encouraging summary in plain prose: two or three paragraphs at most.
Lead with the overall training state, mention the most important fatigue findings, and end
with the concrete next steps. Use only the numbers present in the report; never invent data.
Values labeled as estimates are statistical proxies, not measurements, and must be described as such.`

// Coach produces the summary text for a report.
type Coach struct {
	client  openai.Client
	enabled bool
	logger  *slog.Logger
}

// New creates a Coach. An empty API key disables the OpenAI call and the
// coach sticks to the deterministic fallback.
func New(apiKey string, logger *slog.Logger) *Coach {
	c := &Coach{
		enabled: apiKey != "",
		logger:  logger,
	}
	if c.enabled {
		c.client = openai.NewClient(option.WithAPIKey(apiKey))
	}
	return c
}

// Summarize returns a natural-language summary of the report. Any failure of
// the OpenAI call degrades to the deterministic fallback with a warning, so
// report generation never depends on the API being reachable.
func (c *Coach) Summarize(ctx context.Context, r analysis.Report) string {
	if !c.enabled {
		return fallbackSummary(r)
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(report.Markdown(r)),
		},
	})
	if err != nil {
		c.logger.WarnContext(ctx, "coach summary failed, using fallback", slog.Any("error", err))
		return fallbackSummary(r)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		c.logger.WarnContext(ctx, "coach summary empty, using fallback")
		return fallbackSummary(r)
	}

	c.logger.DebugContext(ctx, "generated coach summary",
		slog.Int64("total_tokens", completion.Usage.TotalTokens))
	return completion.Choices[0].Message.Content
}

// fallbackSummary composes a deterministic summary from the report itself.
func fallbackSummary(r analysis.Report) string {
	var b strings.Builder

	switch {
	case len(r.Patterns) == 0:
		b.WriteString("Training load looks normal.")
	default:
		names := make([]string, 0, len(r.Patterns))
		for _, p := range r.Patterns {
			names = append(names, string(p.Type))
		}
		fmt.Fprintf(&b, "Detected training-state patterns: %s.", strings.Join(names, ", "))
	}

	if r.Statistics.TotalWorkouts > 0 {
		fmt.Fprintf(&b, " %d workouts on record, %d in the last 30 days.",
			r.Statistics.TotalWorkouts, r.Statistics.WorkoutsLast30Day)
	}
	if r.Streaks.Current > 0 {
		fmt.Fprintf(&b, " Current streak: %d days.", r.Streaks.Current)
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n\nNext steps:\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}
	return b.String()
}
