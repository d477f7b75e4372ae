package analysis

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okotila/liftsight/internal/errors"
)

// Report is the complete output of one analysis run over a session and
// record history.
type Report struct {
	GeneratedAt     time.Time
	Statistics      Statistics
	Streaks         Streaks
	Indicators      []FatigueIndicator
	Patterns        []FatiguePattern
	Alerts          []FatigueAlert
	MuscleBalance   MuscleBalance
	Frequency       FrequencyAnalysis
	Intensity       IntensityAnalysis
	Progress        ProgressAnalysis
	Recommendations []string
}

// Run executes the full analysis chain for one (sessions, records, now)
// triple. The independent analyses run concurrently into disjoint report
// fields; the classifier, alert and recommendation stages then run in order
// on their results. Output is deterministic and identical to a sequential
// run, so re-running on the same input yields the same report.
func Run(ctx context.Context, sessions []WorkoutSession, records []PersonalRecord, now time.Time, cfg Thresholds) (Report, error) {
	if err := ValidateSessions(sessions); err != nil {
		return Report{}, errors.Wrap(err, "validate session history")
	}

	report := Report{GeneratedAt: now}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Statistics = Aggregate(sessions, now)
		return nil
	})
	g.Go(func() error {
		report.Streaks = CalculateStreaks(sessions, now)
		return nil
	})
	g.Go(func() error {
		report.Indicators = IndicatorSet(sessions, now, cfg)
		return nil
	})
	g.Go(func() error {
		report.MuscleBalance = AnalyzeMuscleBalance(sessions, now, cfg)
		return nil
	})
	g.Go(func() error {
		report.Frequency = AnalyzeFrequency(sessions, now, cfg)
		return nil
	})
	g.Go(func() error {
		report.Intensity = AnalyzeIntensity(sessions, cfg)
		return nil
	})
	g.Go(func() error {
		report.Progress = AnalyzeProgress(records, now, cfg)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, errors.Wrap(err, "analysis canceled")
	}

	report.Patterns = ClassifyPatterns(report.Indicators, sessions, cfg)
	report.Alerts = GenerateAlerts(report.Indicators, report.Patterns, now, cfg)
	report.Recommendations = ComposeRecommendations(
		report.MuscleBalance, report.Frequency, report.Intensity, report.Progress, cfg)

	return report, nil
}
