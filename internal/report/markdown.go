// Package report renders an analysis report as Markdown or HTML.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/okotila/liftsight/internal/analysis"
)

// Markdown renders the report as a Markdown document.
func Markdown(r analysis.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Training report\n\n")
	fmt.Fprintf(&b, "Generated %s.\n\n", r.GeneratedAt.Format("2006-01-02"))

	writeStatistics(&b, r.Statistics, r.Streaks)
	writeAlerts(&b, r.Alerts)
	writeIndicators(&b, r.Indicators)
	writePatterns(&b, r.Patterns)
	writeBalance(&b, r.MuscleBalance)
	writeFrequency(&b, r.Frequency)
	writeIntensity(&b, r.Intensity)
	writeProgress(&b, r.Progress)
	writeRecommendations(&b, r.Recommendations)

	return b.String()
}

func writeStatistics(b *strings.Builder, stats analysis.Statistics, streaks analysis.Streaks) {
	fmt.Fprintf(b, "## Overview\n\n")
	fmt.Fprintf(b, "| | |\n|---|---|\n")
	fmt.Fprintf(b, "| Workouts | %d |\n", stats.TotalWorkouts)
	fmt.Fprintf(b, "| Total time | %s |\n", formatDuration(stats.TotalDuration))
	fmt.Fprintf(b, "| Average session | %s |\n", formatDuration(stats.AverageDuration))
	fmt.Fprintf(b, "| Sets / reps | %d / %d |\n", stats.TotalSets, stats.TotalReps)
	fmt.Fprintf(b, "| Volume | %.0f kg |\n", stats.TotalVolume)
	fmt.Fprintf(b, "| Last 7 / 30 days | %d / %d |\n", stats.WorkoutsLast7Days, stats.WorkoutsLast30Day)
	fmt.Fprintf(b, "| Streak (current / longest) | %d / %d days |\n\n", streaks.Current, streaks.Longest)

	if len(stats.FavoriteExercises) > 0 {
		fmt.Fprintf(b, "Favorite exercises:\n\n")
		for i, fav := range stats.FavoriteExercises {
			if i == 3 {
				break
			}
			fmt.Fprintf(b, "- %s (%d sessions)\n", fav.Name, fav.Count)
		}
		fmt.Fprintf(b, "\n")
	}
}

func writeAlerts(b *strings.Builder, alerts []analysis.FatigueAlert) {
	if len(alerts) == 0 {
		return
	}
	fmt.Fprintf(b, "## Alerts\n\n")
	for _, a := range alerts {
		fmt.Fprintf(b, "### %s (%s)\n\n%s\n\n", a.Title, a.Type, a.Message)
		for _, rec := range a.Recommendations {
			fmt.Fprintf(b, "- %s\n", rec)
		}
		fmt.Fprintf(b, "\n")
	}
}

func writeIndicators(b *strings.Builder, indicators []analysis.FatigueIndicator) {
	if len(indicators) == 0 {
		return
	}
	fmt.Fprintf(b, "## Fatigue indicators\n\n")
	fmt.Fprintf(b, "| Indicator | Value | Status |\n|---|---|---|\n")
	for _, ind := range indicators {
		name := ind.Name
		if ind.Estimated {
			name += " (estimate)"
		}
		fmt.Fprintf(b, "| %s | %.0f | %s |\n", name, ind.Value, ind.Status)
	}
	fmt.Fprintf(b, "\n")
}

func writePatterns(b *strings.Builder, patterns []analysis.FatiguePattern) {
	fmt.Fprintf(b, "## Training state\n\n")
	if len(patterns) == 0 {
		fmt.Fprintf(b, "No fatigue patterns detected. Training load looks normal.\n\n")
		return
	}
	for _, p := range patterns {
		fmt.Fprintf(b, "- **%s** (%s, %.0f%% confidence, ~%d days", p.Type, p.Severity, p.Confidence, p.DurationDays)
		if len(p.MuscleGroups) > 0 {
			fmt.Fprintf(b, "; affects %s", strings.Join(p.MuscleGroups, ", "))
		}
		fmt.Fprintf(b, ")\n")
	}
	fmt.Fprintf(b, "\n")
}

func writeBalance(b *strings.Builder, balance analysis.MuscleBalance) {
	if len(balance.Groups) == 0 {
		return
	}
	fmt.Fprintf(b, "## Muscle balance\n\n")
	fmt.Fprintf(b, "| Group | Frequency | Trend | Needs attention |\n|---|---|---|---|\n")
	for _, g := range balance.Groups {
		attention := ""
		if g.NeedsAttention {
			attention = "yes"
		}
		fmt.Fprintf(b, "| %s | %d | %s | %s |\n", g.MuscleGroup, g.Frequency, g.Trend, attention)
	}
	fmt.Fprintf(b, "\n")
}

func writeFrequency(b *strings.Builder, freq analysis.FrequencyAnalysis) {
	fmt.Fprintf(b, "## Frequency\n\n")
	fmt.Fprintf(b, "%.1f sessions per week on average, consistency %.0f%%.\n\n",
		freq.AverageWeekly, freq.Consistency*100)
	if len(freq.TopDays) > 0 {
		days := make([]string, 0, len(freq.TopDays))
		for _, d := range freq.TopDays {
			days = append(days, d.String())
		}
		fmt.Fprintf(b, "Usual training days: %s.", strings.Join(days, ", "))
		if len(freq.TopTimes) > 0 {
			fmt.Fprintf(b, " Usual time: %s.", strings.Join(freq.TopTimes, ", "))
		}
		fmt.Fprintf(b, "\n\n")
	}
}

func writeIntensity(b *strings.Builder, intensity analysis.IntensityAnalysis) {
	fmt.Fprintf(b, "## Intensity\n\n")
	fmt.Fprintf(b, "Current intensity %.1f/10, trend %s.\n\n", intensity.CurrentIntensity, intensity.Trend)
}

func writeProgress(b *strings.Builder, progress analysis.ProgressAnalysis) {
	if len(progress.Trends) == 0 {
		return
	}
	fmt.Fprintf(b, "## Progress\n\n")
	fmt.Fprintf(b, "Overall: %s.\n\n", progress.Overall)
	fmt.Fprintf(b, "| Exercise | State | Change |\n|---|---|---|\n")
	for _, trend := range progress.Trends {
		fmt.Fprintf(b, "| %s | %s | %+.1f%% |\n", trend.Exercise, trend.State, trend.ChangeRate)
	}
	fmt.Fprintf(b, "\n")
	if len(progress.PlateauExercises) > 0 {
		fmt.Fprintf(b, "Plateaued: %s.\n\n", strings.Join(progress.PlateauExercises, ", "))
	}
}

func writeRecommendations(b *strings.Builder, recommendations []string) {
	if len(recommendations) == 0 {
		return
	}
	fmt.Fprintf(b, "## Recommendations\n\n")
	for _, rec := range recommendations {
		fmt.Fprintf(b, "1. %s\n", rec)
	}
	fmt.Fprintf(b, "\n")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours == 0 {
		return fmt.Sprintf("%dmin", minutes)
	}
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}
