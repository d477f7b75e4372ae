package analysis

import (
	"sort"
	"time"
)

// completedNewestFirst filters out in-progress sessions and returns a copy
// sorted by completion time, most recent first. Callers may pass the history
// in any order; every exported function normalizes through this.
func completedNewestFirst(sessions []WorkoutSession) []WorkoutSession {
	out := make([]WorkoutSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Completed() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out
}

// sessionsWithinDays counts sessions completed in the window (now-days, now].
func sessionsWithinDays(sessions []WorkoutSession, now time.Time, days int) int {
	cutoff := now.AddDate(0, 0, -days)
	var n int
	for _, s := range sessions {
		if s.Completed() && s.CompletedAt.After(cutoff) && !s.CompletedAt.After(now) {
			n++
		}
	}
	return n
}

// sessionPerformance is the per-session work-rate proxy used by several
// indicators: volume scaled by completion rate per hour of training.
// Sessions without a usable duration score 0.
func sessionPerformance(s WorkoutSession) float64 {
	hours := s.Duration.Hours()
	if hours <= 0 {
		return 0
	}
	return s.Volume() * s.CompletionRate() / hours
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values))
}

// civilDate truncates a timestamp to its calendar date in its own location.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
