package analysis

import (
	"fmt"
	"sort"
	"time"
)

// muscleGroupVocabulary is the fixed set of muscle groups the balance
// analysis understands. Exercise logs carrying other group names are ignored.
var muscleGroupVocabulary = map[string]bool{
	"chest":      true,
	"back":       true,
	"shoulders":  true,
	"biceps":     true,
	"triceps":    true,
	"quads":      true,
	"hamstrings": true,
	"glutes":     true,
	"core":       true,
	"calves":     true,
}

// MuscleBalance is the outcome of the muscle-group balance analysis.
type MuscleBalance struct {
	Groups          []MuscleGroupAnalysis
	Balanced        bool
	Recommendations []string
}

// AnalyzeMuscleBalance examines training attention per muscle group: how
// often each group was trained in the last 14 days, when it was last touched,
// its average attributed session volume, and whether attention is trending up
// or down against the previous 14-day window. Only groups that appear in the
// history are reported; the overall balance verdict holds when at most one
// group needs attention.
func AnalyzeMuscleBalance(sessions []WorkoutSession, now time.Time, cfg Thresholds) MuscleBalance {
	completed := completedNewestFirst(sessions)

	recentCutoff := now.AddDate(0, 0, -14)
	previousCutoff := now.AddDate(0, 0, -28)

	type groupStats struct {
		recentSessions   int
		previousSessions int
		lastTrained      time.Time
		volumeTotal      float64
		volumeSessions   int
	}
	stats := map[string]*groupStats{}
	grab := func(group string) *groupStats {
		if !muscleGroupVocabulary[group] {
			return nil
		}
		gs, ok := stats[group]
		if !ok {
			gs = &groupStats{}
			stats[group] = gs
		}
		return gs
	}

	for _, s := range completed {
		trained := map[string]bool{}
		volumes := map[string]float64{}
		for _, ex := range s.Exercises {
			if ex.PrimaryMuscleGroup != "" {
				trained[ex.PrimaryMuscleGroup] = true
				// Volume is attributed to the primary group only, so
				// secondary involvement never double-counts load.
				for _, set := range ex.Sets {
					if set.Completed && set.ActualWeightKg != nil && set.ActualReps != nil {
						volumes[ex.PrimaryMuscleGroup] += *set.ActualWeightKg * float64(*set.ActualReps)
					}
				}
			}
			for _, g := range ex.SecondaryMuscleGroups {
				trained[g] = true
			}
		}

		for g := range trained {
			gs := grab(g)
			if gs == nil {
				continue
			}
			if s.CompletedAt.After(gs.lastTrained) {
				gs.lastTrained = s.CompletedAt
			}
			switch {
			case s.CompletedAt.After(recentCutoff):
				gs.recentSessions++
			case s.CompletedAt.After(previousCutoff):
				gs.previousSessions++
			}
			if v, ok := volumes[g]; ok {
				gs.volumeTotal += v
				gs.volumeSessions++
			}
		}
	}

	names := make([]string, 0, len(stats))
	for g := range stats {
		names = append(names, g)
	}
	sort.Strings(names)

	result := MuscleBalance{Balanced: true}
	var flagged int
	for _, g := range names {
		gs := stats[g]

		trend := TrendStable
		switch {
		case gs.recentSessions > gs.previousSessions:
			trend = TrendIncreasing
		case gs.recentSessions < gs.previousSessions:
			trend = TrendDecreasing
		}

		var avgVolume float64
		if gs.volumeSessions > 0 {
			avgVolume = gs.volumeTotal / float64(gs.volumeSessions)
		}

		idleDays := int(now.Sub(gs.lastTrained).Hours() / 24)
		needsAttention := idleDays > cfg.AttentionIdleDays || gs.recentSessions < cfg.AttentionMinFrequency

		result.Groups = append(result.Groups, MuscleGroupAnalysis{
			MuscleGroup:    g,
			Frequency:      gs.recentSessions,
			LastTrained:    gs.lastTrained,
			AverageVolume:  avgVolume,
			Trend:          trend,
			NeedsAttention: needsAttention,
		})

		if needsAttention {
			flagged++
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Give %s more attention: train it at least %d times per two weeks.", g, cfg.AttentionMinFrequency))
		}
	}
	result.Balanced = flagged <= 1
	return result
}
