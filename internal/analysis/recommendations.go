package analysis

import "fmt"

// ComposeRecommendations merges the four pattern analyses into one short,
// ranked recommendation list. Muscle-group attention comes first, then
// frequency, then intensity and recovery, then plateau-breaking advice; the
// list is capped so the athlete gets the top actions, not a wall of text.
func ComposeRecommendations(muscle MuscleBalance, frequency FrequencyAnalysis, intensity IntensityAnalysis, progress ProgressAnalysis, cfg Thresholds) []string {
	var recommendations []string

	recommendations = append(recommendations, muscle.Recommendations...)

	if frequency.AverageWeekly < cfg.FrequencyLowPerWeek ||
		frequency.AverageWeekly > cfg.FrequencyHighPerWeek ||
		frequency.Consistency < cfg.ConsistencyLow {
		recommendations = append(recommendations, frequency.Recommendation)
	}

	if intensity.RecoveryNeeded || intensity.Trend == TrendDecreasing {
		recommendations = append(recommendations, intensity.Recommendation)
	}

	for _, exercise := range progress.PlateauExercises {
		recommendations = append(recommendations,
			fmt.Sprintf("Break the plateau on %s: change rep ranges, add a variation, or plan a small deload.", exercise))
	}

	if len(recommendations) > cfg.MaxRecommendations {
		recommendations = recommendations[:cfg.MaxRecommendations]
	}
	return recommendations
}
