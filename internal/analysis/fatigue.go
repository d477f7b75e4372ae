package analysis

import (
	"math"
	"time"
)

// Recency weighting for windowed sub-scores: each step towards the most
// recent session adds 20% weight.
const recencyWeightStep = 0.2

// defaultSetDuration estimates the planned time per set (execution plus rest)
// when a set carries no explicit target duration.
const defaultSetDuration = 90 * time.Second

// PerformanceDeclineScore compares the mean performance of the three most
// recent sessions against the three before them and returns the decline as a
// 0-100 percentage. Fewer than six completed sessions, or a zero baseline,
// score 0.
func PerformanceDeclineScore(sessions []WorkoutSession) float64 {
	completed := completedNewestFirst(sessions)
	if len(completed) < 6 {
		return 0
	}

	var recent, older []float64
	for _, s := range completed[:3] {
		recent = append(recent, sessionPerformance(s))
	}
	for _, s := range completed[3:6] {
		older = append(older, sessionPerformance(s))
	}

	olderMean := mean(older)
	if olderMean == 0 {
		return 0
	}
	decline := (olderMean - mean(recent)) / olderMean * 100
	return clamp(decline, 0, 100)
}

// VolumeToleranceScore accumulates a recency-weighted load over the last four
// sessions: (volume/1000) x duration hours x share of sets left incomplete.
// High values mean the athlete is absorbing more load than they complete.
func VolumeToleranceScore(sessions []WorkoutSession) float64 {
	completed := completedNewestFirst(sessions)
	if len(completed) > 4 {
		completed = completed[:4]
	}
	if len(completed) == 0 {
		return 0
	}

	var load float64
	// Iterate oldest to newest so the recency index peaks at the most
	// recent session.
	for idx := 0; idx < len(completed); idx++ {
		s := completed[len(completed)-1-idx]
		weight := 1 + recencyWeightStep*float64(idx)
		load += (s.Volume() / 1000) * s.Duration.Hours() * (1 - s.CompletionRate()) * weight
	}
	return clamp(load*10, 0, 100)
}

// RecoveryRateScore couples the already-computed overall fatigue level with
// the training density of the last seven days. The coupling is deliberate in
// the source heuristic; the dependency is explicit here so callers cannot
// miss it.
func RecoveryRateScore(currentFatigue float64, sessionsLast7Days int) float64 {
	return clamp(currentFatigue/100*float64(sessionsLast7Days)/7*100, 0, 100)
}

// MotivationScore derives a fatigue proxy from how completely and how long
// the athlete trains relative to plan over the last five sessions. Full
// completion at or beyond the planned duration scores 0; abandoned sessions
// push towards 100.
func MotivationScore(sessions []WorkoutSession) float64 {
	completed := completedNewestFirst(sessions)
	if len(completed) > 5 {
		completed = completed[:5]
	}
	if len(completed) == 0 {
		return 0
	}

	var weightedScore, weightSum float64
	for idx := 0; idx < len(completed); idx++ {
		s := completed[len(completed)-1-idx]
		weight := 1 + recencyWeightStep*float64(idx)

		ratio := 1.0
		if planned := estimatePlannedDuration(s); planned > 0 {
			ratio = math.Min(s.Duration.Seconds()/planned.Seconds(), 1)
		}
		weightedScore += s.CompletionRate() * ratio * weight
		weightSum += weight
	}

	avg := weightedScore / weightSum
	return clamp((1-avg)*100, 0, 100)
}

// SleepQualityScore estimates sleep quality from the variance of the last
// three session performances, normalized by their mean so the score is
// independent of absolute training volume. This is a statistical estimate
// derived from workout variance, not measured data, hence the Estimated
// wrapper.
func SleepQualityScore(sessions []WorkoutSession) Estimated[float64] {
	completed := completedNewestFirst(sessions)
	if len(completed) < 3 {
		return Estimated[float64]{}
	}

	var perf []float64
	for _, s := range completed[:3] {
		perf = append(perf, sessionPerformance(s))
	}

	m := mean(perf)
	if m == 0 {
		return Estimated[float64]{}
	}
	normalized := make([]float64, len(perf))
	for i, p := range perf {
		normalized[i] = p / m
	}
	return Estimated[float64]{Value: clamp(variance(normalized)*50, 0, 100)}
}

// estimatePlannedDuration sums the target durations over all sets, assuming
// a default per set when none is recorded.
func estimatePlannedDuration(s WorkoutSession) time.Duration {
	var planned time.Duration
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.TargetDuration > 0 {
				planned += set.TargetDuration
			} else {
				planned += defaultSetDuration
			}
		}
	}
	return planned
}

// IndicatorSet computes the five fatigue indicators for the given history.
// The recovery-rate indicator depends on an aggregate fatigue level; the set
// builder resolves that circularity by feeding it the mean of the other four
// sub-scores.
func IndicatorSet(sessions []WorkoutSession, now time.Time, cfg Thresholds) []FatigueIndicator {
	completed := completedNewestFirst(sessions)

	decline := PerformanceDeclineScore(completed)
	tolerance := VolumeToleranceScore(completed)
	motivation := MotivationScore(completed)
	sleep := SleepQualityScore(completed)

	currentFatigue := mean([]float64{decline, tolerance, motivation, sleep.Value})
	recovery := RecoveryRateScore(currentFatigue, sessionsWithinDays(completed, now, 7))

	return []FatigueIndicator{
		newIndicator(cfg, "performance_decline", "Performance decline", decline, false,
			"Drop in work rate across the three most recent sessions versus the three before them.",
			"Performance is holding up. Keep the current load.",
			"Performance is dropping. Reduce volume or add a rest day before the next hard session."),
		newIndicator(cfg, "volume_tolerance", "Volume tolerance", tolerance, false,
			"Recency-weighted training load left incomplete over the last four sessions.",
			"Training volume is being absorbed well.",
			"Load is outpacing completion. Trim sets or weight until completion recovers."),
		newIndicator(cfg, "recovery_rate", "Recovery rate", recovery, false,
			"Overall fatigue level combined with training density over the last seven days.",
			"Recovery is keeping pace with training frequency.",
			"Too much training on too much fatigue. Schedule at least one full rest day."),
		newIndicator(cfg, "motivation_level", "Motivation level", motivation, false,
			"How completely and how long recent sessions were trained relative to plan.",
			"Session completion looks strong.",
			"Sessions are being cut short. Plan shorter workouts you can finish."),
		newIndicator(cfg, "sleep_quality", "Estimated sleep quality", sleep.Value, true,
			"Estimate derived from performance variance across the last three sessions; not measured sleep data.",
			"Performance is steady, suggesting adequate recovery between sessions.",
			"Performance swings suggest poor recovery. Review sleep and rest habits."),
	}
}

func newIndicator(cfg Thresholds, id, name string, value float64, estimated bool,
	description, maintainAdvice, interveneAdvice string) FatigueIndicator {
	recommendation := maintainAdvice
	if value >= cfg.IndicatorAdvice {
		recommendation = interveneAdvice
	}
	return FatigueIndicator{
		ID:             id,
		Name:           name,
		Value:          clamp(value, 0, 100),
		Status:         cfg.statusFor(value),
		Estimated:      estimated,
		Description:    description,
		Recommendation: recommendation,
	}
}
