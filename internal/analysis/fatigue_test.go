package analysis

import (
	"testing"
	"time"
)

func TestFatigueScoresEmptyHistory(t *testing.T) {
	t.Parallel()

	if got := PerformanceDeclineScore(nil); got != 0 {
		t.Errorf("PerformanceDeclineScore(nil) = %v, want 0", got)
	}
	if got := VolumeToleranceScore(nil); got != 0 {
		t.Errorf("VolumeToleranceScore(nil) = %v, want 0", got)
	}
	if got := MotivationScore(nil); got != 0 {
		t.Errorf("MotivationScore(nil) = %v, want 0", got)
	}
	if got := SleepQualityScore(nil); got.Value != 0 {
		t.Errorf("SleepQualityScore(nil) = %v, want 0", got.Value)
	}
	if got := RecoveryRateScore(0, 0); got != 0 {
		t.Errorf("RecoveryRateScore(0, 0) = %v, want 0", got)
	}

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	for _, ind := range IndicatorSet(nil, now, DefaultThresholds()) {
		if ind.Value != 0 {
			t.Errorf("indicator %s = %v on empty history, want 0", ind.ID, ind.Value)
		}
		if ind.Status != StatusLow {
			t.Errorf("indicator %s status = %s on empty history, want low", ind.ID, ind.Status)
		}
	}
}

func TestPerformanceDeclineScore(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	// Three strong older sessions, three weaker recent ones. Performance
	// halves, so the decline reads 50%.
	strong := doneSet(100, 10)
	weak := doneSet(100, 5)

	var sessions []WorkoutSession
	for i := 0; i < 3; i++ {
		sessions = append(sessions, testSession(
			"recent", now.AddDate(0, 0, -i), time.Hour,
			testExercise("Bench press", "chest", weak),
		))
	}
	for i := 3; i < 6; i++ {
		sessions = append(sessions, testSession(
			"older", now.AddDate(0, 0, -i), time.Hour,
			testExercise("Bench press", "chest", strong),
		))
	}

	if got := PerformanceDeclineScore(sessions); got != 50 {
		t.Errorf("PerformanceDeclineScore = %v, want 50", got)
	}

	// Improvement clamps at zero rather than going negative.
	reversed := append([]WorkoutSession{}, sessions...)
	for i := range reversed {
		if i < 3 {
			reversed[i].Exercises = []ExerciseLog{testExercise("Bench press", "chest", strong)}
		} else {
			reversed[i].Exercises = []ExerciseLog{testExercise("Bench press", "chest", weak)}
		}
	}
	if got := PerformanceDeclineScore(reversed); got != 0 {
		t.Errorf("PerformanceDeclineScore on improvement = %v, want 0", got)
	}

	// Too little history scores zero.
	if got := PerformanceDeclineScore(sessions[:5]); got != 0 {
		t.Errorf("PerformanceDeclineScore with 5 sessions = %v, want 0", got)
	}
}

func TestMotivationScoreMonotonicity(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	// Ten sets per session, k of them completed. Duration matches the
	// planned 90s per set so only completion drives the score.
	historyWithCompletion := func(completedSets int) []WorkoutSession {
		sets := make([]SetRecord, 0, 10)
		for i := 0; i < 10; i++ {
			if i < completedSets {
				sets = append(sets, doneSet(100, 5))
			} else {
				sets = append(sets, missedSet(100, 5))
			}
		}
		return uniformHistory(5, now, 15*time.Minute, sets...)
	}

	previous := 101.0
	for completedSets := 0; completedSets <= 10; completedSets += 2 {
		score := MotivationScore(historyWithCompletion(completedSets))
		if score > previous {
			t.Errorf("MotivationScore rose from %v to %v as completion improved", previous, score)
		}
		if score < 0 || score > 100 {
			t.Errorf("MotivationScore = %v out of range", score)
		}
		previous = score
	}

	if got := MotivationScore(historyWithCompletion(10)); got != 0 {
		t.Errorf("MotivationScore with full completion = %v, want 0", got)
	}
}

func TestSleepQualityScoreIsEstimated(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	// Identical sessions have zero performance variance.
	steady := uniformHistory(3, now, time.Hour, doneSet(100, 10))
	if got := SleepQualityScore(steady); got.Value != 0 {
		t.Errorf("SleepQualityScore on steady history = %v, want 0", got.Value)
	}

	// Wildly varying performance pushes the estimate up.
	varying := []WorkoutSession{
		testSession("a", now, time.Hour, testExercise("Bench press", "chest", doneSet(100, 20))),
		testSession("b", now.AddDate(0, 0, -1), time.Hour, testExercise("Bench press", "chest", doneSet(100, 2))),
		testSession("c", now.AddDate(0, 0, -2), time.Hour, testExercise("Bench press", "chest", doneSet(100, 20))),
	}
	if got := SleepQualityScore(varying); got.Value <= 0 || got.Value > 100 {
		t.Errorf("SleepQualityScore on varying history = %v, want in (0, 100]", got.Value)
	}

	indicators := IndicatorSet(varying, now, DefaultThresholds())
	for _, ind := range indicators {
		wantEstimated := ind.ID == "sleep_quality"
		if ind.Estimated != wantEstimated {
			t.Errorf("indicator %s Estimated = %v, want %v", ind.ID, ind.Estimated, wantEstimated)
		}
	}
}

func TestRecoveryRateScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		fatigue      float64
		sessionsLast int
		want         float64
	}{
		{"no fatigue", 0, 7, 0},
		{"half fatigue daily training", 50, 7, 50},
		{"full fatigue daily training", 100, 7, 100},
		{"full fatigue light week", 100, 2, 100.0 * 2 / 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RecoveryRateScore(tt.fatigue, tt.sessionsLast)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("RecoveryRateScore(%v, %d) = %v, want %v", tt.fatigue, tt.sessionsLast, got, tt.want)
			}
		})
	}
}

func TestIndicatorSetRangesAndAdvice(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	cfg := DefaultThresholds()

	// A mixed two-week history: some full sessions, some abandoned ones.
	sessions := uniformHistory(7, now, time.Hour, doneSet(100, 10), doneSet(100, 8))
	sessions = append(sessions,
		uniformHistory(7, now.AddDate(0, 0, -7), 20*time.Minute, doneSet(100, 10), missedSet(100, 8), missedSet(100, 8))...)

	indicators := IndicatorSet(sessions, now, cfg)
	if len(indicators) != 5 {
		t.Fatalf("IndicatorSet returned %d indicators, want 5", len(indicators))
	}
	for _, ind := range indicators {
		if ind.Value < 0 || ind.Value > 100 {
			t.Errorf("indicator %s value %v out of [0,100]", ind.ID, ind.Value)
		}
		if ind.Status != cfg.statusFor(ind.Value) {
			t.Errorf("indicator %s status %s does not match value %v", ind.ID, ind.Status, ind.Value)
		}
		if ind.Description == "" || ind.Recommendation == "" {
			t.Errorf("indicator %s is missing its texts", ind.ID)
		}
	}
}
