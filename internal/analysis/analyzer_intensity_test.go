package analysis

import (
	"testing"
	"time"
)

func TestSessionIntensity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    WorkoutSession
		want float64
	}{
		{
			name: "zero duration scores zero",
			s:    WorkoutSession{Duration: 0},
			want: 0,
		},
		{
			// 3000 volume and 3 sets over 60 minutes:
			// 50/100 + 0.05*2 = 0.6.
			name: "moderate session",
			s: testSession("s", time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC), time.Hour,
				testExercise("Squat", "quads", doneSet(100, 10), doneSet(100, 10), doneSet(100, 10))),
			want: 0.6,
		},
		{
			// Enormous density clamps at the scale ceiling.
			name: "dense session clamps at 10",
			s: testSession("s", time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC), time.Minute,
				testExercise("Squat", "quads", doneSet(200, 10), doneSet(200, 10))),
			want: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := sessionIntensity(tt.s)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("sessionIntensity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeIntensityTrend(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	cfg := DefaultThresholds()

	// Recent block doubles the volume of the previous block at equal
	// duration, well past the dead-band.
	recent := uniformHistory(5, now, time.Hour, doneSet(100, 20), doneSet(100, 20))
	previous := uniformHistory(5, now.AddDate(0, 0, -5), time.Hour, doneSet(100, 10), doneSet(100, 10))
	sessions := append(recent, previous...)

	got := AnalyzeIntensity(sessions, cfg)
	if got.Trend != TrendIncreasing {
		t.Errorf("Trend = %s, want increasing", got.Trend)
	}

	// Equal blocks sit inside the dead-band.
	flat := append(
		uniformHistory(5, now, time.Hour, doneSet(100, 10)),
		uniformHistory(5, now.AddDate(0, 0, -5), time.Hour, doneSet(100, 10))...)
	if got := AnalyzeIntensity(flat, cfg); got.Trend != TrendStable {
		t.Errorf("Trend on flat history = %s, want stable", got.Trend)
	}
}

func TestAnalyzeIntensityRecoveryFlag(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	cfg := DefaultThresholds()

	// Five short, very dense sessions all score above the hard-session
	// threshold.
	hard := uniformHistory(5, now, 10*time.Minute,
		doneSet(200, 10), doneSet(200, 10), doneSet(200, 10), doneSet(200, 10))

	got := AnalyzeIntensity(hard, cfg)
	if !got.RecoveryNeeded {
		t.Errorf("RecoveryNeeded = false for mean intensity %v, want true", got.CurrentIntensity)
	}

	easy := uniformHistory(5, now, time.Hour, doneSet(50, 10))
	if got := AnalyzeIntensity(easy, cfg); got.RecoveryNeeded {
		t.Error("RecoveryNeeded = true for easy sessions, want false")
	}
}

func TestAnalyzeIntensityEmpty(t *testing.T) {
	t.Parallel()

	got := AnalyzeIntensity(nil, DefaultThresholds())
	if got.CurrentIntensity != 0 || got.Trend != TrendStable || got.RecoveryNeeded {
		t.Errorf("empty analysis = %+v, want zero intensity, stable, no recovery flag", got)
	}
}
