package analysis

import (
	"testing"
	"time"
)

func indicatorWithValue(id string, value float64, cfg Thresholds) FatigueIndicator {
	return FatigueIndicator{ID: id, Name: id, Value: value, Status: cfg.statusFor(value)}
}

func TestClassifyPatternsEmpty(t *testing.T) {
	t.Parallel()

	cfg := DefaultThresholds()
	indicators := []FatigueIndicator{
		indicatorWithValue("performance_decline", 10, cfg),
		indicatorWithValue("volume_tolerance", 5, cfg),
		indicatorWithValue("recovery_rate", 0, cfg),
	}

	if got := ClassifyPatterns(indicators, nil, cfg); len(got) != 0 {
		t.Errorf("ClassifyPatterns on low indicators = %+v, want none", got)
	}
}

func TestClassifyPatternsDeload(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	cfg := DefaultThresholds()

	// Fourteen sessions of volume 2000 each with three elevated indicators
	// must trigger a mild seven-day deload recommendation.
	sessions := uniformHistory(14, now, time.Hour, doneSet(100, 20))
	indicators := []FatigueIndicator{
		indicatorWithValue("performance_decline", 55, cfg),
		indicatorWithValue("volume_tolerance", 60, cfg),
		indicatorWithValue("recovery_rate", 55, cfg),
	}

	patterns := ClassifyPatterns(indicators, sessions, cfg)

	var deload *FatiguePattern
	for i := range patterns {
		if patterns[i].Type == PatternDeloadNeeded {
			deload = &patterns[i]
		}
	}
	if deload == nil {
		t.Fatalf("deload_needed pattern missing, got %+v", patterns)
	}
	if deload.Severity != SeverityMild {
		t.Errorf("deload severity = %s, want mild", deload.Severity)
	}
	if deload.DurationDays != 7 {
		t.Errorf("deload duration = %d, want 7", deload.DurationDays)
	}
	if deload.Confidence != 60 {
		t.Errorf("deload confidence = %v, want 60", deload.Confidence)
	}
}

func TestClassifyPatternsOverreachingAndOvertraining(t *testing.T) {
	t.Parallel()

	cfg := DefaultThresholds()
	tests := []struct {
		name             string
		values           []float64
		wantOverreaching bool
		wantOvertraining bool
		wantSeverity     Severity
	}{
		{
			name:             "two high indicators overreach",
			values:           []float64{55, 60, 10, 10, 10},
			wantOverreaching: true,
			wantSeverity:     SeverityModerate,
		},
		{
			name:             "three high indicators overreach severely",
			values:           []float64{55, 60, 65, 10, 10},
			wantOverreaching: true,
			wantSeverity:     SeveritySevere,
		},
		{
			name:             "two critical indicators overtrain",
			values:           []float64{80, 90, 10, 10, 10},
			wantOverreaching: true,
			wantOvertraining: true,
		},
		{
			name:             "one critical plus two high overtrain",
			values:           []float64{80, 55, 60, 10, 10},
			wantOverreaching: true,
			wantOvertraining: true,
		},
		{
			name:   "one critical alone does not overtrain or overreach",
			values: []float64{80, 10, 10, 10, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			indicators := make([]FatigueIndicator, 0, len(tt.values))
			for i, v := range tt.values {
				indicators = append(indicators, indicatorWithValue(string(rune('a'+i)), v, cfg))
			}

			patterns := ClassifyPatterns(indicators, nil, cfg)
			var gotOverreaching, gotOvertraining bool
			for _, p := range patterns {
				switch p.Type {
				case PatternOverreaching:
					gotOverreaching = true
					if tt.wantSeverity != "" && p.Severity != tt.wantSeverity {
						t.Errorf("overreaching severity = %s, want %s", p.Severity, tt.wantSeverity)
					}
				case PatternOvertraining:
					gotOvertraining = true
					if p.DurationDays != 14 {
						t.Errorf("overtraining duration = %d, want 14", p.DurationDays)
					}
				}
				if p.Confidence < 0 || p.Confidence > 100 {
					t.Errorf("%s confidence %v out of [0,100]", p.Type, p.Confidence)
				}
			}
			if gotOverreaching != tt.wantOverreaching {
				t.Errorf("overreaching = %v, want %v", gotOverreaching, tt.wantOverreaching)
			}
			if gotOvertraining != tt.wantOvertraining {
				t.Errorf("overtraining = %v, want %v", gotOvertraining, tt.wantOvertraining)
			}
		})
	}
}

func TestAffectedMuscleGroups(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	cfg := DefaultThresholds()

	// Chest in 4 of 4 recent sessions, back in 1 of 4: only chest clears
	// the half-of-window threshold.
	sessions := uniformHistory(4, now, time.Hour, doneSet(100, 10))
	sessions[0].Exercises = append(sessions[0].Exercises,
		testExercise("Row", "back", doneSet(80, 10)))

	indicators := []FatigueIndicator{
		indicatorWithValue("a", 80, cfg),
		indicatorWithValue("b", 90, cfg),
	}

	patterns := ClassifyPatterns(indicators, sessions, cfg)
	if len(patterns) == 0 {
		t.Fatal("expected at least one pattern")
	}
	for _, p := range patterns {
		if len(p.MuscleGroups) != 1 || p.MuscleGroups[0] != "chest" {
			t.Errorf("%s muscle groups = %v, want [chest]", p.Type, p.MuscleGroups)
		}
	}
}
