// Package analysis derives training signals from a workout-session history:
// aggregate statistics, day streaks, fatigue indicators, overtraining and
// deload classification, prioritized alerts, muscle-group balance, frequency
// and intensity trends, and plateau detection over personal records.
//
// Every function is a pure, deterministic function of its inputs and an
// explicit reference time. Nothing here reads a clock, performs I/O, or keeps
// state between calls, so the whole pipeline can be re-run on every refresh
// and concurrent runs on the same input produce identical output.
//
// The numeric formulas are descriptive heuristics carried over from the
// product's original scoring and are not medically or scientifically
// validated. Scores labelled as estimates (sleep quality in particular) are
// statistical proxies derived from workout-performance variance, not
// measurements.
package analysis

import "time"

// MetricType identifies what a personal record measures.
type MetricType string

const (
	MetricWeight   MetricType = "weight"
	MetricReps     MetricType = "reps"
	MetricDuration MetricType = "duration"
)

// WorkoutSession is one workout as recorded by the session-tracking flow.
// A zero CompletedAt means the session is still in progress; such sessions
// are excluded from all analytics.
type WorkoutSession struct {
	ID          string
	Type        string
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
	Exercises   []ExerciseLog
}

// Completed reports whether the session has finished.
func (s WorkoutSession) Completed() bool {
	return !s.CompletedAt.IsZero()
}

// Volume sums weight times reps over the completed sets of the session.
func (s WorkoutSession) Volume() float64 {
	var volume float64
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.Completed && set.ActualWeightKg != nil && set.ActualReps != nil {
				volume += *set.ActualWeightKg * float64(*set.ActualReps)
			}
		}
	}
	return volume
}

// CompletedSets counts the sets marked completed.
func (s WorkoutSession) CompletedSets() int {
	var n int
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				n++
			}
		}
	}
	return n
}

// CompletionRate is completed sets over total sets, 0 for a session without sets.
func (s WorkoutSession) CompletionRate() float64 {
	var total int
	for _, ex := range s.Exercises {
		total += len(ex.Sets)
	}
	if total == 0 {
		return 0
	}
	return float64(s.CompletedSets()) / float64(total)
}

// ExerciseLog is one exercise performed within a session.
type ExerciseLog struct {
	Name                  string
	PrimaryMuscleGroup    string
	SecondaryMuscleGroups []string
	Equipment             string
	Sets                  []SetRecord
}

// SetRecord is a single set with its target and, when performed, actual values.
type SetRecord struct {
	TargetReps     int
	TargetWeightKg float64
	TargetDuration time.Duration
	ActualReps     *int
	ActualWeightKg *float64
	ActualDuration *time.Duration
	Completed      bool
	PersonalRecord bool
}

// PersonalRecord is one entry in the append-only record log.
type PersonalRecord struct {
	Exercise   string
	Value      float64
	Metric     MetricType
	AchievedAt time.Time
}

// IndicatorStatus buckets an indicator value at the 25/50/75 breakpoints.
type IndicatorStatus string

const (
	StatusLow      IndicatorStatus = "low"
	StatusModerate IndicatorStatus = "moderate"
	StatusHigh     IndicatorStatus = "high"
	StatusCritical IndicatorStatus = "critical"
)

// FatigueIndicator is one named 0-100 fatigue sub-score. Estimated marks
// scores derived statistically rather than from measured data.
type FatigueIndicator struct {
	ID             string
	Name           string
	Value          float64
	Status         IndicatorStatus
	Estimated      bool
	Description    string
	Recommendation string
}

// PatternType names an overall training-state classification.
type PatternType string

const (
	PatternOverreaching PatternType = "overreaching"
	PatternOvertraining PatternType = "overtraining"
	PatternNormal       PatternType = "normal"
	PatternDeloadNeeded PatternType = "deload_needed"
)

// Severity grades a detected pattern.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// FatiguePattern is a classification derived from the indicator set.
type FatiguePattern struct {
	Type         PatternType
	Confidence   float64
	DurationDays int
	Severity     Severity
	MuscleGroups []string
}

// AlertType ranks an alert's urgency.
type AlertType string

const (
	AlertInfo     AlertType = "info"
	AlertWarning  AlertType = "warning"
	AlertCritical AlertType = "critical"
)

// FatigueAlert is a user-facing alert generated fresh on each analysis run.
// Alerts are not persisted entities; dismissal tracking is an external concern.
type FatigueAlert struct {
	ID              string
	Type            AlertType
	Title           string
	Message         string
	CreatedAt       time.Time
	ActionRequired  bool
	Recommendations []string
}

// Trend is a coarse direction over two adjacent observation windows.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// MuscleGroupAnalysis summarizes training attention for one muscle group.
type MuscleGroupAnalysis struct {
	MuscleGroup    string
	Frequency      int
	LastTrained    time.Time
	AverageVolume  float64
	Trend          Trend
	NeedsAttention bool
}

// ProgressState classifies strength progress for one exercise.
type ProgressState string

const (
	ProgressImproving  ProgressState = "improving"
	ProgressPlateauing ProgressState = "plateauing"
	ProgressDeclining  ProgressState = "declining"
)

// ProgressTrend is the per-exercise outcome of progress analysis.
// Confidence lies in [0, 1].
type ProgressTrend struct {
	Exercise       string
	State          ProgressState
	ChangeRate     float64
	Confidence     float64
	Recommendation string
}

// Estimated marks a value that is statistically derived rather than measured.
// It exists so proxy metrics cannot silently be consumed as ground truth.
type Estimated[T any] struct {
	Value T
}
