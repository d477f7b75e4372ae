package analysis

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAggregateEmptyHistory(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	got := Aggregate(nil, now)

	want := Statistics{FavoriteExercises: []ExerciseCount{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateTotals(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	sessions := []WorkoutSession{
		testSession("s1", now.AddDate(0, 0, -1), time.Hour,
			testExercise("Bench press", "chest", doneSet(100, 10), doneSet(100, 10), missedSet(100, 10)),
		),
		testSession("s2", now.AddDate(0, 0, -10), 30*time.Minute,
			testExercise("Squat", "quads", doneSet(120, 5)),
		),
		// In-progress session must be excluded from everything.
		{ID: "s3", StartedAt: now, Exercises: []ExerciseLog{}},
	}

	got := Aggregate(sessions, now)

	if got.TotalWorkouts != 2 {
		t.Errorf("TotalWorkouts = %d, want 2", got.TotalWorkouts)
	}
	if want := 90 * time.Minute; got.TotalDuration != want {
		t.Errorf("TotalDuration = %v, want %v", got.TotalDuration, want)
	}
	if want := 45 * time.Minute; got.AverageDuration != want {
		t.Errorf("AverageDuration = %v, want %v", got.AverageDuration, want)
	}
	if got.TotalSets != 3 {
		t.Errorf("TotalSets = %d, want 3 (only completed sets count)", got.TotalSets)
	}
	if got.TotalReps != 25 {
		t.Errorf("TotalReps = %d, want 25", got.TotalReps)
	}
	if want := 2600.0; got.TotalVolume != want {
		t.Errorf("TotalVolume = %v, want %v", got.TotalVolume, want)
	}
	if got.WorkoutsLast7Days != 1 {
		t.Errorf("WorkoutsLast7Days = %d, want 1", got.WorkoutsLast7Days)
	}
	if got.WorkoutsLast30Day != 2 {
		t.Errorf("WorkoutsLast30Day = %d, want 2", got.WorkoutsLast30Day)
	}
}

func TestAggregateFavoriteRanking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	// Squat appears twice; Bench press and Deadlift once each, bench seen
	// first in history order.
	sessions := []WorkoutSession{
		testSession("s1", now.AddDate(0, 0, -3), time.Hour,
			testExercise("Bench press", "chest", doneSet(100, 5)),
			testExercise("Squat", "quads", doneSet(120, 5)),
		),
		testSession("s2", now.AddDate(0, 0, -2), time.Hour,
			testExercise("Deadlift", "back", doneSet(140, 5)),
			testExercise("Squat", "quads", doneSet(120, 5)),
		),
	}

	got := Aggregate(sessions, now).FavoriteExercises
	want := []ExerciseCount{
		{Name: "Squat", Count: 2},
		{Name: "Bench press", Count: 1},
		{Name: "Deadlift", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FavoriteExercises mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateRecentRecords(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	recordSet := doneSet(110, 5)
	recordSet.PersonalRecord = true

	sessions := []WorkoutSession{
		testSession("s1", now.AddDate(0, 0, -1), time.Hour,
			testExercise("Bench press", "chest", recordSet, doneSet(100, 8)),
		),
	}

	got := Aggregate(sessions, now).RecentRecords
	if len(got) != 1 {
		t.Fatalf("RecentRecords length = %d, want 1", len(got))
	}
	record := got[0]
	if record.Exercise != "Bench press" || record.Metric != MetricWeight || record.Value != 110 {
		t.Errorf("record = %+v, want Bench press weight 110", record)
	}
}
