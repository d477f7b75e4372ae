package analysis

import (
	"fmt"
	"time"

	"github.com/okotila/liftsight/internal/ptr"
)

// Builders shared by the package tests. Sessions default to a single
// exercise unless the test supplies its own.

func testSession(id string, completedAt time.Time, duration time.Duration, exercises ...ExerciseLog) WorkoutSession {
	return WorkoutSession{
		ID:          id,
		Type:        "strength",
		StartedAt:   completedAt.Add(-duration),
		CompletedAt: completedAt,
		Duration:    duration,
		Exercises:   exercises,
	}
}

func testExercise(name, primary string, sets ...SetRecord) ExerciseLog {
	return ExerciseLog{
		Name:               name,
		PrimaryMuscleGroup: primary,
		Equipment:          "barbell",
		Sets:               sets,
	}
}

func doneSet(weightKg float64, reps int) SetRecord {
	return SetRecord{
		TargetReps:     reps,
		TargetWeightKg: weightKg,
		ActualReps:     ptr.Ref(reps),
		ActualWeightKg: ptr.Ref(weightKg),
		Completed:      true,
	}
}

func missedSet(weightKg float64, reps int) SetRecord {
	return SetRecord{
		TargetReps:     reps,
		TargetWeightKg: weightKg,
	}
}

// uniformHistory builds count completed sessions one day apart ending at
// newest, each with the given completed sets.
func uniformHistory(count int, newest time.Time, duration time.Duration, sets ...SetRecord) []WorkoutSession {
	sessions := make([]WorkoutSession, 0, count)
	for i := 0; i < count; i++ {
		completedAt := newest.AddDate(0, 0, -i)
		sessions = append(sessions, testSession(
			fmt.Sprintf("s%d", i), completedAt, duration,
			testExercise("Bench press", "chest", sets...),
		))
	}
	return sessions
}
