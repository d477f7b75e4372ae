package analysis

import (
	"sort"
	"time"

	"github.com/okotila/liftsight/internal/ptr"
)

// Statistics holds lifetime and windowed totals over the completed history.
type Statistics struct {
	TotalWorkouts     int
	TotalDuration     time.Duration
	TotalSets         int
	TotalReps         int
	TotalVolume       float64
	AverageDuration   time.Duration
	WorkoutsLast7Days int
	WorkoutsLast30Day int
	FavoriteExercises []ExerciseCount
	RecentRecords     []PersonalRecord
}

// ExerciseCount pairs an exercise with how many sessions included it.
type ExerciseCount struct {
	Name  string
	Count int
}

// maxRecentRecords caps the record list surfaced in statistics.
const maxRecentRecords = 10

// Aggregate computes totals, windowed counts, the favorite-exercise ranking
// and recent personal-record entries from the session history. The reference
// time is an explicit parameter to keep the function pure. Empty input yields
// an all-zero result, never an error.
func Aggregate(sessions []WorkoutSession, now time.Time) Statistics {
	completed := completedNewestFirst(sessions)

	stats := Statistics{
		TotalWorkouts:     len(completed),
		WorkoutsLast7Days: sessionsWithinDays(completed, now, 7),
		WorkoutsLast30Day: sessionsWithinDays(completed, now, 30),
	}

	// Favorite ranking counts occurrences per exercise name; ties keep
	// first-seen order, so iterate oldest first for a stable ranking.
	counts := map[string]int{}
	firstSeen := map[string]int{}
	var seen int

	for i := len(completed) - 1; i >= 0; i-- {
		s := completed[i]
		stats.TotalDuration += s.Duration
		stats.TotalVolume += s.Volume()
		stats.TotalSets += s.CompletedSets()

		for _, ex := range s.Exercises {
			if _, ok := firstSeen[ex.Name]; !ok {
				firstSeen[ex.Name] = seen
				seen++
			}
			counts[ex.Name]++

			for _, set := range ex.Sets {
				if set.Completed {
					stats.TotalReps += ptr.Deref(set.ActualReps, 0)
				}
				if set.PersonalRecord {
					stats.RecentRecords = append(stats.RecentRecords, recordFromSet(ex, set, s))
				}
			}
		}
	}

	if stats.TotalWorkouts > 0 {
		stats.AverageDuration = stats.TotalDuration / time.Duration(stats.TotalWorkouts)
	}

	stats.FavoriteExercises = make([]ExerciseCount, 0, len(counts))
	for name, count := range counts {
		stats.FavoriteExercises = append(stats.FavoriteExercises, ExerciseCount{Name: name, Count: count})
	}
	sort.SliceStable(stats.FavoriteExercises, func(i, j int) bool {
		a, b := stats.FavoriteExercises[i], stats.FavoriteExercises[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return firstSeen[a.Name] < firstSeen[b.Name]
	})

	sort.SliceStable(stats.RecentRecords, func(i, j int) bool {
		return stats.RecentRecords[i].AchievedAt.After(stats.RecentRecords[j].AchievedAt)
	})
	if len(stats.RecentRecords) > maxRecentRecords {
		stats.RecentRecords = stats.RecentRecords[:maxRecentRecords]
	}

	return stats
}

// recordFromSet turns a set flagged as a personal record into a record entry.
// Weight takes precedence over reps over duration when choosing the metric.
func recordFromSet(ex ExerciseLog, set SetRecord, s WorkoutSession) PersonalRecord {
	record := PersonalRecord{
		Exercise:   ex.Name,
		AchievedAt: s.CompletedAt,
	}
	switch {
	case set.ActualWeightKg != nil:
		record.Metric = MetricWeight
		record.Value = *set.ActualWeightKg
	case set.ActualReps != nil:
		record.Metric = MetricReps
		record.Value = float64(*set.ActualReps)
	case set.ActualDuration != nil:
		record.Metric = MetricDuration
		record.Value = set.ActualDuration.Seconds()
	}
	return record
}
