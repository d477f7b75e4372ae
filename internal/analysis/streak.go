package analysis

import (
	"sort"
	"time"
)

// Streaks reports consecutive-day training streaks.
type Streaks struct {
	Current int
	Longest int
}

// CalculateStreaks reduces the completed sessions to unique calendar dates
// and computes the current and longest consecutive-day streaks.
//
// The current streak walks back one day at a time from today (derived from
// the supplied now). A day without a session breaks the streak, except for
// today itself: a day with no session yet only breaks the streak the
// following day. This one-day grace is deliberate, carried over from the
// source behavior; whether a missed day should really break the streak one
// day late is an open product question.
func CalculateStreaks(sessions []WorkoutSession, now time.Time) Streaks {
	dates := map[time.Time]bool{}
	for _, s := range sessions {
		if s.Completed() {
			dates[civilDate(s.CompletedAt)] = true
		}
	}
	if len(dates) == 0 {
		return Streaks{}
	}

	today := civilDate(now)

	var current int
	for cursor := today; ; cursor = cursor.AddDate(0, 0, -1) {
		if dates[cursor] {
			current++
		} else if !cursor.Equal(today) {
			break
		}
	}

	sorted := make([]time.Time, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return Streaks{Current: current, Longest: longest}
}
