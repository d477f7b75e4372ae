package analysis

import (
	"fmt"
	"sort"
	"time"
)

// Time-of-day bucket names. Morning ends at noon, afternoon at five.
const (
	timeMorning   = "morning"
	timeAfternoon = "afternoon"
	timeEvening   = "evening"
)

// maxFrequencyWeeks bounds how far back the weekly-count series reaches.
const maxFrequencyWeeks = 12

// FrequencyAnalysis summarizes when and how often the athlete trains.
type FrequencyAnalysis struct {
	// TopDays are the up-to-three most common training weekdays, most
	// common first.
	TopDays []time.Weekday
	// TopTimes are the up-to-two most common time-of-day buckets.
	TopTimes []string
	// WeeklyCounts are sessions per week, oldest week first, ending with
	// the week containing now.
	WeeklyCounts  []int
	AverageWeekly float64
	// Consistency is 1 minus the variance-to-mean ratio of the weekly
	// counts, floored at 0. Identical weeks score 1.
	Consistency    float64
	Recommendation string
}

// AnalyzeFrequency buckets completed sessions by weekday and time of day,
// builds the weekly session-count series and rates its consistency. The
// recommendation text reacts to too little training, too much, or an erratic
// schedule, in that order.
func AnalyzeFrequency(sessions []WorkoutSession, now time.Time, cfg Thresholds) FrequencyAnalysis {
	completed := completedNewestFirst(sessions)
	if len(completed) == 0 {
		return FrequencyAnalysis{
			Recommendation: "No completed workouts yet. Start with two to three sessions per week.",
		}
	}

	dayCounts := map[time.Weekday]int{}
	timeCounts := map[string]int{}
	for _, s := range completed {
		dayCounts[s.StartedAt.Weekday()]++
		timeCounts[timeOfDay(s.StartedAt)]++
	}

	weekly := weeklyCounts(completed, now)
	avg := mean(floats(weekly))

	consistency := 0.0
	if avg > 0 {
		consistency = clamp(1-variance(floats(weekly))/avg, 0, 1)
	}

	analysis := FrequencyAnalysis{
		TopDays:       topWeekdays(dayCounts, 3),
		TopTimes:      topTimes(timeCounts, 2),
		WeeklyCounts:  weekly,
		AverageWeekly: avg,
		Consistency:   consistency,
	}

	switch {
	case avg < cfg.FrequencyLowPerWeek:
		analysis.Recommendation = fmt.Sprintf(
			"Training averages %.1f sessions per week. Aim for at least %.0f to keep progressing.",
			avg, cfg.FrequencyLowPerWeek)
	case avg > cfg.FrequencyHighPerWeek:
		analysis.Recommendation = fmt.Sprintf(
			"Training averages %.1f sessions per week. That leaves little room for recovery; plan rest days.",
			avg)
	case consistency < cfg.ConsistencyLow:
		analysis.Recommendation = "Weekly volume swings a lot. A steadier schedule usually beats occasional big weeks."
	default:
		analysis.Recommendation = "Training frequency and consistency look good. Keep the current rhythm."
	}
	return analysis
}

func timeOfDay(t time.Time) string {
	switch {
	case t.Hour() < 12:
		return timeMorning
	case t.Hour() < 17:
		return timeAfternoon
	default:
		return timeEvening
	}
}

// weeklyCounts walks seven-day buckets back from now until the oldest
// completed session, capped at maxFrequencyWeeks, and returns the counts
// oldest week first.
func weeklyCounts(completed []WorkoutSession, now time.Time) []int {
	oldest := completed[len(completed)-1].CompletedAt
	weeks := int(now.Sub(oldest).Hours()/(24*7)) + 1
	if weeks < 1 {
		weeks = 1
	}
	if weeks > maxFrequencyWeeks {
		weeks = maxFrequencyWeeks
	}

	counts := make([]int, weeks)
	for _, s := range completed {
		age := int(now.Sub(s.CompletedAt).Hours() / (24 * 7))
		if age < 0 || age >= weeks {
			continue
		}
		counts[weeks-1-age]++
	}
	return counts
}

func topWeekdays(counts map[time.Weekday]int, limit int) []time.Weekday {
	days := make([]time.Weekday, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	// Ties resolve in weekday order so the ranking is deterministic.
	sort.Slice(days, func(i, j int) bool {
		if counts[days[i]] != counts[days[j]] {
			return counts[days[i]] > counts[days[j]]
		}
		return days[i] < days[j]
	})
	if len(days) > limit {
		days = days[:limit]
	}
	return days
}

func topTimes(counts map[string]int, limit int) []string {
	order := []string{timeMorning, timeAfternoon, timeEvening}
	buckets := make([]string, 0, len(counts))
	for _, b := range order {
		if counts[b] > 0 {
			buckets = append(buckets, b)
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return counts[buckets[i]] > counts[buckets[j]]
	})
	if len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}

func floats(ints []int) []float64 {
	out := make([]float64, len(ints))
	for i, v := range ints {
		out[i] = float64(v)
	}
	return out
}
