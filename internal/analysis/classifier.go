package analysis

import "sort"

// patternWindow is how many recent sessions are inspected when attributing a
// detected pattern to muscle groups.
const patternWindow = 7

// deloadVolumeWindow is how many recent sessions the deload volume average
// covers.
const deloadVolumeWindow = 14

// ClassifyPatterns inspects the indicator set and recent history and returns
// the detected training-state patterns. An empty result means normal training.
// Several patterns can hold at once (overtraining implies its indicators also
// satisfy overreaching); callers get all of them and rank by severity
// themselves.
func ClassifyPatterns(indicators []FatigueIndicator, sessions []WorkoutSession, cfg Thresholds) []FatiguePattern {
	var moderateOrAbove, highOrAbove, critical int
	for _, ind := range indicators {
		switch ind.Status {
		case StatusCritical:
			critical++
			highOrAbove++
			moderateOrAbove++
		case StatusHigh:
			highOrAbove++
			moderateOrAbove++
		case StatusModerate:
			moderateOrAbove++
		}
	}

	affected := affectedMuscleGroups(sessions, cfg)
	var patterns []FatiguePattern

	if highOrAbove >= cfg.OverreachingMinElevated {
		severity := SeverityModerate
		if highOrAbove >= cfg.OverreachingSevereCount {
			severity = SeveritySevere
		}
		patterns = append(patterns, FatiguePattern{
			Type:         PatternOverreaching,
			Confidence:   clamp(float64(highOrAbove)*25, 0, 100),
			DurationDays: 7,
			Severity:     severity,
			MuscleGroups: affected,
		})
	}

	if critical >= cfg.OvertrainingMinCritical ||
		(critical >= 1 && highOrAbove-critical >= cfg.OvertrainingMinHighPaired) {
		severity := SeverityModerate
		if critical >= cfg.OvertrainingSevereCritical {
			severity = SeveritySevere
		}
		patterns = append(patterns, FatiguePattern{
			Type:         PatternOvertraining,
			Confidence:   clamp(float64(critical)*40+float64(highOrAbove-critical)*20, 0, 100),
			DurationDays: 14,
			Severity:     severity,
			MuscleGroups: affected,
		})
	}

	if moderateOrAbove >= cfg.DeloadMinElevated && averageRecentVolume(sessions) > cfg.DeloadVolume {
		patterns = append(patterns, FatiguePattern{
			Type:         PatternDeloadNeeded,
			Confidence:   clamp(float64(moderateOrAbove)*20, 0, 100),
			DurationDays: 7,
			Severity:     SeverityMild,
			MuscleGroups: affected,
		})
	}

	return patterns
}

// averageRecentVolume is the mean session volume over the last
// deloadVolumeWindow completed sessions.
func averageRecentVolume(sessions []WorkoutSession) float64 {
	completed := completedNewestFirst(sessions)
	if len(completed) > deloadVolumeWindow {
		completed = completed[:deloadVolumeWindow]
	}
	if len(completed) == 0 {
		return 0
	}
	var total float64
	for _, s := range completed {
		total += s.Volume()
	}
	return total / float64(len(completed))
}

// affectedMuscleGroups returns the groups trained in more than
// cfg.AffectedGroupShare of the last patternWindow sessions, sorted for
// deterministic output. Both primary and secondary involvement counts.
func affectedMuscleGroups(sessions []WorkoutSession, cfg Thresholds) []string {
	completed := completedNewestFirst(sessions)
	if len(completed) > patternWindow {
		completed = completed[:patternWindow]
	}
	if len(completed) == 0 {
		return nil
	}

	counts := map[string]int{}
	for _, s := range completed {
		seen := map[string]bool{}
		for _, ex := range s.Exercises {
			if ex.PrimaryMuscleGroup != "" {
				seen[ex.PrimaryMuscleGroup] = true
			}
			for _, g := range ex.SecondaryMuscleGroups {
				seen[g] = true
			}
		}
		for g := range seen {
			counts[g]++
		}
	}

	threshold := cfg.AffectedGroupShare * float64(len(completed))
	var affected []string
	for g, n := range counts {
		if float64(n) > threshold {
			affected = append(affected, g)
		}
	}
	sort.Strings(affected)
	return affected
}
