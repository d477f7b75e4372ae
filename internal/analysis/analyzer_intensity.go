package analysis

// maxSessionIntensity caps the per-session intensity scale.
const maxSessionIntensity = 10

// IntensityAnalysis summarizes how hard recent sessions have been.
type IntensityAnalysis struct {
	// CurrentIntensity is the mean intensity of the last five sessions on
	// a 0-10 scale.
	CurrentIntensity float64
	Trend            Trend
	RecoveryNeeded   bool
	Recommendation   string
}

// sessionIntensity rates one session on a 0-10 scale from its volume and set
// density per minute. Sessions without a usable duration rate 0.
func sessionIntensity(s WorkoutSession) float64 {
	minutes := s.Duration.Minutes()
	if minutes <= 0 {
		return 0
	}
	volumePerMinute := s.Volume() / minutes
	setsPerMinute := float64(s.CompletedSets()) / minutes
	return clamp(volumePerMinute/100+setsPerMinute*2, 0, maxSessionIntensity)
}

// AnalyzeIntensity compares the mean intensity of the last five sessions
// against the five before them, with a relative dead-band around stable, and
// flags when the recent block is hard enough to warrant extra recovery.
func AnalyzeIntensity(sessions []WorkoutSession, cfg Thresholds) IntensityAnalysis {
	completed := completedNewestFirst(sessions)

	var recent, previous []float64
	for i, s := range completed {
		switch {
		case i < 5:
			recent = append(recent, sessionIntensity(s))
		case i < 10:
			previous = append(previous, sessionIntensity(s))
		}
	}

	recentMean := mean(recent)

	trend := TrendStable
	if previousMean := mean(previous); previousMean > 0 {
		change := (recentMean - previousMean) / previousMean
		switch {
		case change > cfg.IntensityDeadBand:
			trend = TrendIncreasing
		case change < -cfg.IntensityDeadBand:
			trend = TrendDecreasing
		}
	}

	var hardSessions int
	for _, v := range recent {
		if v > cfg.IntensityHighSession {
			hardSessions++
		}
	}
	recoveryNeeded := hardSessions >= 3 || recentMean > cfg.IntensityOverloadAvg

	analysis := IntensityAnalysis{
		CurrentIntensity: recentMean,
		Trend:            trend,
		RecoveryNeeded:   recoveryNeeded,
	}

	switch {
	case recoveryNeeded:
		analysis.Recommendation = "Recent sessions have been very intense. Insert an easy session or a rest day before the next hard one."
	case trend == TrendIncreasing:
		analysis.Recommendation = "Intensity is climbing. Keep an eye on recovery as the load builds."
	case trend == TrendDecreasing:
		analysis.Recommendation = "Intensity has dropped against the previous block. Raise the load if that was not planned."
	default:
		analysis.Recommendation = "Intensity is steady and sustainable."
	}
	return analysis
}
