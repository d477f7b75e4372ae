package analysis

import (
	"sort"
	"time"
)

// OverallProgress rates progress across all tracked exercises.
type OverallProgress string

const (
	OverallExcellent      OverallProgress = "excellent"
	OverallGood           OverallProgress = "good"
	OverallModerate       OverallProgress = "moderate"
	OverallNeedsAttention OverallProgress = "needs_attention"
)

// progressConfidenceRecords is the record count at which a per-exercise trend
// reaches full confidence.
const progressConfidenceRecords = 6

// ProgressAnalysis is the outcome of progress-trend and plateau detection
// over the personal-record log.
type ProgressAnalysis struct {
	Trends           []ProgressTrend
	PlateauExercises []string
	Overall          OverallProgress
}

// AnalyzeProgress groups personal records by exercise and classifies each
// exercise with at least two records as improving, plateauing or declining by
// comparing the best of its latest records against the best of the block
// before them. Independently of the trend, an exercise is flagged as
// plateaued when nothing in the trailing plateau window beats the best it had
// already reached before that window.
func AnalyzeProgress(records []PersonalRecord, now time.Time, cfg Thresholds) ProgressAnalysis {
	byExercise := map[string][]PersonalRecord{}
	for _, r := range records {
		byExercise[r.Exercise] = append(byExercise[r.Exercise], r)
	}

	names := make([]string, 0, len(byExercise))
	for name := range byExercise {
		names = append(names, name)
	}
	sort.Strings(names)

	analysis := ProgressAnalysis{Overall: OverallModerate}
	var improving, plateauing int

	for _, name := range names {
		recs := byExercise[name]
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].AchievedAt.Before(recs[j].AchievedAt)
		})
		if len(recs) < 2 {
			continue
		}

		analysis.Trends = append(analysis.Trends, exerciseTrend(name, recs, cfg))
		switch analysis.Trends[len(analysis.Trends)-1].State {
		case ProgressImproving:
			improving++
		case ProgressPlateauing:
			plateauing++
		}

		if plateaued(recs, now, cfg) {
			analysis.PlateauExercises = append(analysis.PlateauExercises, name)
		}
	}

	if n := len(analysis.Trends); n > 0 {
		improvingShare := float64(improving) / float64(n)
		plateauShare := float64(plateauing) / float64(n)
		switch {
		case improvingShare >= 0.5:
			analysis.Overall = OverallExcellent
		case improvingShare >= 0.25:
			analysis.Overall = OverallGood
		case plateauShare >= 0.5:
			analysis.Overall = OverallNeedsAttention
		default:
			analysis.Overall = OverallModerate
		}
	}
	return analysis
}

// exerciseTrend compares the best of the latest up-to-three records against
// the best of the block before them. With only two records the first serves
// as the baseline.
func exerciseTrend(name string, recs []PersonalRecord, cfg Thresholds) ProgressTrend {
	split := len(recs) - 3
	if split < 1 {
		split = 1
	}
	baseline := bestValue(recs[:split])
	latest := bestValue(recs[split:])

	var changeRate float64
	if baseline > 0 {
		changeRate = (latest - baseline) / baseline * 100
	}

	state := ProgressPlateauing
	switch {
	case changeRate > cfg.ProgressBandPercent:
		state = ProgressImproving
	case changeRate < -cfg.ProgressBandPercent:
		state = ProgressDeclining
	}

	confidence := float64(len(recs)) / progressConfidenceRecords
	if confidence > 1 {
		confidence = 1
	}

	var recommendation string
	switch state {
	case ProgressImproving:
		recommendation = "Progress is on track. Keep the current progression."
	case ProgressDeclining:
		recommendation = "Records are slipping. Check recovery and technique before adding load."
	default:
		recommendation = "Progress has stalled. Vary rep ranges or swap in an exercise variation."
	}

	return ProgressTrend{
		Exercise:       name,
		State:          state,
		ChangeRate:     changeRate,
		Confidence:     confidence,
		Recommendation: recommendation,
	}
}

// plateaued reports whether no record inside the trailing plateau window
// exceeds the best achieved before it. Exercises whose records all fall
// inside the window have no prior best and cannot plateau yet.
func plateaued(recs []PersonalRecord, now time.Time, cfg Thresholds) bool {
	cutoff := now.AddDate(0, 0, -cfg.PlateauWindowDays)

	var priorBest float64
	var hasPrior bool
	for _, r := range recs {
		if !r.AchievedAt.After(cutoff) {
			hasPrior = true
			if r.Value > priorBest {
				priorBest = r.Value
			}
		}
	}
	if !hasPrior {
		return false
	}

	for _, r := range recs {
		if r.AchievedAt.After(cutoff) && r.Value > priorBest {
			return false
		}
	}
	return true
}

func bestValue(recs []PersonalRecord) float64 {
	var best float64
	for _, r := range recs {
		if r.Value > best {
			best = r.Value
		}
	}
	return best
}
