package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds collects every tunable constant used by the scoring and
// classification logic so the numbers can be adjusted and tested without
// touching the formulas.
type Thresholds struct {
	// Status breakpoints mapping an indicator value to low/moderate/high/critical.
	StatusModerate float64 `yaml:"status_moderate"`
	StatusHigh     float64 `yaml:"status_high"`
	StatusCritical float64 `yaml:"status_critical"`

	// IndicatorAdvice switches an indicator's recommendation text between the
	// maintenance and the intervention variant.
	IndicatorAdvice float64 `yaml:"indicator_advice"`

	// Pattern triggers.
	OverreachingMinElevated    int     `yaml:"overreaching_min_elevated"`
	OverreachingSevereCount    int     `yaml:"overreaching_severe_count"`
	OvertrainingMinCritical    int     `yaml:"overtraining_min_critical"`
	OvertrainingMinHighPaired  int     `yaml:"overtraining_min_high_paired"`
	OvertrainingSevereCritical int     `yaml:"overtraining_severe_critical"`
	DeloadMinElevated          int     `yaml:"deload_min_elevated"`
	DeloadVolume               float64 `yaml:"deload_volume"`
	AffectedGroupShare         float64 `yaml:"affected_group_share"`

	// Alert triggers.
	DeclineAlertValue float64 `yaml:"decline_alert_value"`

	// Muscle-group balance.
	AttentionIdleDays     int `yaml:"attention_idle_days"`
	AttentionMinFrequency int `yaml:"attention_min_frequency"`

	// Frequency analysis.
	FrequencyLowPerWeek  float64 `yaml:"frequency_low_per_week"`
	FrequencyHighPerWeek float64 `yaml:"frequency_high_per_week"`
	ConsistencyLow       float64 `yaml:"consistency_low"`

	// Intensity analysis.
	IntensityHighSession float64 `yaml:"intensity_high_session"`
	IntensityOverloadAvg float64 `yaml:"intensity_overload_avg"`
	IntensityDeadBand    float64 `yaml:"intensity_dead_band"`

	// Progress analysis.
	ProgressBandPercent float64 `yaml:"progress_band_percent"`
	PlateauWindowDays   int     `yaml:"plateau_window_days"`

	// Recommendation composer.
	MaxRecommendations int `yaml:"max_recommendations"`
}

// DefaultThresholds returns the values the original scoring shipped with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StatusModerate:             25,
		StatusHigh:                 50,
		StatusCritical:             75,
		IndicatorAdvice:            65,
		OverreachingMinElevated:    2,
		OverreachingSevereCount:    3,
		OvertrainingMinCritical:    2,
		OvertrainingMinHighPaired:  2,
		OvertrainingSevereCritical: 3,
		DeloadMinElevated:          3,
		DeloadVolume:               1500,
		AffectedGroupShare:         0.5,
		DeclineAlertValue:          70,
		AttentionIdleDays:          7,
		AttentionMinFrequency:      2,
		FrequencyLowPerWeek:        2,
		FrequencyHighPerWeek:       6,
		ConsistencyLow:             0.7,
		IntensityHighSession:       7,
		IntensityOverloadAvg:       8,
		IntensityDeadBand:          0.10,
		ProgressBandPercent:        5,
		PlateauWindowDays:          28,
		MaxRecommendations:         5,
	}
}

// LoadThresholds reads threshold overrides from a YAML file on top of the
// defaults, so a partial file only tunes the keys it names.
func LoadThresholds(path string) (Thresholds, error) {
	cfg := DefaultThresholds()

	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("reading thresholds file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Thresholds{}, fmt.Errorf("parsing thresholds file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Thresholds{}, fmt.Errorf("thresholds validation: %w", err)
	}
	return cfg, nil
}

func (t Thresholds) validate() error {
	if !(t.StatusModerate < t.StatusHigh && t.StatusHigh < t.StatusCritical) {
		return fmt.Errorf("status breakpoints must be increasing: %v < %v < %v",
			t.StatusModerate, t.StatusHigh, t.StatusCritical)
	}
	if t.MaxRecommendations < 1 {
		return fmt.Errorf("max_recommendations must be positive, got %d", t.MaxRecommendations)
	}
	if t.PlateauWindowDays < 1 {
		return fmt.Errorf("plateau_window_days must be positive, got %d", t.PlateauWindowDays)
	}
	return nil
}

// statusFor buckets a 0-100 value using the configured breakpoints.
func (t Thresholds) statusFor(value float64) IndicatorStatus {
	switch {
	case value < t.StatusModerate:
		return StatusLow
	case value < t.StatusHigh:
		return StatusModerate
	case value < t.StatusCritical:
		return StatusHigh
	default:
		return StatusCritical
	}
}
