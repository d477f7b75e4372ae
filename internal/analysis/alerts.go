package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var alertRank = map[AlertType]int{
	AlertCritical: 0,
	AlertWarning:  1,
	AlertInfo:     2,
}

// GenerateAlerts derives user-facing alerts from the indicator set and the
// detected patterns. Alerts are rebuilt from scratch on every run with
// deterministic identifiers, stamped with the supplied reference time and
// sorted critical first. The sort is stable so equal-urgency alerts keep
// their generation order.
func GenerateAlerts(indicators []FatigueIndicator, patterns []FatiguePattern, now time.Time, cfg Thresholds) []FatigueAlert {
	var alerts []FatigueAlert

	var criticalNames []string
	for _, ind := range indicators {
		if ind.Status == StatusCritical {
			criticalNames = append(criticalNames, ind.Name)
		}
	}
	if len(criticalNames) > 0 {
		alerts = append(alerts, FatigueAlert{
			ID:    "critical_fatigue",
			Type:  AlertCritical,
			Title: "Critical Fatigue Detected",
			Message: fmt.Sprintf("%d fatigue indicator(s) at critical level: %s. Training through this risks injury and regression.",
				len(criticalNames), strings.Join(criticalNames, ", ")),
			CreatedAt:      now,
			ActionRequired: true,
			Recommendations: []string{
				"Take at least 2 full rest days before the next session",
				"Cut training volume by half for the rest of the week",
				"Prioritize sleep and nutrition until indicators recover",
			},
		})
	}

	for _, p := range patterns {
		switch p.Type {
		case PatternOvertraining:
			alerts = append(alerts, FatigueAlert{
				ID:    "overtraining_pattern",
				Type:  AlertWarning,
				Title: "Overtraining Pattern",
				Message: fmt.Sprintf("Indicators match an overtraining pattern over roughly %d days (%.0f%% confidence).",
					p.DurationDays, p.Confidence),
				CreatedAt:      now,
				ActionRequired: true,
				Recommendations: []string{
					"Plan a full recovery week at reduced intensity",
					"Avoid personal-record attempts until the pattern clears",
					"Track how the affected muscle groups respond to the reduced load",
				},
			})
		case PatternDeloadNeeded:
			alerts = append(alerts, FatigueAlert{
				ID:    "deload_recommended",
				Type:  AlertInfo,
				Title: "Deload Week Recommended",
				Message: fmt.Sprintf("Sustained high volume with elevated fatigue suggests a deload (%.0f%% confidence).",
					p.Confidence),
				CreatedAt:      now,
				ActionRequired: false,
				Recommendations: []string{
					"Schedule a deload week at 50-60% of normal volume",
					"Keep movement patterns but drop the weight",
					"Resume normal loading once indicators return to low",
				},
			})
		}
	}

	for _, ind := range indicators {
		if ind.ID == "performance_decline" && ind.Value > cfg.DeclineAlertValue {
			alerts = append(alerts, FatigueAlert{
				ID:    "performance_decline",
				Type:  AlertWarning,
				Title: "Performance Declining",
				Message: fmt.Sprintf("Work rate has dropped %.0f%% against the previous block of sessions.",
					ind.Value),
				CreatedAt:      now,
				ActionRequired: false,
				Recommendations: []string{
					"Add an extra rest day between hard sessions",
					"Check that sleep and nutrition match the training load",
				},
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alertRank[alerts[i].Type] < alertRank[alerts[j].Type]
	})
	return alerts
}
