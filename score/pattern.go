package score

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/wellbeat/wellness-api/schema"
)

// DetectPatterns scans an employee's zone-state history, oldest first,
// for recurring structure: day-of-week effects, point anomalies against
// a rolling mean, and sustained multi-week trends. Every pattern carries
// a deterministic dedupe key so the store can keep a single open pattern
// per structure across repeated scans.
func DetectPatterns(history []schema.ZoneState, policy ScoringPolicy) []schema.DetectedPattern {
	patterns := detectWeekdayPatterns(history, policy)
	patterns = append(patterns, detectAnomalies(history, policy)...)
	patterns = append(patterns, detectSustainedTrend(history, policy)...)
	return patterns
}

func detectWeekdayPatterns(history []schema.ZoneState, policy ScoringPolicy) []schema.DetectedPattern {
	if len(history) == 0 {
		return nil
	}

	overall := float64(0)
	parsed := 0
	byWeekday := map[time.Weekday][]float64{}
	for _, state := range history {
		day, err := time.Parse(schema.DateLayout, state.Date)
		if err != nil {
			continue
		}
		overall += state.BurnoutScore
		parsed++
		byWeekday[day.Weekday()] = append(byWeekday[day.Weekday()], state.BurnoutScore)
	}
	if parsed == 0 {
		return nil
	}
	overall /= float64(parsed)

	var patterns []schema.DetectedPattern
	// iterate Sunday..Saturday so output order is stable
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		scores := byWeekday[wd]
		if len(scores) < policy.MinWeekdayCycles {
			continue
		}

		mean := float64(0)
		for _, s := range scores {
			mean += s
		}
		mean /= float64(len(scores))

		delta := mean - overall
		if math.Abs(delta) <= policy.WeekdayMargin {
			continue
		}

		worse := delta > 0
		impact := schema.ImpactPositive
		if worse {
			impact = schema.ImpactNegative
		}

		confidence := clamp(50+5*float64(len(scores))+math.Abs(delta), 0, 95)
		patterns = append(patterns, schema.DetectedPattern{
			EmployeeID:  history[0].EmployeeID,
			Kind:        schema.PatternCorrelation,
			DedupeKey:   fmt.Sprintf("weekday-%s", strings.ToLower(wd.String())),
			Description: weekdayPatternDescription(wd.String(), math.Round(math.Abs(delta)*10)/10, worse),
			Confidence:  confidence,
			Impact:      impact,
			Status:      schema.PatternOpen,
			DetectedAt:  time.Now().UTC(),
		})
	}

	return patterns
}

func detectAnomalies(history []schema.ZoneState, policy ScoringPolicy) []schema.DetectedPattern {
	var patterns []schema.DetectedPattern

	for i := policy.AnomalyWindow; i < len(history); i++ {
		window := history[i-policy.AnomalyWindow : i]

		mean := float64(0)
		for _, state := range window {
			mean += state.BurnoutScore
		}
		mean /= float64(len(window))

		variance := float64(0)
		for _, state := range window {
			variance += (state.BurnoutScore - mean) * (state.BurnoutScore - mean)
		}
		stddev := math.Sqrt(variance / float64(len(window)))
		if stddev == 0 {
			continue
		}

		deviation := history[i].BurnoutScore - mean
		if math.Abs(deviation) <= policy.AnomalySigma*stddev {
			continue
		}

		above := deviation > 0
		impact := schema.ImpactPositive
		if above {
			impact = schema.ImpactNegative
		}

		patterns = append(patterns, schema.DetectedPattern{
			EmployeeID:  history[i].EmployeeID,
			Kind:        schema.PatternAnomaly,
			DedupeKey:   fmt.Sprintf("anomaly-%s", history[i].Date),
			Description: anomalyPatternDescription(history[i].Date, math.Round(history[i].BurnoutScore*10)/10, above),
			Confidence:  clamp(60+10*(math.Abs(deviation)/stddev-policy.AnomalySigma), 0, 95),
			Impact:      impact,
			Status:      schema.PatternOpen,
			DetectedAt:  time.Now().UTC(),
		})
	}

	return patterns
}

func detectSustainedTrend(history []schema.ZoneState, policy ScoringPolicy) []schema.DetectedPattern {
	if len(history) < policy.TrendWindowDays {
		return nil
	}

	window := history[len(history)-policy.TrendWindowDays:]
	values := make([]float64, len(window))
	for i, state := range window {
		values[i] = state.BurnoutScore
	}

	slope, _, residual := linearFit(values)
	direction := ClassifyTrend(slope, policy)
	if direction == schema.TrendStable {
		return nil
	}

	impact := schema.ImpactPositive
	if direction == schema.TrendWorsening {
		impact = schema.ImpactNegative
	}

	return []schema.DetectedPattern{{
		EmployeeID:  window[0].EmployeeID,
		Kind:        schema.PatternTrend,
		DedupeKey:   fmt.Sprintf("trend-%s", direction),
		Description: trendPatternDescription(string(direction), policy.TrendWindowDays),
		Confidence:  clamp(90-5*residual, 0, 95),
		Impact:      impact,
		Status:      schema.PatternOpen,
		DetectedAt:  time.Now().UTC(),
	}}
}
