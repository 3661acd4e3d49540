package score

import (
	"math"

	"github.com/wellbeat/wellness-api/schema"
)

// linearFit runs ordinary least squares of values against their index
// and returns slope, intercept and the residual standard deviation.
func linearFit(values []float64) (float64, float64, float64) {
	n := float64(len(values))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0, sumY / n, 0
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	var residualSq float64
	for i, y := range values {
		predicted := intercept + slope*float64(i)
		residualSq += (y - predicted) * (y - predicted)
	}

	return slope, intercept, math.Sqrt(residualSq / n)
}

// ClassifyTrend labels a slope worsening, improving or stable. Slopes
// below the policy's minimum magnitude are stable so day-to-day noise
// is never reported as a trend.
func ClassifyTrend(slope float64, policy ScoringPolicy) schema.TrendDirection {
	switch {
	case slope >= policy.SlopeThreshold:
		return schema.TrendWorsening
	case slope <= -policy.SlopeThreshold:
		return schema.TrendImproving
	default:
		return schema.TrendStable
	}
}

// ForecastScores projects an employee's burnout trajectory forward from
// their recent zone-state history, oldest first. Fewer than the policy
// minimum of points yields the unavailable variant rather than an error,
// since sparse history is an expected condition. Confidence starts from
// the fit quality (more residual scatter or fewer points lowers it) and
// decays monotonically with the forecast offset. Predicted zones come
// from raw thresholds; hysteresis applies only to persisted states.
func ForecastScores(history []schema.ZoneState, policy ScoringPolicy) schema.Forecast {
	forecast := schema.Forecast{
		Direction: schema.TrendStable,
	}
	if len(history) > 0 {
		forecast.EmployeeID = history[0].EmployeeID
	}

	if len(history) < policy.MinForecastPoints {
		forecast.Reason = schema.ForecastUnavailableReason
		return forecast
	}

	values := make([]float64, len(history))
	for i, state := range history {
		values[i] = state.BurnoutScore
	}

	slope, intercept, residual := linearFit(values)

	forecast.Available = true
	forecast.Slope = slope
	forecast.Direction = ClassifyTrend(slope, policy)

	base := 95 - 5*residual - 30/float64(len(values))
	lastIndex := float64(len(values) - 1)

	for d := 1; d <= policy.ForecastHorizonDays; d++ {
		predicted := clamp(intercept+slope*(lastIndex+float64(d)), 0, 100)
		zone := classifyRaw(predicted, policy)

		point := schema.ForecastPoint{
			DayOffset:      d,
			PredictedScore: predicted,
			PredictedZone:  zone,
			Confidence:     clamp(base-policy.ConfidenceDecayPerDay*float64(d), 0, 100),
		}
		forecast.Points = append(forecast.Points, point)

		if zone == schema.ZoneRed && forecast.DaysUntilRed == nil {
			day := d
			forecast.DaysUntilRed = &day
		}
	}

	currentZone := history[len(history)-1].Zone
	if forecast.DaysUntilRed != nil && *forecast.DaysUntilRed <= policy.UrgencyWindowDays && currentZone != schema.ZoneRed {
		forecast.RedZoneWarning = redZoneWarning(*forecast.DaysUntilRed)
	}

	return forecast
}
