package score

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellbeat/wellness-api/schema"
)

// historyWithScores builds a chronological zone-state series with the
// given burnout scores, classifying each day with raw thresholds.
func historyWithScores(scores []float64) []schema.ZoneState {
	policy := DefaultScoringPolicy()

	states := make([]schema.ZoneState, len(scores))
	for i, s := range scores {
		states[i] = schema.ZoneState{
			EmployeeID:   "emp-1",
			Date:         fmt.Sprintf("2026-07-%02d", i+1),
			Zone:         classifyRaw(s, policy),
			BurnoutScore: s,
		}
	}
	return states
}

func TestForecastScoresInsufficientHistory(t *testing.T) {
	policy := DefaultScoringPolicy()

	forecast := ForecastScores(historyWithScores([]float64{55, 58}), policy)

	assert.False(t, forecast.Available)
	assert.Equal(t, schema.ForecastUnavailableReason, forecast.Reason)
	assert.Empty(t, forecast.Points)
	assert.Nil(t, forecast.DaysUntilRed)
}

func TestForecastScoresLinearProjection(t *testing.T) {
	policy := DefaultScoringPolicy()

	// a perfect +3/day history: 41..62 over eight days
	scores := []float64{41, 44, 47, 50, 53, 56, 59, 62}
	forecast := ForecastScores(historyWithScores(scores), policy)

	assert.True(t, forecast.Available)
	assert.InDelta(t, 3.0, forecast.Slope, 1e-9)
	assert.Equal(t, schema.TrendWorsening, forecast.Direction)
	assert.Len(t, forecast.Points, policy.ForecastHorizonDays)

	for _, p := range forecast.Points {
		assert.InDelta(t, 62+3*float64(p.DayOffset), p.PredictedScore, 1e-9)
	}

	// 62+3d crosses the red threshold of 70 at d=3
	if assert.NotNil(t, forecast.DaysUntilRed) {
		assert.Equal(t, 3, *forecast.DaysUntilRed)
	}
	assert.NotEmpty(t, forecast.RedZoneWarning)
}

func TestForecastScoresAlreadyRedSkipsWarning(t *testing.T) {
	policy := DefaultScoringPolicy()

	// +3/day from 50 over ten days ends at 77, already red
	scores := make([]float64, 10)
	for i := range scores {
		scores[i] = 50 + 3*float64(i)
	}
	forecast := ForecastScores(historyWithScores(scores), policy)

	if assert.NotNil(t, forecast.DaysUntilRed) {
		assert.Equal(t, 1, *forecast.DaysUntilRed)
	}
	assert.Empty(t, forecast.RedZoneWarning)
}

func TestForecastScoresConfidenceNonIncreasing(t *testing.T) {
	policy := DefaultScoringPolicy()

	forecast := ForecastScores(historyWithScores([]float64{50, 61, 47, 58, 52, 63, 49}), policy)

	for i := 1; i < len(forecast.Points); i++ {
		assert.LessOrEqual(t, forecast.Points[i].Confidence, forecast.Points[i-1].Confidence)
	}
}

func TestForecastScoresScatterLowersConfidence(t *testing.T) {
	policy := DefaultScoringPolicy()

	clean := ForecastScores(historyWithScores([]float64{50, 52, 54, 56, 58, 60, 62}), policy)
	noisy := ForecastScores(historyWithScores([]float64{50, 65, 41, 68, 44, 71, 47}), policy)

	for i := range clean.Points {
		assert.Less(t, noisy.Points[i].Confidence, clean.Points[i].Confidence)
	}
}

func TestForecastScoresClampsPredictions(t *testing.T) {
	policy := DefaultScoringPolicy()

	forecast := ForecastScores(historyWithScores([]float64{70, 80, 90, 95, 99}), policy)

	for _, p := range forecast.Points {
		assert.LessOrEqual(t, p.PredictedScore, 100.0)
		assert.GreaterOrEqual(t, p.PredictedScore, 0.0)
	}
}

func TestForecastScoresFlatHistoryIsStable(t *testing.T) {
	policy := DefaultScoringPolicy()

	forecast := ForecastScores(historyWithScores([]float64{55, 55.2, 54.9, 55.1, 55}), policy)

	assert.Equal(t, schema.TrendStable, forecast.Direction)
	assert.Nil(t, forecast.DaysUntilRed)
	assert.Empty(t, forecast.RedZoneWarning)
}

func TestClassifyTrend(t *testing.T) {
	policy := DefaultScoringPolicy()

	assert.Equal(t, schema.TrendWorsening, ClassifyTrend(1.2, policy))
	assert.Equal(t, schema.TrendImproving, ClassifyTrend(-0.8, policy))
	assert.Equal(t, schema.TrendStable, ClassifyTrend(0.3, policy))
	assert.Equal(t, schema.TrendStable, ClassifyTrend(-0.49, policy))
}
