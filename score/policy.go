package score

import (
	"github.com/wellbeat/wellness-api/schema"
)

// FactorWeight is one factor's influence on a composite score. Sign
// states which side of the baseline worsens the composite: +1 means
// above-baseline raises the score, -1 means below-baseline raises it.
type FactorWeight struct {
	Weight float64
	Sign   float64
}

// ScoringPolicy carries every calibration constant the engine uses.
// Policies are versioned so a persisted score can always be traced back
// to the constants that produced it. The zero value is not usable; start
// from DefaultScoringPolicy and override through configuration.
type ScoringPolicy struct {
	Version string

	BurnoutWeights   map[schema.FactorKind]FactorWeight
	ReadinessWeights map[schema.FactorKind]FactorWeight

	// DeviationClip bounds each factor's normalized deviation so a
	// single outlier day cannot dominate the composite.
	DeviationClip float64

	// NeutralScore is returned when the sample and baseline share no
	// factor at all.
	NeutralScore float64

	HighThreshold  float64
	LowThreshold   float64
	HysteresisBand float64

	BaselineWindowDays int
	MinBaselineSamples int

	ForecastHorizonDays   int
	MinForecastPoints     int
	UrgencyWindowDays     int
	SlopeThreshold        float64
	ConfidenceDecayPerDay float64

	WeekdayMargin    float64
	MinWeekdayCycles int
	AnomalySigma     float64
	AnomalyWindow    int
	TrendWindowDays  int

	MinAggregateSize int
	TrendWeeks       int
}

// DefaultScoringPolicy is calibration v1. The weights are a policy
// choice, not a derived truth; changing any of them must bump Version.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		Version: "v1",

		BurnoutWeights: map[schema.FactorKind]FactorWeight{
			schema.FactorSleepHours:     {Weight: 20, Sign: -1},
			schema.FactorSleepQuality:   {Weight: 10, Sign: -1},
			schema.FactorHRV:            {Weight: 20, Sign: -1},
			schema.FactorRestingHR:      {Weight: 10, Sign: 1},
			schema.FactorExercise:       {Weight: 5, Sign: -1},
			schema.FactorDeepSleep:      {Weight: 5, Sign: -1},
			schema.FactorHoursWorked:    {Weight: 10, Sign: 1},
			schema.FactorOvertime:       {Weight: 15, Sign: 1},
			schema.FactorMeetingLoad:    {Weight: 5, Sign: 1},
			schema.FactorTaskCompletion: {Weight: 5, Sign: -1},
		},
		ReadinessWeights: map[schema.FactorKind]FactorWeight{
			schema.FactorSleepHours:     {Weight: 20, Sign: 1},
			schema.FactorSleepQuality:   {Weight: 10, Sign: 1},
			schema.FactorHRV:            {Weight: 20, Sign: 1},
			schema.FactorRestingHR:      {Weight: 10, Sign: -1},
			schema.FactorExercise:       {Weight: 15, Sign: 1},
			schema.FactorDeepSleep:      {Weight: 10, Sign: 1},
			schema.FactorHoursWorked:    {Weight: 5, Sign: -1},
			schema.FactorOvertime:       {Weight: 15, Sign: -1},
			schema.FactorMeetingLoad:    {Weight: 5, Sign: -1},
			schema.FactorTaskCompletion: {Weight: 5, Sign: 1},
		},

		DeviationClip: 1.0,
		NeutralScore:  50,

		HighThreshold:  70,
		LowThreshold:   40,
		HysteresisBand: 5,

		BaselineWindowDays: 30,
		MinBaselineSamples: 7,

		ForecastHorizonDays:   7,
		MinForecastPoints:     3,
		UrgencyWindowDays:     3,
		SlopeThreshold:        0.5,
		ConfidenceDecayPerDay: 5,

		WeekdayMargin:    8,
		MinWeekdayCycles: 3,
		AnomalySigma:     2.0,
		AnomalyWindow:    7,
		TrendWindowDays:  21,

		MinAggregateSize: 5,
		TrendWeeks:       4,
	}
}
