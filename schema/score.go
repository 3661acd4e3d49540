package schema

// FactorKind is the closed set of scoring factors. Explanations carry
// only these kinds so a typo in a factor name fails at compile time, not
// silently at runtime.
type FactorKind string

const (
	FactorSleepHours     FactorKind = "sleep_hours"
	FactorSleepQuality   FactorKind = "sleep_quality"
	FactorHRV            FactorKind = "hrv"
	FactorRestingHR      FactorKind = "resting_hr"
	FactorExercise       FactorKind = "exercise"
	FactorDeepSleep      FactorKind = "deep_sleep"
	FactorHoursWorked    FactorKind = "hours_worked"
	FactorOvertime       FactorKind = "overtime"
	FactorMeetingLoad    FactorKind = "meeting_load"
	FactorTaskCompletion FactorKind = "task_completion"
)

// AllFactors lists every factor in a fixed evaluation order so scoring
// is deterministic regardless of map iteration.
var AllFactors = []FactorKind{
	FactorSleepHours,
	FactorSleepQuality,
	FactorHRV,
	FactorRestingHR,
	FactorExercise,
	FactorDeepSleep,
	FactorHoursWorked,
	FactorOvertime,
	FactorMeetingLoad,
	FactorTaskCompletion,
}

// FactorContribution explains one factor's share of a composite score.
// Contribution is the signed weighted term before rescaling, so summing
// contributions reconstructs the composite under the documented mapping.
type FactorContribution struct {
	Factor       FactorKind `json:"factor" bson:"factor"`
	RawDeviation float64    `json:"raw_deviation" bson:"raw_deviation"`
	Weight       float64    `json:"weight" bson:"weight"`
	Contribution float64    `json:"contribution" bson:"contribution"`
}

// ScoreResult is one employee's scores for one day with the per-factor
// explanation for each composite.
type ScoreResult struct {
	EmployeeID     string  `json:"employee_id" bson:"employee_id"`
	Date           string  `json:"date" bson:"date"`
	BurnoutScore   float64 `json:"burnout_score" bson:"burnout_score"`
	ReadinessScore float64 `json:"readiness_score" bson:"readiness_score"`

	BurnoutFactors   []FactorContribution `json:"burnout_factors" bson:"burnout_factors"`
	ReadinessFactors []FactorContribution `json:"readiness_factors" bson:"readiness_factors"`

	LowConfidence bool   `json:"low_confidence" bson:"low_confidence"`
	PolicyVersion string `json:"policy_version" bson:"policy_version"`
}
