package schema

import "time"

const (
	PatternCollection = "detectedPatterns"
)

type PatternKind string

const (
	PatternCorrelation PatternKind = "correlation"
	PatternTrend       PatternKind = "trend"
	PatternAnomaly     PatternKind = "anomaly"
)

type PatternImpact string

const (
	ImpactPositive PatternImpact = "positive"
	ImpactNegative PatternImpact = "negative"
	ImpactNeutral  PatternImpact = "neutral"
)

type PatternStatus string

const (
	PatternOpen         PatternStatus = "open"
	PatternAcknowledged PatternStatus = "acknowledged"
	PatternDismissed    PatternStatus = "dismissed"
)

// DetectedPattern is a recurring structure found in an employee's score
// history. DedupeKey is deterministic for a given structure (kind plus
// the cyclical key or date it describes) so re-running detection updates
// the open pattern instead of duplicating it. The pattern stays until
// the employee or manager acknowledges or dismisses it.
type DetectedPattern struct {
	ID          string        `json:"id" bson:"_id"`
	EmployeeID  string        `json:"employee_id" bson:"employee_id"`
	Kind        PatternKind   `json:"kind" bson:"kind"`
	DedupeKey   string        `json:"-" bson:"dedupe_key"`
	Description string        `json:"description" bson:"description"`
	Confidence  float64       `json:"confidence" bson:"confidence"`
	Impact      PatternImpact `json:"impact" bson:"impact"`
	Status      PatternStatus `json:"status" bson:"status"`
	DetectedAt  time.Time     `json:"detected_at" bson:"detected_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
}
