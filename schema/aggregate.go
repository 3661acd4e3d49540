package schema

// PrivacyStatus tells the caller whether a team rollup was computed or
// withheld. Suppression is a normal result, not an error, so the UI can
// distinguish "withheld for privacy" from "no data".
type PrivacyStatus string

const (
	PrivacyOK         PrivacyStatus = "ok"
	PrivacySuppressed PrivacyStatus = "suppressed-too-small"
)

// BurnoutBucket is the coarse burnout banding exposed to managers in
// place of raw individual scores.
type BurnoutBucket string

const (
	BucketLow      BurnoutBucket = "low"      // < 40
	BucketModerate BurnoutBucket = "moderate" // 40–69
	BucketHigh     BurnoutBucket = "high"     // >= 70
)

// WeeklyTrendPoint is one calendar week's team average. Weeks below the
// minimum distinct-member bar are omitted from the aggregate entirely.
type WeeklyTrendPoint struct {
	WeekStart    string  `json:"week_start" bson:"week_start"`
	AvgBurnout   float64 `json:"avg_burnout" bson:"avg_burnout"`
	AvgReadiness float64 `json:"avg_readiness" bson:"avg_readiness"`
	MemberCount  int     `json:"member_count" bson:"member_count"`
}

// TeamAggregate is the manager-facing rollup over active, consenting
// direct reports. It is a read-side projection, recomputed on demand and
// never persisted with individual rows.
type TeamAggregate struct {
	ManagerID     string        `json:"manager_id"`
	PrivacyStatus PrivacyStatus `json:"privacy_status"`
	TeamSize      int           `json:"team_size"`

	ZoneDistribution  map[Zone]int          `json:"zone_distribution,omitempty"`
	BurnoutBuckets    map[BurnoutBucket]int `json:"burnout_buckets,omitempty"`
	WeeklyTrend       []WeeklyTrendPoint    `json:"weekly_trend,omitempty"`
	TrendDirection    TrendDirection        `json:"trend_direction,omitempty"`
	WeeklyChangeRate  float64               `json:"weekly_change_rate"`
	ActionItems       []string              `json:"action_items,omitempty"`
	AvgBurnoutScore   float64               `json:"avg_burnout_score"`
	AvgReadinessScore float64               `json:"avg_readiness_score"`
}
