package schema

// TrendDirection classifies a fitted slope against a minimum-magnitude
// threshold so noise is not labeled as a trend.
type TrendDirection string

const (
	TrendWorsening TrendDirection = "worsening"
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
)

// ForecastPoint is one projected day. Ephemeral: recomputed per request,
// never persisted.
type ForecastPoint struct {
	DayOffset      int     `json:"day_offset"`
	PredictedScore float64 `json:"predicted_score"`
	PredictedZone  Zone    `json:"predicted_zone"`
	Confidence     float64 `json:"confidence"`
}

// ForecastUnavailableReason is the soft "no result" variant for a
// forecast request with too little history.
const ForecastUnavailableReason = "insufficient-data"

// Forecast is the full trajectory projection for one employee.
type Forecast struct {
	EmployeeID string `json:"employee_id"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`

	Points         []ForecastPoint `json:"points,omitempty"`
	Slope          float64         `json:"slope"`
	Direction      TrendDirection  `json:"direction"`
	DaysUntilRed   *int            `json:"days_until_red,omitempty"`
	RedZoneWarning string          `json:"red_zone_warning,omitempty"`
}
