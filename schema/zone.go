package schema

import "time"

const (
	ZoneStateCollection = "zoneStates"
)

// Zone is the discrete burnout risk bucket.
type Zone string

const (
	ZoneRed    Zone = "red"
	ZoneYellow Zone = "yellow"
	ZoneGreen  Zone = "green"
)

// ZoneState is the persisted classification for one employee on one day.
// The series is append-only and unique per (employee_id, date); a row is
// written even when the zone did not change so trend readers see a
// continuous series. Changed flips true only on a real transition and is
// the trigger signal the alert service consumes.
type ZoneState struct {
	EmployeeID     string  `json:"employee_id" bson:"employee_id"`
	Date           string  `json:"date" bson:"date"`
	Zone           Zone    `json:"zone" bson:"zone"`
	PreviousZone   Zone    `json:"previous_zone,omitempty" bson:"previous_zone,omitempty"`
	Changed        bool    `json:"changed" bson:"changed"`
	BurnoutScore   float64 `json:"burnout_score" bson:"burnout_score"`
	ReadinessScore float64 `json:"readiness_score" bson:"readiness_score"`

	PolicyVersion string    `json:"policy_version" bson:"policy_version"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
