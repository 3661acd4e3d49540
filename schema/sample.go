package schema

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MetricSampleCollection = "metricSamples"
)

// DateLayout is the canonical day key used across collections.
const DateLayout = "2006-01-02"

// MetricSample is one employee's raw telemetry for one calendar day.
// Nil fields mean the metric was not reported that day; they are never
// treated as zero. A second write for the same (employee, date) is a
// corrective upsert, not a duplicate.
type MetricSample struct {
	EmployeeID string `json:"employee_id" bson:"employee_id"`
	Date       string `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`

	SleepHours     *float64 `json:"sleep_hours,omitempty" bson:"sleep_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	SleepQuality   *float64 `json:"sleep_quality,omitempty" bson:"sleep_quality,omitempty" validate:"omitempty,gte=0,lte=100"`
	HRV            *float64 `json:"hrv,omitempty" bson:"hrv,omitempty" validate:"omitempty,gte=0,lte=300"`
	RestingHR      *float64 `json:"resting_hr,omitempty" bson:"resting_hr,omitempty" validate:"omitempty,gte=20,lte=250"`
	ExerciseMins   *float64 `json:"exercise_minutes,omitempty" bson:"exercise_minutes,omitempty" validate:"omitempty,gte=0,lte=1440"`
	DeepSleepHours *float64 `json:"deep_sleep_hours,omitempty" bson:"deep_sleep_hours,omitempty" validate:"omitempty,gte=0,lte=24"`

	HoursWorked      *float64 `json:"hours_worked,omitempty" bson:"hours_worked,omitempty" validate:"omitempty,gte=0,lte=24"`
	OvertimeHours    *float64 `json:"overtime_hours,omitempty" bson:"overtime_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	MeetingsAttended *float64 `json:"meetings_attended,omitempty" bson:"meetings_attended,omitempty" validate:"omitempty,gte=0"`
	TasksCompleted   *float64 `json:"tasks_completed,omitempty" bson:"tasks_completed,omitempty" validate:"omitempty,gte=0"`
	TasksAssigned    *float64 `json:"tasks_assigned,omitempty" bson:"tasks_assigned,omitempty" validate:"omitempty,gte=0"`

	Timestamp time.Time `json:"ts" bson:"ts"`
}

var sampleValidator = validator.New()

// Validate rejects out-of-range samples before they reach the scoring
// core, which assumes validated inputs.
func (s *MetricSample) Validate() error {
	return sampleValidator.Struct(s)
}
