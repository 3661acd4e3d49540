package schema

import "time"

const (
	BaselineCollection = "baselines"
)

// Baseline is an employee's personal reference point: the mean of each
// tracked metric over a trailing window of samples. A nil field means no
// sample in the window carried that metric, and downstream scoring must
// skip the deviation term for it.
type Baseline struct {
	EmployeeID string `json:"employee_id" bson:"employee_id"`

	SleepHours     *float64 `json:"sleep_hours,omitempty" bson:"sleep_hours,omitempty"`
	SleepQuality   *float64 `json:"sleep_quality,omitempty" bson:"sleep_quality,omitempty"`
	HRV            *float64 `json:"hrv,omitempty" bson:"hrv,omitempty"`
	RestingHR      *float64 `json:"resting_hr,omitempty" bson:"resting_hr,omitempty"`
	ExerciseMins   *float64 `json:"exercise_minutes,omitempty" bson:"exercise_minutes,omitempty"`
	DeepSleepHours *float64 `json:"deep_sleep_hours,omitempty" bson:"deep_sleep_hours,omitempty"`

	HoursWorked      *float64 `json:"hours_worked,omitempty" bson:"hours_worked,omitempty"`
	OvertimeHours    *float64 `json:"overtime_hours,omitempty" bson:"overtime_hours,omitempty"`
	MeetingsAttended *float64 `json:"meetings_attended,omitempty" bson:"meetings_attended,omitempty"`
	TaskCompletion   *float64 `json:"task_completion,omitempty" bson:"task_completion,omitempty"`

	SampleCount   int       `json:"sample_count" bson:"sample_count"`
	WindowStart   string    `json:"window_start" bson:"window_start"`
	WindowEnd     string    `json:"window_end" bson:"window_end"`
	LowConfidence bool      `json:"low_confidence" bson:"low_confidence"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
