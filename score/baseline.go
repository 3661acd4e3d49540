package score

import (
	"time"

	"github.com/wellbeat/wellness-api/schema"
)

// factorValue extracts one factor's reading from a sample. The second
// return is false when the sample did not report that factor, which is
// distinct from reporting zero. Task completion is the completed/assigned
// ratio and is absent unless both counts are present and at least one
// task was assigned.
func factorValue(s schema.MetricSample, f schema.FactorKind) (float64, bool) {
	deref := func(p *float64) (float64, bool) {
		if p == nil {
			return 0, false
		}
		return *p, true
	}

	switch f {
	case schema.FactorSleepHours:
		return deref(s.SleepHours)
	case schema.FactorSleepQuality:
		return deref(s.SleepQuality)
	case schema.FactorHRV:
		return deref(s.HRV)
	case schema.FactorRestingHR:
		return deref(s.RestingHR)
	case schema.FactorExercise:
		return deref(s.ExerciseMins)
	case schema.FactorDeepSleep:
		return deref(s.DeepSleepHours)
	case schema.FactorHoursWorked:
		return deref(s.HoursWorked)
	case schema.FactorOvertime:
		return deref(s.OvertimeHours)
	case schema.FactorMeetingLoad:
		return deref(s.MeetingsAttended)
	case schema.FactorTaskCompletion:
		if s.TasksCompleted == nil || s.TasksAssigned == nil || *s.TasksAssigned == 0 {
			return 0, false
		}
		return *s.TasksCompleted / *s.TasksAssigned, true
	}

	return 0, false
}

// baselineValue reads one factor's reference point off a baseline, false
// when no sample in the window carried that factor.
func baselineValue(b schema.Baseline, f schema.FactorKind) (float64, bool) {
	deref := func(p *float64) (float64, bool) {
		if p == nil {
			return 0, false
		}
		return *p, true
	}

	switch f {
	case schema.FactorSleepHours:
		return deref(b.SleepHours)
	case schema.FactorSleepQuality:
		return deref(b.SleepQuality)
	case schema.FactorHRV:
		return deref(b.HRV)
	case schema.FactorRestingHR:
		return deref(b.RestingHR)
	case schema.FactorExercise:
		return deref(b.ExerciseMins)
	case schema.FactorDeepSleep:
		return deref(b.DeepSleepHours)
	case schema.FactorHoursWorked:
		return deref(b.HoursWorked)
	case schema.FactorOvertime:
		return deref(b.OvertimeHours)
	case schema.FactorMeetingLoad:
		return deref(b.MeetingsAttended)
	case schema.FactorTaskCompletion:
		return deref(b.TaskCompletion)
	}

	return 0, false
}

func setBaselineValue(b *schema.Baseline, f schema.FactorKind, v float64) {
	value := v
	switch f {
	case schema.FactorSleepHours:
		b.SleepHours = &value
	case schema.FactorSleepQuality:
		b.SleepQuality = &value
	case schema.FactorHRV:
		b.HRV = &value
	case schema.FactorRestingHR:
		b.RestingHR = &value
	case schema.FactorExercise:
		b.ExerciseMins = &value
	case schema.FactorDeepSleep:
		b.DeepSleepHours = &value
	case schema.FactorHoursWorked:
		b.HoursWorked = &value
	case schema.FactorOvertime:
		b.OvertimeHours = &value
	case schema.FactorMeetingLoad:
		b.MeetingsAttended = &value
	case schema.FactorTaskCompletion:
		b.TaskCompletion = &value
	}
}

// CalculateBaseline derives an employee's personal reference point from
// a trailing window of samples. Each factor's baseline is the mean over
// the samples that reported it; factors no sample reported stay absent.
// The LowConfidence flag is set when the window holds fewer than the
// policy's minimum history and must be propagated by callers.
func CalculateBaseline(employeeID string, samples []schema.MetricSample, policy ScoringPolicy) schema.Baseline {
	baseline := schema.Baseline{
		EmployeeID:    employeeID,
		SampleCount:   len(samples),
		LowConfidence: len(samples) < policy.MinBaselineSamples,
		UpdatedAt:     time.Now().UTC(),
	}

	if len(samples) > 0 {
		baseline.WindowStart = samples[0].Date
		baseline.WindowEnd = samples[len(samples)-1].Date
		for _, s := range samples {
			if s.Date < baseline.WindowStart {
				baseline.WindowStart = s.Date
			}
			if s.Date > baseline.WindowEnd {
				baseline.WindowEnd = s.Date
			}
		}
	}

	for _, factor := range schema.AllFactors {
		sum := float64(0)
		count := 0
		for _, s := range samples {
			if v, ok := factorValue(s, factor); ok {
				sum += v
				count++
			}
		}
		if count > 0 {
			setBaselineValue(&baseline, factor, sum/float64(count))
		}
	}

	return baseline
}
