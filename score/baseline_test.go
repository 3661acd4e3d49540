package score

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellbeat/wellness-api/schema"
)

func TestCalculateBaselineMeansPresentFieldsOnly(t *testing.T) {
	policy := DefaultScoringPolicy()

	samples := []schema.MetricSample{
		{EmployeeID: "emp-1", Date: "2026-08-01", SleepHours: fptr(6), HRV: fptr(40)},
		{EmployeeID: "emp-1", Date: "2026-08-02", SleepHours: fptr(8)},
		{EmployeeID: "emp-1", Date: "2026-08-03", SleepHours: fptr(7), HRV: fptr(60)},
	}

	baseline := CalculateBaseline("emp-1", samples, policy)

	assert.Equal(t, "emp-1", baseline.EmployeeID)
	assert.Equal(t, 3, baseline.SampleCount)
	assert.InDelta(t, 7.0, *baseline.SleepHours, 1e-9)
	// HRV mean covers only the two days that reported it
	assert.InDelta(t, 50.0, *baseline.HRV, 1e-9)
	// no sample reported overtime: the factor stays absent
	assert.Nil(t, baseline.OvertimeHours)
	assert.Equal(t, "2026-08-01", baseline.WindowStart)
	assert.Equal(t, "2026-08-03", baseline.WindowEnd)
}

func TestCalculateBaselineLowConfidence(t *testing.T) {
	policy := DefaultScoringPolicy()

	short := []schema.MetricSample{
		{EmployeeID: "emp-1", Date: "2026-08-01", SleepHours: fptr(7)},
	}
	assert.True(t, CalculateBaseline("emp-1", short, policy).LowConfidence)

	var long []schema.MetricSample
	for i := 1; i <= policy.MinBaselineSamples; i++ {
		long = append(long, schema.MetricSample{
			EmployeeID: "emp-1",
			Date:       fmt.Sprintf("2026-08-%02d", i),
			SleepHours: fptr(7),
		})
	}
	assert.False(t, CalculateBaseline("emp-1", long, policy).LowConfidence)
}

func TestCalculateBaselineTaskCompletionRatio(t *testing.T) {
	policy := DefaultScoringPolicy()

	samples := []schema.MetricSample{
		{EmployeeID: "emp-1", Date: "2026-08-01", TasksCompleted: fptr(4), TasksAssigned: fptr(8)},
		{EmployeeID: "emp-1", Date: "2026-08-02", TasksCompleted: fptr(9), TasksAssigned: fptr(9)},
		// assigned missing: the day contributes nothing to the ratio
		{EmployeeID: "emp-1", Date: "2026-08-03", TasksCompleted: fptr(5)},
	}

	baseline := CalculateBaseline("emp-1", samples, policy)
	assert.InDelta(t, 0.75, *baseline.TaskCompletion, 1e-9)
}
