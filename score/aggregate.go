package score

import (
	"github.com/wellbeat/wellness-api/schema"
)

// BucketBurnout maps a raw burnout score into the coarse band exposed
// to managers. The bands reuse the zone thresholds so a "high" member
// is exactly a member whose raw score would classify red.
func BucketBurnout(burnout float64, policy ScoringPolicy) schema.BurnoutBucket {
	switch {
	case burnout >= policy.HighThreshold:
		return schema.BucketHigh
	case burnout >= policy.LowThreshold:
		return schema.BucketModerate
	default:
		return schema.BucketLow
	}
}

// CalculateTeamAggregate rolls up the latest zone states of a manager's
// active, consenting reports. The states slice must already be filtered
// to consenting members; weekly holds the candidate weekly averages with
// their distinct-contributor counts, oldest week first.
//
// Below MinAggregateSize the result is the suppressed variant carrying
// no distributions at all: suppression must be indistinguishable in
// shape from an empty team so nothing about the real counts leaks.
// Weeks whose own contributor count is below the same bar are dropped
// rather than shown with a misleading sample.
func CalculateTeamAggregate(managerID string, states []schema.ZoneState, weekly []schema.WeeklyTrendPoint, policy ScoringPolicy) schema.TeamAggregate {
	aggregate := schema.TeamAggregate{
		ManagerID:     managerID,
		PrivacyStatus: schema.PrivacySuppressed,
		TeamSize:      len(states),
	}

	if len(states) < policy.MinAggregateSize {
		aggregate.TeamSize = 0
		return aggregate
	}

	aggregate.PrivacyStatus = schema.PrivacyOK
	aggregate.ZoneDistribution = map[schema.Zone]int{
		schema.ZoneRed:    0,
		schema.ZoneYellow: 0,
		schema.ZoneGreen:  0,
	}
	aggregate.BurnoutBuckets = map[schema.BurnoutBucket]int{
		schema.BucketLow:      0,
		schema.BucketModerate: 0,
		schema.BucketHigh:     0,
	}

	for _, state := range states {
		aggregate.ZoneDistribution[state.Zone]++
		aggregate.BurnoutBuckets[BucketBurnout(state.BurnoutScore, policy)]++
		aggregate.AvgBurnoutScore += state.BurnoutScore
		aggregate.AvgReadinessScore += state.ReadinessScore
	}
	aggregate.AvgBurnoutScore /= float64(len(states))
	aggregate.AvgReadinessScore /= float64(len(states))

	for _, week := range weekly {
		if week.MemberCount >= policy.MinAggregateSize {
			aggregate.WeeklyTrend = append(aggregate.WeeklyTrend, week)
		}
	}

	aggregate.TrendDirection = schema.TrendStable
	if n := len(aggregate.WeeklyTrend); n >= 2 {
		previous := aggregate.WeeklyTrend[n-2]
		latest := aggregate.WeeklyTrend[n-1]
		// same minimum-magnitude rule as the forecaster, per day over a
		// seven-day week
		slope := (latest.AvgBurnout - previous.AvgBurnout) / 7
		aggregate.TrendDirection = ClassifyTrend(slope, policy)
		aggregate.WeeklyChangeRate = ChangeRate(latest.AvgBurnout, previous.AvgBurnout)
	}

	aggregate.ActionItems = actionItems(aggregate)

	return aggregate
}

// actionItems is pure presentation over the computed aggregate.
func actionItems(aggregate schema.TeamAggregate) []string {
	var items []string

	if red := aggregate.ZoneDistribution[schema.ZoneRed]; red > 0 {
		items = append(items, membersInRedActionItem(red))
	}
	if high := aggregate.BurnoutBuckets[schema.BucketHigh]; high > 0 {
		items = append(items, highBurnoutActionItem(high))
	}
	if aggregate.TrendDirection == schema.TrendWorsening {
		items = append(items, teamTrendWorseningActionItem())
	}

	return items
}
