package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wellbeat/wellness-api/schema"
)

type TeamRollup interface {
	GetLatestZoneStates(employeeIDs []string) ([]schema.ZoneState, error)
	GetTeamWeeklyAverages(employeeIDs []string, weeks int, now time.Time) ([]schema.WeeklyTrendPoint, error)
}

// GetLatestZoneStates returns each listed employee's most recent zone
// state. Employees who were never classified are simply absent from the
// result.
func (m *mongoDB) GetLatestZoneStates(employeeIDs []string) ([]schema.ZoneState, error) {
	c := m.client.Database(m.database).Collection(schema.ZoneStateCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.D{
		AggregationMatch(bson.M{"employee_id": bson.M{"$in": employeeIDs}}),
		AggregationSort(bson.D{bson.E{Key: "date", Value: 1}}),
		AggregationGroup("$employee_id", bson.D{
			bson.E{Key: "latest", Value: bson.M{"$last": "$$ROOT"}},
		}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Latest schema.ZoneState `bson:"latest"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	states := make([]schema.ZoneState, 0, len(rows))
	for _, row := range rows {
		states = append(states, row.Latest)
	}

	return states, nil
}

// weeklyAveragePipeline averages one calendar week per employee first,
// then across employees, so the member count in the outer group is a
// distinct-contributor count rather than a row count.
func weeklyAveragePipeline(employeeIDs []string, weekStart, weekEnd string) []bson.D {
	return []bson.D{
		AggregationMatch(bson.M{
			"employee_id": bson.M{"$in": employeeIDs},
			"date":        bson.M{"$gte": weekStart, "$lte": weekEnd},
		}),
		AggregationGroup("$employee_id", bson.D{
			bson.E{Key: "burnout", Value: bson.M{"$avg": "$burnout_score"}},
			bson.E{Key: "readiness", Value: bson.M{"$avg": "$readiness_score"}},
		}),
		AggregationGroup(nil, bson.D{
			bson.E{Key: "members", Value: bson.M{"$sum": 1}},
			bson.E{Key: "avg_burnout", Value: bson.M{"$avg": "$burnout"}},
			bson.E{Key: "avg_readiness", Value: bson.M{"$avg": "$readiness"}},
		}),
	}
}

// GetTeamWeeklyAverages computes the last `weeks` calendar weeks of team
// averages together with each week's distinct contributing member count.
// Weeks are Monday-based; the caller decides which weeks clear the
// privacy bar. Weeks with no rows at all are omitted.
func (m *mongoDB) GetTeamWeeklyAverages(employeeIDs []string, weeks int, now time.Time) ([]schema.WeeklyTrendPoint, error) {
	c := m.client.Database(m.database).Collection(schema.ZoneStateCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// Monday of the current week
	weekday := (int(now.Weekday()) + 6) % 7
	currentWeekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -weekday)

	var points []schema.WeeklyTrendPoint
	for i := weeks - 1; i >= 0; i-- {
		start := currentWeekStart.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 6)

		cursor, err := c.Aggregate(ctx, weeklyAveragePipeline(employeeIDs, start.Format(schema.DateLayout), end.Format(schema.DateLayout)))
		if err != nil {
			return nil, err
		}

		if !cursor.Next(ctx) {
			continue
		}

		var row struct {
			Members      int     `bson:"members"`
			AvgBurnout   float64 `bson:"avg_burnout"`
			AvgReadiness float64 `bson:"avg_readiness"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}

		points = append(points, schema.WeeklyTrendPoint{
			WeekStart:    start.Format(schema.DateLayout),
			AvgBurnout:   row.AvgBurnout,
			AvgReadiness: row.AvgReadiness,
			MemberCount:  row.Members,
		})
	}

	return points, nil
}
