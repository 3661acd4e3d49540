package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
)

type Patterns interface {
	UpsertDetectedPatterns(patterns []schema.DetectedPattern) error
	ListOpenPatterns(employeeID string) ([]schema.DetectedPattern, error)
	AcknowledgePattern(employeeID, patternID string) error
	DismissPattern(employeeID, patternID string) error
}

// UpsertDetectedPatterns records a scan's findings. An open pattern with
// the same dedupe key is refreshed in place, so repeated scans never
// stack duplicates of the same recurring structure. Acknowledged and
// dismissed patterns are left alone; re-detection of a resolved pattern
// opens a new one.
func (m *mongoDB) UpsertDetectedPatterns(patterns []schema.DetectedPattern) error {
	c := m.client.Database(m.database).Collection(schema.PatternCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	for _, p := range patterns {
		query := bson.M{
			"employee_id": p.EmployeeID,
			"dedupe_key":  p.DedupeKey,
			"status":      schema.PatternOpen,
		}
		update := bson.M{
			"$set": bson.M{
				"description": p.Description,
				"confidence":  p.Confidence,
				"impact":      p.Impact,
				"detected_at": p.DetectedAt,
			},
			"$setOnInsert": bson.M{
				"_id":         uuid.New().String(),
				"employee_id": p.EmployeeID,
				"kind":        p.Kind,
				"dedupe_key":  p.DedupeKey,
				"status":      schema.PatternOpen,
			},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := c.UpdateOne(ctx, query, update, opts); err != nil {
			return err
		}
	}

	return nil
}

func (m *mongoDB) ListOpenPatterns(employeeID string) ([]schema.DetectedPattern, error) {
	c := m.client.Database(m.database).Collection(schema.PatternCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"employee_id": employeeID, "status": schema.PatternOpen}
	opts := options.Find().SetSort(bson.M{"detected_at": -1})

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var patterns []schema.DetectedPattern
	if err := cursor.All(ctx, &patterns); err != nil {
		return nil, err
	}

	return patterns, nil
}

func (m *mongoDB) AcknowledgePattern(employeeID, patternID string) error {
	return m.resolvePattern(employeeID, patternID, schema.PatternAcknowledged)
}

func (m *mongoDB) DismissPattern(employeeID, patternID string) error {
	return m.resolvePattern(employeeID, patternID, schema.PatternDismissed)
}

// resolvePattern closes an open pattern. The update is scoped to the
// owning employee so a pattern id can only ever be resolved through its
// own employee's route.
func (m *mongoDB) resolvePattern(employeeID, patternID string, status schema.PatternStatus) error {
	c := m.client.Database(m.database).Collection(schema.PatternCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	query := bson.M{"_id": patternID, "employee_id": employeeID, "status": schema.PatternOpen}
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"resolved_at": now,
		},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPatternNotFound
	}

	return nil
}
