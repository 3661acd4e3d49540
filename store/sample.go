package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
)

type MetricSamples interface {
	CreateMetricSample(sample schema.MetricSample) error
	GetMetricSamples(employeeID string, from, to string) ([]schema.MetricSample, error)
}

// CreateMetricSample validates and writes one day of telemetry. The
// write is an upsert on (employee_id, date): a second write for the same
// day is a corrective replacement, never a duplicate row.
func (m *mongoDB) CreateMetricSample(sample schema.MetricSample) error {
	if err := sample.Validate(); err != nil {
		return err
	}

	c := m.client.Database(m.database).Collection(schema.MetricSampleCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	sample.Timestamp = time.Now().UTC()

	query := bson.M{"employee_id": sample.EmployeeID, "date": sample.Date}
	update := bson.M{"$set": sample}
	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx, query, update, opts)
	return err
}

// GetMetricSamples returns the samples for a date range in ascending
// date order. Bounds are inclusive.
func (m *mongoDB) GetMetricSamples(employeeID string, from, to string) ([]schema.MetricSample, error) {
	c := m.client.Database(m.database).Collection(schema.MetricSampleCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.M{"date": 1})

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var samples []schema.MetricSample
	if err := cursor.All(ctx, &samples); err != nil {
		return nil, err
	}

	return samples, nil
}
