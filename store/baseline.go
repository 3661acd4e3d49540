package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
)

type Baselines interface {
	UpdateBaseline(baseline schema.Baseline) error
	GetBaseline(employeeID string) (*schema.Baseline, error)
}

// UpdateBaseline overwrites an employee's baseline document. The
// baseline calculator owns this document; it is never edited directly.
func (m *mongoDB) UpdateBaseline(baseline schema.Baseline) error {
	c := m.client.Database(m.database).Collection(schema.BaselineCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"employee_id": baseline.EmployeeID}
	opts := options.Replace().SetUpsert(true)
	_, err := c.ReplaceOne(ctx, query, baseline, opts)
	return err
}

// GetBaseline returns nil without error when the employee has no
// baseline yet.
func (m *mongoDB) GetBaseline(employeeID string) (*schema.Baseline, error) {
	c := m.client.Database(m.database).Collection(schema.BaselineCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var baseline schema.Baseline
	err := c.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&baseline)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &baseline, nil
}
