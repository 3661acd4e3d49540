package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
)

type Consent interface {
	RecordConsent(r schema.ConsentRecord) error
	GetConsentingDirectReports(managerID string) ([]string, error)
	ListActiveEmployees() ([]string, error)
}

func (m *mongoDB) RecordConsent(r schema.ConsentRecord) error {
	c := m.client.Database(m.database).Collection(schema.ConsentRecordsCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"employee_id": r.EmployeeID}
	update := bson.M{
		"$set": bson.M{
			"manager_id": r.ManagerID,
			"consented":  r.Consented,
			"active":     r.Active,
			"ts":         time.Now(),
		},
	}
	_, err := c.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetConsentingDirectReports resolves the employee ids a team rollup may
// cover: active direct reports of the manager who have opted in. The
// consent and active filters happen here so no aggregation code ever
// sees a non-consenting member.
func (m *mongoDB) GetConsentingDirectReports(managerID string) ([]string, error) {
	c := m.client.Database(m.database).Collection(schema.ConsentRecordsCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"manager_id": managerID,
		"consented":  true,
		"active":     true,
	}

	cursor, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	var records []schema.ConsentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.EmployeeID)
	}

	return ids, nil
}

// ListActiveEmployees returns every active employee id, the shard list
// for batch recomputation.
func (m *mongoDB) ListActiveEmployees() ([]string, error) {
	c := m.client.Database(m.database).Collection(schema.ConsentRecordsCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	values, err := c.Distinct(ctx, "employee_id", bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
