package store

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
	"github.com/wellbeat/wellness-api/score"
)

type ZoneStates interface {
	GetLatestZoneState(employeeID string) (*schema.ZoneState, error)
	GetZoneStateHistory(employeeID string, limit int) ([]schema.ZoneState, error)
	SaveZoneState(result schema.ScoreResult, policy score.ScoringPolicy) (*schema.ZoneState, error)
}

// GetLatestZoneState returns the most recent persisted state, or nil
// when the employee has never been classified.
func (m *mongoDB) GetLatestZoneState(employeeID string) (*schema.ZoneState, error) {
	c := m.client.Database(m.database).Collection(schema.ZoneStateCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.M{"date": -1})

	var state schema.ZoneState
	err := c.FindOne(ctx, bson.M{"employee_id": employeeID}, opts).Decode(&state)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &state, nil
}

// GetZoneStateHistory returns up to limit states, most recent first.
func (m *mongoDB) GetZoneStateHistory(employeeID string, limit int) ([]schema.ZoneState, error) {
	c := m.client.Database(m.database).Collection(schema.ZoneStateCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"date": -1}).SetLimit(int64(limit))

	cursor, err := c.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, err
	}

	var states []schema.ZoneState
	if err := cursor.All(ctx, &states); err != nil {
		return nil, err
	}

	return states, nil
}

// latestZoneStateBefore reads the newest state strictly before date,
// inside the caller's session context so the hysteresis read and the
// upsert observe the same snapshot.
func (m *mongoDB) latestZoneStateBefore(ctx context.Context, employeeID, date string) (*schema.ZoneState, error) {
	c := m.client.Database(m.database).Collection(schema.ZoneStateCollection)

	query := bson.M{"employee_id": employeeID, "date": bson.M{"$lt": date}}
	opts := options.FindOne().SetSort(bson.M{"date": -1})

	var state schema.ZoneState
	err := c.FindOne(ctx, query, opts).Decode(&state)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &state, nil
}

// SaveZoneState classifies a score result against the immediately
// preceding persisted zone and upserts the (employee, date) row. Both
// happen inside one transaction so two concurrent recomputations for
// the same day cannot both act on a stale previous zone; a conflicting
// write aborts the transaction and is retried exactly once with a fresh
// read before ErrZoneWriteConflict is surfaced.
func (m *mongoDB) SaveZoneState(result schema.ScoreResult, policy score.ScoringPolicy) (*schema.ZoneState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*defaultTimeout)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		state, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			return m.upsertZoneState(sc, result, policy)
		})
		if err == nil {
			zoneState := state.(schema.ZoneState)
			return &zoneState, nil
		}

		lastErr = err
		if !isRetryableWriteConflict(err) {
			return nil, err
		}
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"employee_id": result.EmployeeID,
			"date":        result.Date,
		}).Warn("retry zone state write after conflict")
	}

	log.WithFields(log.Fields{
		"prefix":      mongoLogPrefix,
		"employee_id": result.EmployeeID,
		"date":        result.Date,
		"error":       lastErr,
	}).Error("zone state write conflict")
	return nil, ErrZoneWriteConflict
}

func (m *mongoDB) upsertZoneState(ctx context.Context, result schema.ScoreResult, policy score.ScoringPolicy) (schema.ZoneState, error) {
	previous, err := m.latestZoneStateBefore(ctx, result.EmployeeID, result.Date)
	if err != nil {
		return schema.ZoneState{}, err
	}

	var previousZone schema.Zone
	if previous != nil {
		previousZone = previous.Zone
	}

	zone, changed := score.ClassifyZone(result.BurnoutScore, previousZone, policy)

	state := schema.ZoneState{
		EmployeeID:     result.EmployeeID,
		Date:           result.Date,
		Zone:           zone,
		PreviousZone:   previousZone,
		Changed:        changed,
		BurnoutScore:   result.BurnoutScore,
		ReadinessScore: result.ReadinessScore,
		PolicyVersion:  policy.Version,
		UpdatedAt:      time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.ZoneStateCollection)
	query := bson.M{"employee_id": state.EmployeeID, "date": state.Date}
	update := bson.M{"$set": state}
	opts := options.Update().SetUpsert(true)
	if _, err := c.UpdateOne(ctx, query, update, opts); err != nil {
		return schema.ZoneState{}, err
	}

	return state, nil
}

func isRetryableWriteConflict(err error) bool {
	if mongo.IsDuplicateKeyError(err) {
		return true
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError")
	}

	return false
}
