package store

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"

	defaultTimeout = 5 * time.Second
)

var (
	// ErrZoneWriteConflict is surfaced when the zone-state upsert still
	// conflicts after its single retry with a fresh prior-zone read.
	ErrZoneWriteConflict = errors.New("zone state write conflict")

	// ErrPatternNotFound is returned by the acknowledgment lifecycle
	// when no open pattern matches the given id.
	ErrPatternNotFound = errors.New("pattern not found")
)

// WellnessStore is everything the API layer needs from persistence.
type WellnessStore interface {
	MetricSamples
	Baselines
	ZoneStates
	ScoreHistory
	Patterns
	Consent
	TeamRollup
	Engine
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

func NewMongoStore(client *mongo.Client, database string) WellnessStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
