package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates the indexes the engine's read and upsert paths
// rely on. The unique (employee_id, date) indexes are what make sample
// and zone-state writes idempotent corrective upserts.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

func (i *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(i.connURI))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Warn("disconnect indexer client")
		}
	}()

	db := client.Database(i.database)

	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		MetricSampleCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
		},
		ZoneStateCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: -1}}},
		},
		BaselineCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ScoreHistoryCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "type", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		PatternCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "dedupe_key", Value: 1}, {Key: "status", Value: 1}}},
		},
		ConsentRecordsCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "manager_id", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	return nil
}
