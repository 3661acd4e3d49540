package store

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
)

type ScoreHistoryTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewScoreHistoryTestSuite(connURI, dbName string) *ScoreHistoryTestSuite {
	return &ScoreHistoryTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ScoreHistoryTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(s.connURI))
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *ScoreHistoryTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ScoreHistoryTestSuite) TestAddScoreRecord() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	var record schema.ScoreRecord

	// employee A: first update
	firstUpdateTime := time.Date(2026, 8, 3, 12, 12, 0, 0, time.UTC)
	err := store.AddScoreRecord("empA", schema.ScoreRecordTypeBurnout, 60.0, firstUpdateTime.Unix())
	s.NoError(err)

	query := bson.M{
		"owner": "empA",
		"type":  schema.ScoreRecordTypeBurnout,
		"date":  "2026-08-03",
	}
	err = s.testDatabase.Collection(schema.ScoreHistoryCollection).FindOne(
		context.Background(), query, options.FindOne()).Decode(&record)
	s.NoError(err)
	s.Equal(schema.ScoreRecord{
		Owner: "empA",
		Type:  schema.ScoreRecordTypeBurnout,
		Score: 60.0,
		Date:  "2026-08-03",
	}, record)

	// employee A: second update in the same day replaces the row
	err = store.AddScoreRecord("empA", schema.ScoreRecordTypeBurnout, 75.0, firstUpdateTime.Add(time.Hour).Unix())
	s.NoError(err)
	err = s.testDatabase.Collection(schema.ScoreHistoryCollection).FindOne(
		context.Background(), query, options.FindOne()).Decode(&record)
	s.NoError(err)
	s.Equal(75.0, record.Score)

	// burnout and readiness series for the same day stay separate rows
	err = store.AddScoreRecord("empA", schema.ScoreRecordTypeReadiness, 40.0, firstUpdateTime.Unix())
	s.NoError(err)
	count, err := s.testDatabase.Collection(schema.ScoreHistoryCollection).CountDocuments(
		context.Background(), bson.M{"owner": "empA", "date": "2026-08-03"})
	s.NoError(err)
	s.EqualValues(2, count)
}

func (s *ScoreHistoryTestSuite) TestGetScoreAverage() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for i, v := range []float64{40, 50, 60} {
		s.NoError(store.AddScoreRecord("empB", schema.ScoreRecordTypeBurnout, v, start.AddDate(0, 0, i).Unix()))
	}

	avg, err := store.GetScoreAverage("empB", schema.ScoreRecordTypeBurnout, start.Unix(), start.AddDate(0, 0, 2).Unix())
	s.NoError(err)
	s.Equal(50.0, avg)

	// an empty range reports zero, not an error
	avg, err = store.GetScoreAverage("empB", schema.ScoreRecordTypeBurnout, start.AddDate(0, 0, 10).Unix(), start.AddDate(0, 0, 12).Unix())
	s.NoError(err)
	s.Equal(0.0, avg)
}
