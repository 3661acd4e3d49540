package store

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
	"github.com/wellbeat/wellness-api/score"
)

type ZoneStateTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	policy       score.ScoringPolicy
}

func NewZoneStateTestSuite(connURI, dbName string) *ZoneStateTestSuite {
	return &ZoneStateTestSuite{
		connURI:    connURI,
		testDBName: dbName,
		policy:     score.DefaultScoringPolicy(),
	}
}

func (s *ZoneStateTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(s.connURI))
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}

	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *ZoneStateTestSuite) saveScore(employeeID, date string, burnout float64) *schema.ZoneState {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	state, err := store.SaveZoneState(schema.ScoreResult{
		EmployeeID:   employeeID,
		Date:         date,
		BurnoutScore: burnout,
	}, s.policy)
	s.Require().NoError(err)
	return state
}

func (s *ZoneStateTestSuite) TestFirstClassificationUsesRawThresholds() {
	state := s.saveScore("emp-first", "2026-08-01", 72)

	s.Equal(schema.ZoneRed, state.Zone)
	s.Empty(state.PreviousZone)
	s.False(state.Changed)
}

func (s *ZoneStateTestSuite) TestHysteresisAgainstPersistedZone() {
	days := []struct {
		date    string
		burnout float64
		zone    schema.Zone
		changed bool
	}{
		{"2026-08-01", 72, schema.ZoneRed, false},
		{"2026-08-02", 68, schema.ZoneRed, false}, // held by the band
		{"2026-08-03", 69, schema.ZoneRed, false},
		{"2026-08-04", 71, schema.ZoneRed, false},
		{"2026-08-05", 63, schema.ZoneYellow, true}, // clears the band
	}

	for _, d := range days {
		state := s.saveScore("emp-hyst", d.date, d.burnout)
		s.Equal(d.zone, state.Zone, "date %s", d.date)
		s.Equal(d.changed, state.Changed, "date %s", d.date)
	}
}

func (s *ZoneStateTestSuite) TestUpsertIsIdempotentPerDay() {
	s.saveScore("emp-idem", "2026-08-01", 55)
	s.saveScore("emp-idem", "2026-08-01", 58)

	count, err := s.testDatabase.Collection(schema.ZoneStateCollection).CountDocuments(
		context.Background(), bson.M{"employee_id": "emp-idem"})
	s.NoError(err)
	s.EqualValues(1, count)

	store := NewMongoStore(s.mongoClient, s.testDBName)
	latest, err := store.GetLatestZoneState("emp-idem")
	s.NoError(err)
	s.Require().NotNil(latest)
	s.Equal(58.0, latest.BurnoutScore)
}

func (s *ZoneStateTestSuite) TestHistoryMostRecentFirst() {
	for i := 1; i <= 5; i++ {
		s.saveScore("emp-hist", fmt.Sprintf("2026-08-%02d", i), 50+float64(i))
	}

	store := NewMongoStore(s.mongoClient, s.testDBName)
	history, err := store.GetZoneStateHistory("emp-hist", 3)
	s.NoError(err)
	s.Require().Len(history, 3)
	s.Equal("2026-08-05", history[0].Date)
	s.Equal("2026-08-04", history[1].Date)
	s.Equal("2026-08-03", history[2].Date)
}

func (s *ZoneStateTestSuite) TestGetLatestZoneStateMissing() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	state, err := store.GetLatestZoneState("emp-nobody")
	s.NoError(err)
	s.Nil(state)
}
