package store

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
	"github.com/wellbeat/wellness-api/score"
)

type ConsentTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewConsentTestSuite(connURI, dbName string) *ConsentTestSuite {
	return &ConsentTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ConsentTestSuite) SetupSuite() {
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

func (s *ConsentTestSuite) TestRecordConsentUpsertsPerEmployee() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	record := schema.ConsentRecord{EmployeeID: "emp-upsert", ManagerID: "mgr-a", Consented: true, Active: true}
	s.NoError(store.RecordConsent(record))

	// flipping consent is an update, not a second record
	record.Consented = false
	s.NoError(store.RecordConsent(record))

	ids, err := store.GetConsentingDirectReports("mgr-a")
	s.NoError(err)
	s.NotContains(ids, "emp-upsert")
}

func (s *ConsentTestSuite) TestConsentingDirectReportsFiltering() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	for i := 1; i <= 4; i++ {
		s.NoError(store.RecordConsent(schema.ConsentRecord{
			EmployeeID: fmt.Sprintf("emp-%d", i),
			ManagerID:  "mgr-b",
			Consented:  true,
			Active:     true,
		}))
	}
	// fifth report never opted in
	s.NoError(store.RecordConsent(schema.ConsentRecord{
		EmployeeID: "emp-5",
		ManagerID:  "mgr-b",
		Consented:  false,
		Active:     true,
	}))
	// an inactive report is excluded even with consent
	s.NoError(store.RecordConsent(schema.ConsentRecord{
		EmployeeID: "emp-6",
		ManagerID:  "mgr-b",
		Consented:  true,
		Active:     false,
	}))

	ids, err := store.GetConsentingDirectReports("mgr-b")
	s.NoError(err)
	s.Len(ids, 4)
	s.NotContains(ids, "emp-5")
	s.NotContains(ids, "emp-6")
}

// A team of five with one non-consenting member leaves four consenting
// members, which stays below the privacy floor.
func (s *ConsentTestSuite) TestAggregateSuppressedWithNonConsentingMember() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	policy := score.DefaultScoringPolicy()

	for i := 1; i <= 5; i++ {
		s.NoError(store.RecordConsent(schema.ConsentRecord{
			EmployeeID: fmt.Sprintf("team-emp-%d", i),
			ManagerID:  "mgr-c",
			Consented:  i != 5,
			Active:     true,
		}))
	}

	aggregate, err := store.TeamAggregateForManager("mgr-c", time.Now().UTC(), policy)
	s.NoError(err)
	s.Equal(schema.PrivacySuppressed, aggregate.PrivacyStatus)
	s.Nil(aggregate.ZoneDistribution)
}
