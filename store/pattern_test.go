package store

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/schema"
)

type PatternTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewPatternTestSuite(connURI, dbName string) *PatternTestSuite {
	return &PatternTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *PatternTestSuite) SetupSuite() {
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

func openPattern(employeeID, dedupeKey string) schema.DetectedPattern {
	return schema.DetectedPattern{
		EmployeeID:  employeeID,
		Kind:        schema.PatternCorrelation,
		DedupeKey:   dedupeKey,
		Description: "test pattern",
		Confidence:  80,
		Impact:      schema.ImpactNegative,
		Status:      schema.PatternOpen,
		DetectedAt:  time.Now().UTC(),
	}
}

func (s *PatternTestSuite) TestUpsertDeduplicatesAcrossScans() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	pattern := openPattern("pat-emp-1", "weekday-monday")
	s.NoError(store.UpsertDetectedPatterns([]schema.DetectedPattern{pattern}))

	// a second scan refreshes the open pattern instead of stacking one
	pattern.Confidence = 90
	s.NoError(store.UpsertDetectedPatterns([]schema.DetectedPattern{pattern}))

	patterns, err := store.ListOpenPatterns("pat-emp-1")
	s.NoError(err)
	s.Len(patterns, 1)
	s.Equal(float64(90), patterns[0].Confidence)
	s.NotEmpty(patterns[0].ID)
}

func (s *PatternTestSuite) TestResolutionScopedToOwningEmployee() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertDetectedPatterns([]schema.DetectedPattern{
		openPattern("pat-emp-2", "trend-worsening"),
	}))

	patterns, err := store.ListOpenPatterns("pat-emp-2")
	s.NoError(err)
	s.Require().Len(patterns, 1)
	patternID := patterns[0].ID

	// another employee's id cannot resolve this pattern
	s.ErrorIs(store.AcknowledgePattern("pat-emp-other", patternID), ErrPatternNotFound)
	s.ErrorIs(store.DismissPattern("pat-emp-other", patternID), ErrPatternNotFound)

	patterns, err = store.ListOpenPatterns("pat-emp-2")
	s.NoError(err)
	s.Len(patterns, 1)

	s.NoError(store.AcknowledgePattern("pat-emp-2", patternID))

	patterns, err = store.ListOpenPatterns("pat-emp-2")
	s.NoError(err)
	s.Empty(patterns)
}

func (s *PatternTestSuite) TestResolvedPatternCannotBeResolvedAgain() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertDetectedPatterns([]schema.DetectedPattern{
		openPattern("pat-emp-3", "anomaly-2026-08-01"),
	}))

	patterns, err := store.ListOpenPatterns("pat-emp-3")
	s.NoError(err)
	s.Require().Len(patterns, 1)
	patternID := patterns[0].ID

	s.NoError(store.DismissPattern("pat-emp-3", patternID))
	s.ErrorIs(store.AcknowledgePattern("pat-emp-3", patternID), ErrPatternNotFound)
}
