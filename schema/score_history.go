package schema

const (
	ScoreHistoryCollection = "scoreHistory"
)

type ScoreRecordType string

const (
	ScoreRecordTypeBurnout   ScoreRecordType = "burnout"
	ScoreRecordTypeReadiness ScoreRecordType = "readiness"
)

// ScoreRecord is one composite score for one employee on one day, kept
// as a flat series for averages and week-over-week rollups. Written as
// an upsert so recomputation within a day replaces, never duplicates.
type ScoreRecord struct {
	Owner string          `bson:"owner"`
	Type  ScoreRecordType `bson:"type"`
	Score float64         `bson:"score"`
	Date  string          `bson:"date"`
}
