package store

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wellbeat/wellness-api/schema"
	"github.com/wellbeat/wellness-api/score"
)

// SyncResult is the outcome of a score recomputation. Unavailable is an
// expected, frequent condition (a brand-new employee has no telemetry),
// so it is a variant, not an error.
type SyncResult struct {
	Available bool                `json:"available"`
	Reason    string              `json:"reason,omitempty"`
	Score     *schema.ScoreResult `json:"score,omitempty"`
	State     *schema.ZoneState   `json:"state,omitempty"`
}

// SyncUnavailableReason marks a sync skipped for lack of any telemetry.
const SyncUnavailableReason = "insufficient-data"

type Engine interface {
	SyncEmployeeScore(employeeID string, day time.Time, policy score.ScoringPolicy) (*SyncResult, error)
	ForecastForEmployee(employeeID string, policy score.ScoringPolicy) (*schema.Forecast, error)
	ScanPatterns(employeeID string, policy score.ScoringPolicy) ([]schema.DetectedPattern, error)
	TeamAggregateForManager(managerID string, now time.Time, policy score.ScoringPolicy) (*schema.TeamAggregate, error)
}

const patternScanLimit = 90

// SyncEmployeeScore recomputes one employee's scores for one day: read
// the trailing sample window, derive the baseline, score today's sample
// against it, classify the zone against the latest prior state and
// persist. The resulting state's Changed flag is the signal the alert
// service consumes.
func (m *mongoDB) SyncEmployeeScore(employeeID string, day time.Time, policy score.ScoringPolicy) (*SyncResult, error) {
	date := day.UTC().Format(schema.DateLayout)
	windowStart := day.UTC().AddDate(0, 0, -policy.BaselineWindowDays).Format(schema.DateLayout)

	samples, err := m.GetMetricSamples(employeeID, windowStart, date)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return &SyncResult{Reason: SyncUnavailableReason}, nil
	}

	// the baseline covers days strictly before the one being scored so
	// today's reading is always measured against the past
	baselineSamples := make([]schema.MetricSample, 0, len(samples))
	today := schema.MetricSample{EmployeeID: employeeID, Date: date}
	for _, s := range samples {
		if s.Date < date {
			baselineSamples = append(baselineSamples, s)
		} else if s.Date == date {
			today = s
		}
	}

	baseline := score.CalculateBaseline(employeeID, baselineSamples, policy)
	if err := m.UpdateBaseline(baseline); err != nil {
		return nil, err
	}

	result := score.CalculateScores(today, baseline, policy)

	state, err := m.SaveZoneState(result, policy)
	if err != nil {
		return nil, err
	}

	ts := day.UTC().Unix()
	if err := m.AddScoreRecord(employeeID, schema.ScoreRecordTypeBurnout, result.BurnoutScore, ts); err != nil {
		return nil, err
	}
	if err := m.AddScoreRecord(employeeID, schema.ScoreRecordTypeReadiness, result.ReadinessScore, ts); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":      mongoLogPrefix,
		"employee_id": employeeID,
		"date":        date,
		"burnout":     result.BurnoutScore,
		"zone":        state.Zone,
		"changed":     state.Changed,
	}).Debug("synced employee score")

	return &SyncResult{
		Available: true,
		Score:     &result,
		State:     state,
	}, nil
}

// ForecastForEmployee projects the burnout trajectory from the recent
// persisted history.
func (m *mongoDB) ForecastForEmployee(employeeID string, policy score.ScoringPolicy) (*schema.Forecast, error) {
	history, err := m.GetZoneStateHistory(employeeID, policy.TrendWindowDays)
	if err != nil {
		return nil, err
	}

	forecast := score.ForecastScores(chronological(history), policy)
	if forecast.EmployeeID == "" {
		forecast.EmployeeID = employeeID
	}

	return &forecast, nil
}

// ScanPatterns re-runs detection over the stored history and returns
// the employee's open patterns, deduplicated against previous scans.
func (m *mongoDB) ScanPatterns(employeeID string, policy score.ScoringPolicy) ([]schema.DetectedPattern, error) {
	history, err := m.GetZoneStateHistory(employeeID, patternScanLimit)
	if err != nil {
		return nil, err
	}

	patterns := score.DetectPatterns(chronological(history), policy)
	if err := m.UpsertDetectedPatterns(patterns); err != nil {
		return nil, err
	}

	return m.ListOpenPatterns(employeeID)
}

// TeamAggregateForManager builds the privacy-preserving rollup for a
// manager's active, consenting reports.
func (m *mongoDB) TeamAggregateForManager(managerID string, now time.Time, policy score.ScoringPolicy) (*schema.TeamAggregate, error) {
	members, err := m.GetConsentingDirectReports(managerID)
	if err != nil {
		return nil, err
	}

	// below the bar there is nothing to read; return the suppressed
	// variant without touching individual data at all
	if len(members) < policy.MinAggregateSize {
		aggregate := score.CalculateTeamAggregate(managerID, nil, nil, policy)
		return &aggregate, nil
	}

	states, err := m.GetLatestZoneStates(members)
	if err != nil {
		return nil, err
	}

	weekly, err := m.GetTeamWeeklyAverages(members, policy.TrendWeeks, now)
	if err != nil {
		return nil, err
	}

	aggregate := score.CalculateTeamAggregate(managerID, states, weekly, policy)
	return &aggregate, nil
}

// chronological reverses a most-recent-first history into the oldest
// first order the pure computations expect.
func chronological(history []schema.ZoneState) []schema.ZoneState {
	out := make([]schema.ZoneState, len(history))
	for i, state := range history {
		out[len(history)-1-i] = state
	}
	return out
}
