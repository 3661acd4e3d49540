package background

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wellbeat/wellness-api/score"
	"github.com/wellbeat/wellness-api/store"
)

// ScoreSyncer is the slice of the store the worker needs. Scoring is
// pure and per-employee, so the fan-out requires no coordination beyond
// each employee's own zone-state write.
type ScoreSyncer interface {
	SyncEmployeeScore(employeeID string, day time.Time, policy score.ScoringPolicy) (*store.SyncResult, error)
}

// ScoreWorker recomputes scores for a set of employees, sharded by
// employee id with bounded parallelism.
type ScoreWorker struct {
	syncer      ScoreSyncer
	policy      score.ScoringPolicy
	parallelism int
}

func NewScoreWorker(syncer ScoreSyncer, policy score.ScoringPolicy, parallelism int) *ScoreWorker {
	if parallelism < 1 {
		parallelism = 1
	}
	return &ScoreWorker{
		syncer:      syncer,
		policy:      policy,
		parallelism: parallelism,
	}
}

// RecalculateAll syncs every listed employee for the given day. A
// failing employee is logged and counted, never fatal to the batch;
// only context cancellation stops the run early. Returns the number of
// employees scored and the number that failed.
func (w *ScoreWorker) RecalculateAll(ctx context.Context, employeeIDs []string, day time.Time) (int, int, error) {
	var synced, failed int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.parallelism)

	for _, employeeID := range employeeIDs {
		employeeID := employeeID
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := w.syncer.SyncEmployeeScore(employeeID, day, w.policy)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				log.WithError(err).WithFields(log.Fields{
					"prefix":      "worker",
					"employee_id": employeeID,
				}).Error("sync employee score")
				return nil
			}

			if result.Available {
				atomic.AddInt64(&synced, 1)
			}
			return nil
		})
	}

	err := g.Wait()

	log.WithFields(log.Fields{
		"prefix": "worker",
		"total":  len(employeeIDs),
		"synced": atomic.LoadInt64(&synced),
		"failed": atomic.LoadInt64(&failed),
	}).Info("batch recalculation finished")

	return int(atomic.LoadInt64(&synced)), int(atomic.LoadInt64(&failed)), err
}
