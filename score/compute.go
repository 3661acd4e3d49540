package score

import (
	"math"

	"github.com/wellbeat/wellness-api/schema"
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// composite walks the factor set in fixed order and accumulates each
// present factor's clipped, signed, weighted deviation from baseline.
// The returned score is NeutralScore plus the contribution sum, clamped
// to [0,100], so the explanation reconstructs the composite exactly up
// to the clamp.
func composite(sample schema.MetricSample, baseline schema.Baseline, weights map[schema.FactorKind]FactorWeight, policy ScoringPolicy) (float64, []schema.FactorContribution) {
	contributions := make([]schema.FactorContribution, 0, len(schema.AllFactors))

	sum := float64(0)
	for _, factor := range schema.AllFactors {
		w, ok := weights[factor]
		if !ok {
			continue
		}

		current, ok := factorValue(sample, factor)
		if !ok {
			continue
		}
		reference, ok := baselineValue(baseline, factor)
		if !ok || reference == 0 {
			continue
		}

		deviation := clamp((current-reference)/reference, -policy.DeviationClip, policy.DeviationClip)
		contribution := w.Weight * w.Sign * deviation
		sum += contribution

		contributions = append(contributions, schema.FactorContribution{
			Factor:       factor,
			RawDeviation: deviation,
			Weight:       w.Weight * w.Sign,
			Contribution: contribution,
		})
	}

	return clamp(policy.NeutralScore+sum, 0, 100), contributions
}

// CalculateScores combines today's sample with the employee's baseline
// into a burnout score and a readiness score, each with a per-factor
// explanation. The two composites use independent weightings and are
// not complements of each other. A sample/baseline pair with no factor
// overlap yields the neutral score with an empty explanation and the
// LowConfidence flag set; it never fails.
func CalculateScores(sample schema.MetricSample, baseline schema.Baseline, policy ScoringPolicy) schema.ScoreResult {
	burnout, burnoutFactors := composite(sample, baseline, policy.BurnoutWeights, policy)
	readiness, readinessFactors := composite(sample, baseline, policy.ReadinessWeights, policy)

	return schema.ScoreResult{
		EmployeeID:       sample.EmployeeID,
		Date:             sample.Date,
		BurnoutScore:     burnout,
		ReadinessScore:   readiness,
		BurnoutFactors:   burnoutFactors,
		ReadinessFactors: readinessFactors,
		LowConfidence:    baseline.LowConfidence || len(burnoutFactors) == 0,
		PolicyVersion:    policy.Version,
	}
}
