package score

import (
	"github.com/wellbeat/wellness-api/schema"
)

// classifyRaw maps a burnout score to a zone using thresholds only.
// Forecast points use this directly because hypothetical future states
// carry no hysteresis.
func classifyRaw(burnout float64, policy ScoringPolicy) schema.Zone {
	switch {
	case burnout >= policy.HighThreshold:
		return schema.ZoneRed
	case burnout <= policy.LowThreshold:
		return schema.ZoneGreen
	default:
		return schema.ZoneYellow
	}
}

// ClassifyZone runs the zone state machine for one day. previousZone is
// the immediately preceding persisted zone, or empty when the employee
// has no prior state, in which case raw thresholds apply. Hysteresis
// holds the previous zone when the score lands inside the band on the
// exit side of a threshold, so leaving red requires dropping below
// HighThreshold-HysteresisBand and leaving green requires rising above
// LowThreshold+HysteresisBand. The returned changed flag is true only
// when the output differs from previousZone.
func ClassifyZone(burnout float64, previousZone schema.Zone, policy ScoringPolicy) (schema.Zone, bool) {
	zone := classifyRaw(burnout, policy)

	switch previousZone {
	case "":
		return zone, false
	case schema.ZoneRed:
		if zone != schema.ZoneRed && burnout >= policy.HighThreshold-policy.HysteresisBand {
			zone = schema.ZoneRed
		}
	case schema.ZoneGreen:
		if zone != schema.ZoneGreen && burnout <= policy.LowThreshold+policy.HysteresisBand {
			zone = schema.ZoneGreen
		}
	}

	return zone, zone != previousZone
}
