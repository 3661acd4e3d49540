package score

// ChangeRate returns the percentage change from old to new. A move away
// from zero is reported as a full swing in the sign of the new value so
// callers never divide by zero.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return 0
		}
		if new > 0 {
			return 100
		}
		return -100
	}

	return 100 * (new - old) / old
}
