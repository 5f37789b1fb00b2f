package roster

// =============================================================================
// ROTATION - Weekly round-robin over a pattern, phase-anchored to the epoch
// =============================================================================

// AssigneeFor returns the rotation's default assignee for a date.
// Rotation is weekly: every day of the same Monday-start week maps to the
// same pattern slot, and the slot advances by one each week. The phase is
// anchored to the fixed epoch, never to "today".
//
// Returns ok=false when the pattern is empty. An empty pattern is not an
// error; callers substitute the NoPatternSet sentinel.
func AssigneeFor(d Day, pattern []string) (string, bool) {
	if len(pattern) == 0 {
		return "", false
	}
	index := mod(WeeksSinceEpoch(d), len(pattern))
	return pattern[index], true
}

// mod is the Euclidean modulo: the result is always in [0, n).
// Pre-epoch dates yield negative week counts and must still select a
// valid pattern slot.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
