/*
timeline.go - Append-only pattern history

PURPOSE:
  The pattern history is the immutable source of truth for roster
  composition over time. "Who was on duty as of any past date" must stay
  reconstructable, so edits never mutate the current pattern in place:
  every change appends a new dated snapshot.

CRITICAL INVARIANTS:
  1. APPEND-ONLY: Entries are never updated or deleted
  2. AS-OF RESOLUTION: PatternOn(d) reads the history as of d
  3. LAST-WRITE-WINS: When effective dates tie (or arrive out of
     chronological order), the last-appended qualifying entry governs

TIE-BREAK CONTRACT:
  PatternOn does a full linear scan in insertion order and keeps
  overwriting the tracked pattern for every entry whose effective date is
  on or before d. There is no early exit: user-supplied effective dates
  may be backdated or future-dated relative to insertion order, and an
  early break would silently skip qualifying entries.

SEE ALSO:
  - rotation.go: Consumes the resolved pattern
  - records.go: Per-date overrides that take precedence over the pattern
*/
package roster

// =============================================================================
// PATTERN RESOLUTION
// =============================================================================

// CurrentPattern returns the most recently appended pattern, or an empty
// sequence if no entry exists yet.
func (s *Schedule) CurrentPattern() []string {
	history := s.state.PatternHistory
	if len(history) == 0 {
		return []string{}
	}
	return history[len(history)-1].Pattern
}

// PatternOn returns the pattern in force on the given date: the
// last-appended entry whose effective date is on or before d. Returns an
// empty sequence when d precedes every entry.
func (s *Schedule) PatternOn(d Day) []string {
	iso := d.ISO()
	var effective []string
	for _, entry := range s.state.PatternHistory {
		// ISO dates compare correctly as strings.
		if entry.EffectiveDate <= iso {
			effective = entry.Pattern
		}
	}
	if effective == nil {
		return []string{}
	}
	return effective
}

// =============================================================================
// APPEND - The only write operation
// =============================================================================

// AppendPattern adds a new pattern snapshot effective from the given
// date. No validation is applied here: effective-date uniqueness and
// monotonicity are caller-side policy, not timeline invariants.
func (s *Schedule) AppendPattern(pattern []string, effective Day) {
	if pattern == nil {
		pattern = []string{}
	}
	s.state.PatternHistory = append(s.state.PatternHistory, PatternEntry{
		EffectiveDate: effective.ISO(),
		Pattern:       pattern,
	})
}

// SetPattern is the user-facing schedule change: it appends the pattern
// after rejecting effective dates in the past. Backdating is refused for
// manual edits only; migration and imports go through AppendPattern.
func (s *Schedule) SetPattern(pattern []string, effective Day) error {
	if effective.Before(s.today()) {
		return ErrPastEffectiveDate
	}
	s.AppendPattern(pattern, effective)
	return nil
}

// =============================================================================
// POLICY-LAYER EDITS - Each appends a full new entry dated today
// =============================================================================

// AddPerson appends a new entry with the person added at the end of the
// current pattern. Blank names are ignored.
func (s *Schedule) AddPerson(name string) {
	trimmed := trimName(name)
	if trimmed == "" {
		return
	}
	updated := append(append([]string{}, s.CurrentPattern()...), trimmed)
	s.AppendPattern(updated, s.today())
}

// RemovePerson appends a new entry with the person at the given slot
// removed. Out-of-range indexes are a no-op.
func (s *Schedule) RemovePerson(index int) {
	current := s.CurrentPattern()
	if index < 0 || index >= len(current) {
		return
	}
	updated := make([]string, 0, len(current)-1)
	updated = append(updated, current[:index]...)
	updated = append(updated, current[index+1:]...)
	s.AppendPattern(updated, s.today())
}

// SwapPeople appends a new entry with the two slots exchanged.
func (s *Schedule) SwapPeople(i, j int) {
	current := s.CurrentPattern()
	if i < 0 || j < 0 || i >= len(current) || j >= len(current) {
		return
	}
	updated := append([]string{}, current...)
	updated[i], updated[j] = updated[j], updated[i]
	s.AppendPattern(updated, s.today())
}

// MovePerson appends a new entry with one slot moved to a new position,
// shifting the others.
func (s *Schedule) MovePerson(from, to int) {
	current := s.CurrentPattern()
	if from == to || from < 0 || to < 0 || from >= len(current) || to >= len(current) {
		return
	}
	updated := append([]string{}, current...)
	person := updated[from]
	updated = append(updated[:from], updated[from+1:]...)
	rest := append([]string{}, updated[to:]...)
	updated = append(append(updated[:to], person), rest...)
	s.AppendPattern(updated, s.today())
}
