/*
Package roster provides the core duty-roster resolution engine.

PURPOSE:
  This package answers one question deterministically: "who is responsible
  on date D?" It combines an append-only history of rotation patterns,
  weekly round-robin selection anchored to a fixed epoch, and a sparse
  store of per-date task/override records into a single resolved answer.

KEY CONCEPTS IN THIS FILE (types.go):
  - PatternEntry: An immutable snapshot of the rotation pattern, tagged
    with the date from which it governs resolution
  - TaskRecord: A per-date task or full-day override record
  - State: The canonical persisted shape (pattern history + daily tasks)
  - Schedule: The single-owner context object all operations go through

DESIGN PRINCIPLES:
  1. Immutability: Pattern entries are never edited, only superseded
  2. Determinism: Rotation phase is anchored to a fixed epoch, never "now"
  3. Recoverability: Nothing in the engine is fatal; bad input falls back
  4. Single writer: One Schedule, one logical writer; callers serialize

USAGE:
  sched := roster.NewSchedule(nil)
  sched.AppendPattern([]string{"Alice", "Bob"}, roster.NewDay(2024, time.January, 1))
  resolved := sched.Resolve(roster.Today())

SEE ALSO:
  - timeline.go: Pattern history and as-of-date resolution
  - rotation.go: Weekly round-robin selection
  - records.go: Per-date task records and suggestions
  - resolve.go: Override-over-rotation composition
  - migrate.go: Legacy schema migration
*/
package roster

import "time"

// =============================================================================
// PATTERN ENTRY - One snapshot in the append-only pattern history
// =============================================================================

// PatternEntry is a rotation pattern snapshot effective from a given date.
// Entries are immutable once appended; every roster edit appends a new
// entry rather than mutating history in place.
type PatternEntry struct {
	EffectiveDate string   `json:"effectiveDate"`
	Pattern       []string `json:"pattern"`
}

// =============================================================================
// TASK RECORD - Per-date task or full-day override
// =============================================================================

// TaskRecord is one task or override attached to a specific date.
//
// Assignee may hold several comma-joined names. IsAssignment marks a
// legacy full-day override of the rotation's default assignee: the
// current edit surface no longer sets it, but resolution must still
// honor it on read.
type TaskRecord struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Assignee     string `json:"assignee"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Note         string `json:"note"`
	IsAssignment bool   `json:"isAssignment,omitempty"`
}

// =============================================================================
// STATE - Canonical persisted shape
// =============================================================================

// State is the sole unit of persistence and URL-encoded sharing.
// DailyTasks is keyed by ISO date (YYYY-MM-DD); a date with no records
// has no key at all (empty sequences are never persisted).
type State struct {
	PatternHistory []PatternEntry          `json:"patternHistory"`
	DailyTasks     map[string][]TaskRecord `json:"dailyTasks"`
}

// NewState returns an empty canonical state.
func NewState() *State {
	return &State{
		PatternHistory: []PatternEntry{},
		DailyTasks:     map[string][]TaskRecord{},
	}
}

// normalize repairs nil containers after decoding partial input.
func (s *State) normalize() {
	if s.PatternHistory == nil {
		s.PatternHistory = []PatternEntry{}
	}
	if s.DailyTasks == nil {
		s.DailyTasks = map[string][]TaskRecord{}
	}
}

// =============================================================================
// RESOLVED ASSIGNMENT - Derived, never stored
// =============================================================================

// ResolvedAssignment is the answer to "who is responsible on date D".
// Recomputed on demand; never persisted.
type ResolvedAssignment struct {
	Person string `json:"person"`
	Note   string `json:"note"`
}

// =============================================================================
// SCHEDULE - Single-owner engine context
// =============================================================================

// Schedule wraps one canonical State with the engine operations.
// It is not safe for concurrent use; a multi-threaded host must
// serialize all calls itself.
type Schedule struct {
	state *State
	now   func() time.Time
}

// NewSchedule creates a schedule over the given state.
// A nil state starts empty.
func NewSchedule(state *State) *Schedule {
	return NewScheduleWithClock(state, time.Now)
}

// NewScheduleWithClock creates a schedule with an explicit clock.
// The clock determines "today" for pattern edits and past-date checks.
func NewScheduleWithClock(state *State, now func() time.Time) *Schedule {
	if state == nil {
		state = NewState()
	}
	state.normalize()
	return &Schedule{state: state, now: now}
}

// State returns the underlying canonical state.
func (s *Schedule) State() *State { return s.state }

func (s *Schedule) today() Day {
	t := s.now()
	return NewDay(t.Year(), t.Month(), t.Day())
}
