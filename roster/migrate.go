/*
migrate.go - Legacy schema migration

PURPOSE:
  Persisted blobs arrive in four generations:
    1. flat pattern + flat date->person assignment map
    2. flat pattern + unified task list
    3. pattern history + unified task list (+ stray assignment map)
    4. canonical: pattern history + unified task list
  Migrate inspects which optional fields are present and normalizes to
  the canonical State. It runs once per load, before any resolution.

RULES (applied in order, each independently idempotent):
  - patternHistory present as a sequence: adopted verbatim
  - else flat pattern present: synthesized single-entry history dated today
  - dailyTasks adopted verbatim, else empty
  - specificAssignments merged as full-day override records, skipping
    dates that already carry a matching override (description match, not
    id match, so re-migrating the same source adds nothing)

  Migration never deletes or reorders pre-existing canonical data.

SEE ALSO:
  - codec.go: Deserialize for already-canonical data; share decode runs
    through Migrate because shared links may carry any generation
*/
package roster

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// legacyOverride is the generation-1 per-date assignment shape.
type legacyOverride struct {
	Person string `json:"person"`
	Note   string `json:"note"`
}

// legacyEnvelope matches any persisted generation; absent fields stay nil.
type legacyEnvelope struct {
	PatternHistory      []PatternEntry            `json:"patternHistory"`
	Pattern             []string                  `json:"pattern"`
	DailyTasks          map[string][]TaskRecord   `json:"dailyTasks"`
	SpecificAssignments map[string]legacyOverride `json:"specificAssignments"`
}

// Migrate upgrades a persisted blob of any known generation to the
// canonical state. Unparseable input yields ErrMalformedInput and no
// state; callers fall back to whatever they already hold.
func Migrate(raw []byte) (*State, error) {
	return MigrateAt(raw, Today())
}

// MigrateAt is Migrate with an explicit "today", used for synthesized
// effective dates when a flat pattern is upgraded.
func MigrateAt(raw []byte, today Day) (*State, error) {
	var envelope legacyEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	state := NewState()

	switch {
	case envelope.PatternHistory != nil:
		state.PatternHistory = envelope.PatternHistory
	case envelope.Pattern != nil:
		state.PatternHistory = []PatternEntry{{
			EffectiveDate: today.ISO(),
			Pattern:       envelope.Pattern,
		}}
	}

	if envelope.DailyTasks != nil {
		state.DailyTasks = envelope.DailyTasks
	}

	mergeLegacyOverrides(state, envelope.SpecificAssignments)

	state.normalize()
	return state, nil
}

// mergeLegacyOverrides appends an override record per legacy assignment,
// unless the date already carries a matching one. Dates are walked in
// sorted order so migration output is deterministic.
func mergeLegacyOverrides(state *State, overrides map[string]legacyOverride) {
	dates := make([]string, 0, len(overrides))
	for date := range overrides {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		override := overrides[date]
		if hasOverrideRecord(state.DailyTasks[date], override.Person) {
			continue
		}
		state.DailyTasks[date] = append(state.DailyTasks[date], TaskRecord{
			ID:           uuid.NewString(),
			Description:  override.Person,
			Assignee:     override.Person,
			Note:         override.Note,
			IsAssignment: true,
		})
	}
}

func hasOverrideRecord(records []TaskRecord, person string) bool {
	for _, record := range records {
		if record.IsAssignment && record.Description == person {
			return true
		}
	}
	return false
}
