/*
records.go - Sparse per-date task/override records

PURPOSE:
  Holds the ad-hoc layer on top of the rotation: tasks and full-day
  overrides attached to specific dates. The mapping is sparse - a date
  with no records has no key, and removing the last record for a date
  removes the date entirely.

LIFECYCLE:
  - AddTask creates a record with a fresh opaque id
  - UpdateTask replaces a record in place, matched by id
  - RemoveTask deletes by id; unknown ids are a silent no-op

SUGGESTIONS:
  Distinct descriptions and assignees feed the host's autocomplete.
  SuggestedTimes averages the valid HH:MM times of every record sharing
  the exact same description. Invalid or free-text times are silently
  excluded from the average, never rejected at write time - legacy data
  may contain them.

SEE ALSO:
  - resolve.go: Override records take precedence over rotation
  - migrate.go: Synthesizes override records from legacy assignments
*/
package roster

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// RECORD CRUD
// =============================================================================

// TasksOn returns the records for a date in insertion order, or an empty
// sequence if none exist.
func (s *Schedule) TasksOn(d Day) []TaskRecord {
	return s.state.DailyTasks[d.ISO()]
}

// AddTask appends a new record for the date and returns it. The id is an
// opaque unique token generated here.
func (s *Schedule) AddTask(d Day, description, assignee, startTime, endTime, note string) TaskRecord {
	record := TaskRecord{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		Assignee:    strings.TrimSpace(assignee),
		StartTime:   strings.TrimSpace(startTime),
		EndTime:     strings.TrimSpace(endTime),
		Note:        strings.TrimSpace(note),
	}
	iso := d.ISO()
	s.state.DailyTasks[iso] = append(s.state.DailyTasks[iso], record)
	return record
}

// UpdateTask replaces the record matched by id, preserving its position.
// Returns false when the date or id is unknown; that is a no-op, not an
// error - stale edits from the host must not crash the session.
func (s *Schedule) UpdateTask(d Day, id, description, assignee, startTime, endTime, note string) bool {
	iso := d.ISO()
	records := s.state.DailyTasks[iso]
	for i, record := range records {
		if record.ID != id {
			continue
		}
		records[i] = TaskRecord{
			ID:          id,
			Description: strings.TrimSpace(description),
			Assignee:    strings.TrimSpace(assignee),
			StartTime:   strings.TrimSpace(startTime),
			EndTime:     strings.TrimSpace(endTime),
			Note:        strings.TrimSpace(note),
		}
		return true
	}
	return false
}

// RemoveTask deletes the record matched by id. When the date's sequence
// becomes empty the date key is removed entirely. Unknown ids are a
// silent no-op.
func (s *Schedule) RemoveTask(d Day, id string) bool {
	iso := d.ISO()
	records, ok := s.state.DailyTasks[iso]
	if !ok {
		return false
	}
	kept := records[:0]
	removed := false
	for _, record := range records {
		if record.ID == id {
			removed = true
			continue
		}
		kept = append(kept, record)
	}
	if !removed {
		return false
	}
	if len(kept) == 0 {
		delete(s.state.DailyTasks, iso)
	} else {
		s.state.DailyTasks[iso] = kept
	}
	return true
}

// =============================================================================
// SUGGESTION SETS
// =============================================================================

// Descriptions returns the distinct task descriptions across all dates,
// sorted.
func (s *Schedule) Descriptions() []string {
	seen := map[string]bool{}
	for _, records := range s.state.DailyTasks {
		for _, record := range records {
			if record.Description != "" {
				seen[record.Description] = true
			}
		}
	}
	return sortedKeys(seen)
}

// Assignees returns the distinct person names across the pattern history
// and all task records, sorted. Comma-joined assignee strings are split
// into individual names.
func (s *Schedule) Assignees() []string {
	seen := map[string]bool{}
	for _, entry := range s.state.PatternHistory {
		for _, person := range entry.Pattern {
			seen[person] = true
		}
	}
	for _, records := range s.state.DailyTasks {
		for _, record := range records {
			for _, name := range ParseAssignees(record.Assignee) {
				seen[name] = true
			}
		}
	}
	return sortedKeys(seen)
}

// ParseAssignees splits a comma-joined assignee string into individual
// trimmed names, dropping empties.
func ParseAssignees(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func trimName(name string) string { return strings.TrimSpace(name) }

// =============================================================================
// TIME SUGGESTIONS - Average of valid HH:MM samples per description
// =============================================================================

// TimeSuggestion holds suggested start/end times for a task description.
// A field is empty when no valid samples exist for it.
type TimeSuggestion struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// SuggestedTimes averages the valid start and end times of every record
// whose description matches exactly (case-sensitive). The average is the
// mean of minutes since midnight, rounded to the nearest minute.
func (s *Schedule) SuggestedTimes(description string) TimeSuggestion {
	var starts, ends []decimal.Decimal
	for _, records := range s.state.DailyTasks {
		for _, record := range records {
			if record.Description != description {
				continue
			}
			if minutes, ok := parseClock(record.StartTime); ok {
				starts = append(starts, decimal.NewFromInt(int64(minutes)))
			}
			if minutes, ok := parseClock(record.EndTime); ok {
				ends = append(ends, decimal.NewFromInt(int64(minutes)))
			}
		}
	}

	var suggestion TimeSuggestion
	if len(starts) > 0 {
		suggestion.StartTime = formatClock(averageMinutes(starts))
	}
	if len(ends) > 0 {
		suggestion.EndTime = formatClock(averageMinutes(ends))
	}
	return suggestion
}

func averageMinutes(samples []decimal.Decimal) int {
	avg := decimal.Avg(samples[0], samples[1:]...)
	return int(avg.Round(0).IntPart())
}

// parseClock validates a HH:MM string and returns minutes since
// midnight. Hours must be in [0,24) and minutes in [0,60).
func parseClock(value string) (int, bool) {
	if !clockPattern.MatchString(value) {
		return 0, false
	}
	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	minutes := int(value[3]-'0')*10 + int(value[4]-'0')
	if hours >= 24 || minutes >= 60 {
		return 0, false
	}
	return hours*60 + minutes, true
}

func formatClock(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
