package roster

// NoPatternSet is the resolution sentinel for dates with no governing
// pattern. It is a defined value, never an error.
const NoPatternSet = "No pattern set"

// Resolve computes the assignment for a date:
//
//  1. A record flagged as a full-day override wins outright. The first
//     such record in insertion order is used - at most one is expected,
//     but legacy data may carry several.
//  2. Otherwise the pattern in force on the date drives the weekly
//     rotation.
//  3. No pattern in force yields the NoPatternSet sentinel.
//
// Non-override records for the date are not folded in here; hosts fetch
// them separately via TasksOn.
func (s *Schedule) Resolve(d Day) ResolvedAssignment {
	for _, record := range s.TasksOn(d) {
		if !record.IsAssignment {
			continue
		}
		person := record.Assignee
		if person == "" {
			person = record.Description
		}
		return ResolvedAssignment{Person: person, Note: record.Note}
	}

	pattern := s.PatternOn(d)
	person, ok := AssigneeFor(d, pattern)
	if !ok {
		return ResolvedAssignment{Person: NoPatternSet}
	}
	return ResolvedAssignment{Person: person}
}

// HasWeekendActivity reports whether the Saturday or Sunday of the week
// containing d carries any records. Hosts use this to collapse empty
// weekends in week views.
func (s *Schedule) HasWeekendActivity(d Day) bool {
	dates := d.WeekDates()
	for _, day := range dates[5:] {
		if len(s.TasksOn(day)) > 0 {
			return true
		}
	}
	return false
}
