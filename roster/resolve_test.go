package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// RESOLUTION - Override over rotation, sentinel for no pattern
// =============================================================================

func TestResolve_EmptyTimeline_Sentinel(t *testing.T) {
	// GIVEN: No pattern history at all
	// THEN: The sentinel value, never an error
	sched := roster.NewSchedule(nil)
	d, _ := roster.ParseDay("2025-03-10")

	resolved := sched.Resolve(d)
	assert.Equal(t, roster.ResolvedAssignment{Person: "No pattern set", Note: ""}, resolved)
}

func TestResolve_WeeklyRotation(t *testing.T) {
	// GIVEN: [Alice, Bob] effective from the 2024-01-01 epoch Monday
	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice", "Bob"}, roster.NewDay(2024, time.January, 1))

	assert.Equal(t, "Alice", sched.Resolve(roster.NewDay(2024, time.January, 1)).Person)
	assert.Equal(t, "Alice", sched.Resolve(roster.NewDay(2024, time.January, 7)).Person)
	assert.Equal(t, "Bob", sched.Resolve(roster.NewDay(2024, time.January, 8)).Person)
}

func TestResolve_OverrideBeatsRotation(t *testing.T) {
	// GIVEN: A rotation pattern AND an override record on the date
	// THEN: The override's assignee wins
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.January, 1)
	sched.AppendPattern([]string{"Alice", "Bob"}, day)
	sched.State().DailyTasks[day.ISO()] = []roster.TaskRecord{
		{ID: "t-1", Description: "Dana", Assignee: "Dana", Note: "covering", IsAssignment: true},
	}

	resolved := sched.Resolve(day)
	assert.Equal(t, "Dana", resolved.Person)
	assert.Equal(t, "covering", resolved.Note)
}

func TestResolve_OverrideFallsBackToDescription(t *testing.T) {
	// Legacy overrides may carry only a description
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.January, 1)
	sched.State().DailyTasks[day.ISO()] = []roster.TaskRecord{
		{ID: "t-1", Description: "Dana", IsAssignment: true},
	}

	assert.Equal(t, "Dana", sched.Resolve(day).Person)
}

func TestResolve_FirstOverrideWins(t *testing.T) {
	// At most one override is expected, but legacy data may carry
	// several; first in insertion order governs
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.January, 1)
	sched.State().DailyTasks[day.ISO()] = []roster.TaskRecord{
		{ID: "t-0", Description: "Deploy"},
		{ID: "t-1", Assignee: "Dana", IsAssignment: true},
		{ID: "t-2", Assignee: "Erin", IsAssignment: true},
	}

	assert.Equal(t, "Dana", sched.Resolve(day).Person)
}

func TestResolve_PlainTasksDoNotOverride(t *testing.T) {
	// Non-override records are surfaced separately, never folded into
	// the resolved person
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.January, 1)
	sched.AppendPattern([]string{"Alice"}, day)
	sched.AddTask(day, "Deploy", "Carol", "09:00", "", "")

	assert.Equal(t, "Alice", sched.Resolve(day).Person)
	assert.Len(t, sched.TasksOn(day), 1)
}

func TestResolve_PatternChangeMidHistory(t *testing.T) {
	// Retroactive queries use the pattern in force on the queried date
	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice"}, roster.NewDay(2024, time.January, 1))
	sched.AppendPattern([]string{"Bob"}, roster.NewDay(2024, time.June, 1))

	assert.Equal(t, "Alice", sched.Resolve(roster.NewDay(2024, time.March, 1)).Person)
	assert.Equal(t, "Bob", sched.Resolve(roster.NewDay(2024, time.July, 1)).Person)
}

// =============================================================================
// WEEKEND ACTIVITY
// =============================================================================

func TestHasWeekendActivity(t *testing.T) {
	sched := roster.NewSchedule(nil)
	thursday := roster.NewDay(2024, time.June, 13)

	assert.False(t, sched.HasWeekendActivity(thursday))

	// A Saturday record in the same week
	sched.AddTask(roster.NewDay(2024, time.June, 15), "On-call", "", "", "", "")
	assert.True(t, sched.HasWeekendActivity(thursday))

	// Weekday records alone don't count
	other := roster.NewSchedule(nil)
	other.AddTask(roster.NewDay(2024, time.June, 12), "Deploy", "", "", "", "")
	assert.False(t, other.HasWeekendActivity(thursday))
}
