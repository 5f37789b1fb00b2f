package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// RECORD LIFECYCLE
// =============================================================================

func TestAddTask_GeneratesUniqueIDs(t *testing.T) {
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.June, 1)

	first := sched.AddTask(day, "Backup check", "Carol", "09:00", "", "")
	second := sched.AddTask(day, "Deploy", "", "", "", "")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, sched.TasksOn(day), 2)
}

func TestAddTask_TrimsFields(t *testing.T) {
	sched := roster.NewSchedule(nil)
	record := sched.AddTask(roster.NewDay(2024, time.June, 1), "  Deploy  ", " Carol, Dana ", " 09:00 ", "", "  note ")

	assert.Equal(t, "Deploy", record.Description)
	assert.Equal(t, "Carol, Dana", record.Assignee)
	assert.Equal(t, "09:00", record.StartTime)
	assert.Equal(t, "note", record.Note)
}

func TestUpdateTask_ReplacesInPlace(t *testing.T) {
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.June, 1)
	first := sched.AddTask(day, "Deploy", "", "", "", "")
	second := sched.AddTask(day, "Backup", "", "", "", "")

	ok := sched.UpdateTask(day, first.ID, "Deploy v2", "Carol", "10:00", "11:00", "staging first")
	require.True(t, ok)

	records := sched.TasksOn(day)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID, "position and id preserved")
	assert.Equal(t, "Deploy v2", records[0].Description)
	assert.Equal(t, second.ID, records[1].ID)
}

func TestUpdateTask_UnknownID_SilentNoOp(t *testing.T) {
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.June, 1)
	sched.AddTask(day, "Deploy", "", "", "", "")

	assert.False(t, sched.UpdateTask(day, "no-such-id", "x", "", "", "", ""))
	assert.False(t, sched.UpdateTask(roster.NewDay(2024, time.June, 2), "no-such-id", "x", "", "", "", ""))
	assert.Equal(t, "Deploy", sched.TasksOn(day)[0].Description)
}

func TestRemoveTask_LastRecordRemovesDateKey(t *testing.T) {
	// GIVEN: A date with a single record
	// WHEN: The record is removed
	// THEN: The date key itself disappears - no empty sequences persist
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.June, 1)
	record := sched.AddTask(day, "Deploy", "", "", "", "")

	assert.True(t, sched.RemoveTask(day, record.ID))
	_, exists := sched.State().DailyTasks[day.ISO()]
	assert.False(t, exists)
}

func TestRemoveTask_UnknownID_SilentNoOp(t *testing.T) {
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.June, 1)
	sched.AddTask(day, "Deploy", "", "", "", "")

	assert.False(t, sched.RemoveTask(day, "no-such-id"))
	assert.False(t, sched.RemoveTask(roster.NewDay(2024, time.June, 2), "any"))
	assert.Len(t, sched.TasksOn(day), 1)
}

// =============================================================================
// SUGGESTION SETS
// =============================================================================

func TestDescriptions_DistinctSorted(t *testing.T) {
	sched := roster.NewSchedule(nil)
	sched.AddTask(roster.NewDay(2024, time.June, 1), "Deploy", "", "", "", "")
	sched.AddTask(roster.NewDay(2024, time.June, 2), "Backup", "", "", "", "")
	sched.AddTask(roster.NewDay(2024, time.June, 3), "Deploy", "", "", "", "")
	sched.AddTask(roster.NewDay(2024, time.June, 4), "", "", "", "", "")

	assert.Equal(t, []string{"Backup", "Deploy"}, sched.Descriptions())
}

func TestAssignees_UnionsPatternAndRecords(t *testing.T) {
	// Pattern-history names and comma-joined task assignees both feed
	// the suggestion set
	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice", "Bob"}, roster.NewDay(2024, time.January, 1))
	sched.AddTask(roster.NewDay(2024, time.June, 1), "Deploy", "Carol, Dana ,", "", "", "")

	assert.Equal(t, []string{"Alice", "Bob", "Carol", "Dana"}, sched.Assignees())
}

func TestParseAssignees(t *testing.T) {
	assert.Equal(t, []string{"Carol", "Dana"}, roster.ParseAssignees(" Carol ,Dana, "))
	assert.Empty(t, roster.ParseAssignees(""))
}

// =============================================================================
// TIME SUGGESTIONS
// =============================================================================

func TestSuggestedTimes_AveragesValidSamples(t *testing.T) {
	// GIVEN: "Backup check" at 09:00 and at 11:00, no end times
	// THEN: Suggested start is the 10:00 mean, end stays empty
	sched := roster.NewSchedule(nil)
	sched.AddTask(roster.NewDay(2024, time.June, 1), "Backup check", "Carol", "09:00", "", "")
	sched.AddTask(roster.NewDay(2024, time.June, 8), "Backup check", "", "11:00", "", "")

	suggestion := sched.SuggestedTimes("Backup check")
	assert.Equal(t, "10:00", suggestion.StartTime)
	assert.Equal(t, "", suggestion.EndTime)
}

func TestSuggestedTimes_RoundsToNearestMinute(t *testing.T) {
	// 09:00 and 09:01 average to 540.5 minutes, rounding to 09:01
	sched := roster.NewSchedule(nil)
	sched.AddTask(roster.NewDay(2024, time.June, 1), "Standup", "", "09:00", "", "")
	sched.AddTask(roster.NewDay(2024, time.June, 2), "Standup", "", "09:01", "", "")

	assert.Equal(t, "09:01", sched.SuggestedTimes("Standup").StartTime)
}

func TestSuggestedTimes_InvalidSamplesExcluded(t *testing.T) {
	// Free-text and out-of-range times never reject the record; they are
	// just excluded from the average
	sched := roster.NewSchedule(nil)
	day := roster.NewDay(2024, time.June, 1)
	sched.AddTask(day, "Deploy", "", "morning", "25:00", "")
	sched.AddTask(day.AddDays(1), "Deploy", "", "9:00", "09:70", "") // one-digit hour, bad minutes
	sched.AddTask(day.AddDays(2), "Deploy", "", "08:30", "17:00", "")

	suggestion := sched.SuggestedTimes("Deploy")
	assert.Equal(t, "08:30", suggestion.StartTime)
	assert.Equal(t, "17:00", suggestion.EndTime)
}

func TestSuggestedTimes_ExactDescriptionMatch(t *testing.T) {
	// Case-sensitive, exact match - not fuzzy
	sched := roster.NewSchedule(nil)
	sched.AddTask(roster.NewDay(2024, time.June, 1), "deploy", "", "09:00", "", "")

	assert.Equal(t, "", sched.SuggestedTimes("Deploy").StartTime)
}
