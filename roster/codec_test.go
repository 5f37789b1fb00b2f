package roster_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// CANONICAL ROUND-TRIP
// =============================================================================

func TestSerialize_RoundTripLossless(t *testing.T) {
	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice", "Bob", "Alice"}, roster.NewDay(2024, time.January, 1))
	sched.AppendPattern([]string{"Bob"}, roster.NewDay(2024, time.June, 1))
	day := roster.NewDay(2024, time.March, 10)
	sched.AddTask(day, "Deploy", "Carol, Dana", "09:00", "17:30", "staging first")
	sched.AddTask(day, "Backup", "", "", "", "")

	raw, err := roster.Serialize(sched.State())
	require.NoError(t, err)

	restored, err := roster.Deserialize(raw)
	require.NoError(t, err)
	assert.Equal(t, sched.State(), restored)

	// Idempotent: a second round-trip produces identical bytes
	again, err := roster.Serialize(restored)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestSerialize_EmptyState(t *testing.T) {
	raw, err := roster.Serialize(roster.NewState())
	require.NoError(t, err)
	assert.JSONEq(t, `{"patternHistory":[],"dailyTasks":{}}`, string(raw))

	restored, err := roster.Deserialize(raw)
	require.NoError(t, err)
	assert.NotNil(t, restored.PatternHistory)
	assert.NotNil(t, restored.DailyTasks)
}

func TestDeserialize_Malformed(t *testing.T) {
	_, err := roster.Deserialize([]byte(`[1,2`))
	assert.ErrorIs(t, err, roster.ErrMalformedInput)
}

func TestExportJSON_PrettyPrinted(t *testing.T) {
	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice"}, roster.NewDay(2024, time.January, 1))

	raw, err := roster.ExportJSON(sched.State())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "\n  "), "export is indented")

	restored, err := roster.Deserialize(raw)
	require.NoError(t, err)
	assert.Equal(t, sched.State(), restored)
}

// =============================================================================
// SHARE-LINK ENCODING
// =============================================================================

func TestShare_RoundTrip(t *testing.T) {
	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice", "Bob"}, roster.NewDay(2024, time.January, 1))
	sched.AddTask(roster.NewDay(2024, time.March, 10), "Deploy", "Carol", "09:00", "", "")

	encoded, err := roster.EncodeShare(sched.State())
	require.NoError(t, err)

	restored, err := roster.DecodeShare(encoded)
	require.NoError(t, err)
	assert.Equal(t, sched.State(), restored)
}

func TestDecodeShare_LegacyPayload(t *testing.T) {
	// Links minted by older versions carry older generations; decode
	// runs the migrator
	legacy := []byte(`{"pattern": ["Alice"]}`)
	encoded := base64encode(legacy)

	restored, err := roster.DecodeShare(encoded)
	require.NoError(t, err)
	require.Len(t, restored.PatternHistory, 1)
	assert.Equal(t, []string{"Alice"}, restored.PatternHistory[0].Pattern)
}

func TestDecodeShare_BadBase64(t *testing.T) {
	_, err := roster.DecodeShare("%%%not-base64%%%")
	assert.ErrorIs(t, err, roster.ErrMalformedInput)
}

func base64encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// =============================================================================
// VIEW MODE FLAG
// =============================================================================

func TestViewModeFromQuery(t *testing.T) {
	assert.True(t, roster.ViewModeFromQuery("true", ""))
	assert.True(t, roster.ViewModeFromQuery("", "dashboard"))
	assert.False(t, roster.ViewModeFromQuery("", ""))
	assert.False(t, roster.ViewModeFromQuery("1", ""))
	assert.False(t, roster.ViewModeFromQuery("false", "calendar"))
}
