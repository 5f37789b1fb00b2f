package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/roster-engine/roster"
	"github.com/warp/roster-engine/roster/store"
)

func TestMemory_SaveLoadExists(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	// Missing key: (nil, nil), absence is not an error
	state, err := m.Load(ctx, "opsPlanning")
	require.NoError(t, err)
	assert.Nil(t, state)

	exists, err := m.Exists(ctx, "opsPlanning")
	require.NoError(t, err)
	assert.False(t, exists)

	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice"}, roster.NewDay(2024, time.January, 1))
	require.NoError(t, m.Save(ctx, "opsPlanning", sched.State()))

	loaded, err := m.Load(ctx, "opsPlanning")
	require.NoError(t, err)
	assert.Equal(t, sched.State(), loaded)

	exists, err = m.Exists(ctx, "opsPlanning")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemory_LoadedStateIsIndependent(t *testing.T) {
	// Mutating a loaded state must not leak back into the store
	m := store.NewMemory()
	ctx := context.Background()

	sched := roster.NewSchedule(nil)
	sched.AppendPattern([]string{"Alice"}, roster.NewDay(2024, time.January, 1))
	require.NoError(t, m.Save(ctx, "k", sched.State()))

	first, err := m.Load(ctx, "k")
	require.NoError(t, err)
	roster.NewSchedule(first).AddPerson("Bob")

	second, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Len(t, second.PatternHistory, 1)
}
