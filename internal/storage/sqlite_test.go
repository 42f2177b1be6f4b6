package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rr-simulator/internal/core"
	"rr-simulator/internal/responses"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRun(id string, at time.Time) *Run {
	return &Run{
		ID:          id,
		Algorithm:   "rr",
		TimeQuantum: 2,
		Processes:   core.ExampleProcesses(),
		Result: responses.ScheduleResponse{
			Algorithm:   "rr",
			TimeQuantum: 2,
			TotalTime:   19,
			Gantt:       []responses.SliceResponse{{Process: "P1", Start: 0, End: 2, Duration: 2, Color: "hsl(0, 100%, 50%)"}},
			Details:     []responses.ProcessResponse{{Name: "P1", BurstTime: 7, WaitingTime: 12, TurnAroundTime: 19, CompletionTime: 19}},
			Colors:      map[string]string{"P1": "hsl(0, 100%, 50%)"},
		},
		CreatedAt: at,
	}
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Millisecond)

	run := sampleRun("", at)
	require.NoError(t, st.SaveRun(ctx, run))
	require.NotEmpty(t, run.ID)
	assert.Equal(t, run.ID, run.Result.RunID)

	loaded, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Processes, loaded.Processes)
	assert.Equal(t, run.Result, loaded.Result)
	assert.True(t, at.Equal(loaded.CreatedAt))

	_, err = st.GetRun(ctx, "missing")
	assert.True(t, errors.Is(err, ErrRunNotFound))
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, st.SaveRun(ctx, sampleRun(id, base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "a", runs[2].ID)

	runs, err = st.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	assert.Error(t, st.SaveRun(ctx, sampleRun("a", base)), "duplicate id")
}

func TestNopStore(t *testing.T) {
	var st RunStore = NopStore{}
	assert.NoError(t, st.SaveRun(context.Background(), &Run{}))
	_, err := st.GetRun(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrDisabled))
	_, err = st.ListRuns(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrDisabled))
	assert.NoError(t, st.Close())
}
