package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, st.Close()) })
	return st
}

func TestStore_OpenCreatesDatabase(t *testing.T) {
	st := openTestStore(t)

	entries, err := st.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	st1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st1.Close())

	st2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st2.Close())
}

func TestStore_RecordAndRecent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Record(ctx, Conversion{
		Input: "42", FromBase: 10, ToBase: 2, Precision: 50, Output: "101010", Exact: true,
	}))
	require.NoError(t, st.Record(ctx, Conversion{
		Input: "3.14159", FromBase: 10, ToBase: 2, Precision: 30,
		Output: "11.001001000011111100111110000000", Exact: false,
	}))

	entries, err := st.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "3.14159", entries[0].Input)
	assert.False(t, entries[0].Exact)
	assert.Equal(t, "42", entries[1].Input)
	assert.True(t, entries[1].Exact)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, st.Record(ctx, Conversion{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Input:     "1", FromBase: 10, ToBase: 2, Precision: 0, Output: "1", Exact: true,
		}))
	}

	entries, err := st.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestStore_Clear(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Record(ctx, Conversion{
		Input: "42", FromBase: 10, ToBase: 2, Precision: 50, Output: "101010", Exact: true,
	}))

	removed, err := st.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	entries, err := st.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
