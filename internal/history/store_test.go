package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAssignsIDAndTime(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before := time.Now().UTC()
	e, err := s.Record(ctx, Entry{Expression: "1+2", Postfix: "1 2 + ", Result: "3"})
	require.NoError(t, err)

	parsed, err := uuid.Parse(e.ID)
	require.NoError(t, err, "ID should be a UUID")
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.False(t, e.CreatedAt.Before(before.Add(-time.Second)))
	assert.Equal(t, time.UTC, e.CreatedAt.Location())

	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "1+2", got.Expression)
	assert.Equal(t, "1 2 + ", got.Postfix)
	assert.Equal(t, "3", got.Result)
	assert.Empty(t, got.Error)
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt), "want %v, got %v", e.CreatedAt, got.CreatedAt)
}

func TestRecordKeepsGivenFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e, err := s.Record(ctx, Entry{ID: "fixed", Expression: "+", Postfix: "+ ", Error: "1: stack underflow", CreatedAt: at})
	require.NoError(t, err)
	assert.Equal(t, "fixed", e.ID)
	assert.True(t, at.Equal(e.CreatedAt))

	_, err = s.Record(ctx, Entry{ID: "fixed", Expression: "2"})
	assert.Error(t, err, "duplicate IDs are rejected")
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, expr := range []string{"1", "2", "3", "4"} {
		_, err := s.Record(ctx, Entry{Expression: expr, Result: expr})
		require.NoError(t, err)
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "4", all[0].Expression)
	assert.Equal(t, "1", all[3].Expression)

	some, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "4", some[0].Expression)
	assert.Equal(t, "3", some[1].Expression)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Record(ctx, Entry{Expression: "1"})
		require.NoError(t, err)
	}
	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReopenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	e, err := s.Record(ctx, Entry{Expression: "2r8", Result: "2.8284271247461903"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "2.8284271247461903", got.Result)
}
