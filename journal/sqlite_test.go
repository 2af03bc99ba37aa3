package journal

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/indexpro/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='runs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "runs", name)
}

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	rec := sampleRecord(t, at, 7, risk.Speculative)
	require.NoError(t, j.Record(ctx, rec))

	got, err := j.Get(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, got.Time.Equal(rec.Time))
	assert.Equal(t, rec.Symbol, got.Symbol)
	assert.Equal(t, rec.Input, got.Input)
	assert.InDelta(t, rec.AllocationPercent, got.AllocationPercent, 1e-9)
	assert.InDelta(t, rec.PositionSize, got.PositionSize, 1e-9)
	assert.Equal(t, rec.Shares, got.Shares)
	assert.InDelta(t, rec.PotentialPL, got.PotentialPL, 1e-9)
	assert.Equal(t, rec.SqueezeScore, got.SqueezeScore)
	assert.InDelta(t, rec.ExpectedAlpha, got.ExpectedAlpha, 1e-9)
	assert.Equal(t, rec.Warnings, got.Warnings)
	assert.Equal(t, risk.SeverityDanger, got.TopSeverity)
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.Get(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteDuplicateID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := sampleRecord(t, time.Now(), 5, risk.Balanced)
	require.NoError(t, j.Record(ctx, rec))
	assert.Error(t, j.Record(ctx, rec))
}

func TestSQLiteListBetweenAndRecent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		day.Add(-time.Hour),     // previous day
		day.Add(9 * time.Hour),  // in range
		day.Add(15 * time.Hour), // in range
		day.Add(24 * time.Hour), // next day, excluded
	}
	var ids []string
	for _, ts := range times {
		r := sampleRecord(t, ts, 5, risk.Balanced)
		require.NoError(t, j.Record(ctx, r))
		ids = append(ids, r.ID)
	}

	recs, err := j.ListBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, ids[1], recs[0].ID)
	assert.Equal(t, ids[2], recs[1].ID)

	recent, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[3], recent[0].ID)
	assert.Equal(t, ids[2], recent[1].ID)

	none, err := j.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
