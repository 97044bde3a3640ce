package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/normalize"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "tradebook.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTrades() []Trade {
	return []Trade{
		{
			Time:   time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			Symbol: "AAPL",
			Side:   normalize.Buy,
			Qty:    100,
			Price:  185.5,
			PnL:    125,
			Tags:   []string{"gap"},
		},
		{
			Time:   time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
			Symbol: "MSFT",
			Side:   normalize.Sell,
			Qty:    -50,
			Price:  400,
			PnL:    -60,
			Notes:  "stopped out",
		},
	}
}

func TestSaveImportAndListTrades(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	batch, err := s.SaveImport(ImportBatch{Source: "export.csv", Kept: 2, Dropped: 1}, sampleTrades())
	require.NoError(t, err)
	assert.NotEmpty(t, batch.ImportID)
	assert.False(t, batch.Created.IsZero())

	trades, err := s.ListTrades()
	require.NoError(t, err)
	require.Len(t, trades, 2)

	// ordered by time ascending
	assert.Equal(t, "AAPL", trades[0].Symbol)
	assert.Equal(t, normalize.Buy, trades[0].Side)
	assert.InDelta(t, 125.0, trades[0].PnL, 1e-9)
	assert.Equal(t, []string{"gap"}, trades[0].Tags)
	assert.Equal(t, "stopped out", trades[1].Notes)
}

func TestListTradesByImport(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	first, err := s.SaveImport(ImportBatch{Source: "a.csv", Kept: 2}, sampleTrades())
	require.NoError(t, err)
	_, err = s.SaveImport(ImportBatch{Source: "b.csv", Kept: 2}, sampleTrades())
	require.NoError(t, err)

	trades, err := s.ListTradesByImport(first.ImportID)
	require.NoError(t, err)
	assert.Len(t, trades, 2)

	all, err := s.ListTrades()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListTradesBetween(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, err := s.SaveImport(ImportBatch{Source: "a.csv", Kept: 2}, sampleTrades())
	require.NoError(t, err)

	start := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	trades, err := s.ListTradesBetween(start, end)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "MSFT", trades[0].Symbol)
}

func TestGetImport(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	batch, err := s.SaveImport(ImportBatch{Source: "a.csv", Kept: 2, Dropped: 3}, sampleTrades())
	require.NoError(t, err)

	got, err := s.GetImport(batch.ImportID)
	require.NoError(t, err)
	assert.Equal(t, "a.csv", got.Source)
	assert.Equal(t, 2, got.Kept)
	assert.Equal(t, 3, got.Dropped)

	_, err = s.GetImport("nope")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListImportsNewestFirst(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	older := ImportBatch{Source: "old.csv", Created: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := ImportBatch{Source: "new.csv", Created: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}
	_, err := s.SaveImport(older, nil)
	require.NoError(t, err)
	_, err = s.SaveImport(newer, nil)
	require.NoError(t, err)

	batches, err := s.ListImports()
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "new.csv", batches[0].Source)
}
