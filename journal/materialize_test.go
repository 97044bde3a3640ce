package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/mapping"
	"github.com/rustyeddy/tradebook/normalize"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testMapping() mapping.Mapping {
	return mapping.Mapping{
		mapping.FieldDateTime: "Date",
		mapping.FieldSymbol:   "Symbol",
		mapping.FieldSide:     "Side",
		mapping.FieldQty:      "Qty",
		mapping.FieldPrice:    "Price",
		mapping.FieldPnL:      "P/L",
		mapping.FieldTags:     "Tags",
	}
}

func TestMaterializeValidRow(t *testing.T) {
	t.Parallel()

	rows := []RawRow{{
		"Date":   "2024-01-15 09:30",
		"Symbol": "nasdaq:aapl",
		"Side":   "buy",
		"Qty":    "100",
		"Price":  "$185.50",
		"P/L":    "(125.00)",
		"Tags":   "gap, news",
	}}

	trades, rep, err := Materialize(rows, testMapping(), testNow)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, 1, rep.Kept)
	assert.Equal(t, 0, rep.Dropped)

	tr := trades[0]
	assert.True(t, tr.Time.Equal(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "AAPL", tr.Symbol)
	assert.Equal(t, normalize.Buy, tr.Side)
	assert.InDelta(t, 100.0, tr.Qty, 1e-9)
	assert.InDelta(t, 185.50, tr.Price, 1e-9)
	assert.InDelta(t, -125.0, tr.PnL, 1e-9)
	assert.Equal(t, []string{"gap", "news"}, tr.Tags)
	assert.Equal(t, "", tr.Notes)
}

func TestMaterializeIncompleteMapping(t *testing.T) {
	t.Parallel()

	m := testMapping()
	delete(m, mapping.FieldPnL)

	_, _, err := Materialize(nil, m, testNow)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pnl")
}

func TestMaterializeDropsUnparseablePnL(t *testing.T) {
	t.Parallel()

	rows := []RawRow{
		{"Date": "2024-01-15", "Symbol": "AAPL", "Side": "B", "Qty": "10", "Price": "5", "P/L": "N/A"},
		{"Date": "2024-01-16", "Symbol": "AAPL", "Side": "B", "Qty": "10", "Price": "5", "P/L": "20"},
	}

	trades, rep, err := Materialize(rows, testMapping(), testNow)
	require.NoError(t, err)
	assert.Len(t, trades, 1)
	assert.Equal(t, 1, rep.Kept)
	assert.Equal(t, 1, rep.Dropped)
	assert.Equal(t, 1, rep.Reasons[DropBadNumber])
}

func TestMaterializeDropReasons(t *testing.T) {
	t.Parallel()

	rows := []RawRow{
		// bad datetime
		{"Date": "not a date", "Symbol": "AAPL", "Side": "B", "Qty": "1", "Price": "1", "P/L": "1"},
		// future datetime
		{"Date": "2030-01-01", "Symbol": "AAPL", "Side": "B", "Qty": "1", "Price": "1", "P/L": "1"},
		// empty symbol
		{"Date": "2024-01-15", "Symbol": " ", "Side": "B", "Qty": "1", "Price": "1", "P/L": "1"},
		// no side evidence at all: zero qty, no explicit value
		{"Date": "2024-01-15", "Symbol": "AAPL", "Side": "", "Qty": "0", "Price": "1", "P/L": "1"},
	}

	trades, rep, err := Materialize(rows, testMapping(), testNow)
	require.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, 4, rep.Dropped)
	assert.Equal(t, 2, rep.Reasons[DropBadTime])
	assert.Equal(t, 1, rep.Reasons[DropNoSymbol])
	assert.Equal(t, 1, rep.Reasons[DropNoSide])
}

func TestMaterializeInfersSideFromQty(t *testing.T) {
	t.Parallel()

	m := testMapping()
	delete(m, mapping.FieldSide)

	rows := []RawRow{
		{"Date": "2024-01-15", "Symbol": "AAPL", "Qty": "-50", "Price": "10", "P/L": "5"},
	}

	trades, _, err := Materialize(rows, m, testNow)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, normalize.Sell, trades[0].Side)
	assert.InDelta(t, -50.0, trades[0].Qty, 1e-9)
}

func TestMaterializeLeavesRawRowsUntouched(t *testing.T) {
	t.Parallel()

	row := RawRow{"Date": "2024-01-15", "Symbol": "aapl", "Side": "B", "Qty": "1", "Price": "1", "P/L": "1"}
	_, _, err := Materialize([]RawRow{row}, testMapping(), testNow)
	require.NoError(t, err)
	assert.Equal(t, "aapl", row["Symbol"])
}
