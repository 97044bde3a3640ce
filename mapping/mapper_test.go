package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeCommonHeaders(t *testing.T) {
	t.Parallel()

	headers := []string{"Date", "Ticker", "Action", "Quantity", "Price", "P/L", "Notes"}
	m := Propose(headers, nil)

	assert.Equal(t, "Date", m[FieldDateTime])
	assert.Equal(t, "Ticker", m[FieldSymbol])
	assert.Equal(t, "Action", m[FieldSide])
	assert.Equal(t, "Quantity", m[FieldQty])
	assert.Equal(t, "Price", m[FieldPrice])
	assert.Equal(t, "P/L", m[FieldPnL])
	assert.Equal(t, "Notes", m[FieldNotes])
}

func TestProposeExactFieldID(t *testing.T) {
	t.Parallel()

	// A header literally named after the canonical field always maps to it.
	m := Propose([]string{"pnl", "qty", "symbol", "datetime", "price"}, nil)
	assert.Equal(t, "pnl", m[FieldPnL])
	assert.Equal(t, "qty", m[FieldQty])
	assert.Equal(t, "symbol", m[FieldSymbol])
	assert.Equal(t, "datetime", m[FieldDateTime])
	assert.Empty(t, m.MissingRequired())
}

func TestProposeIdempotent(t *testing.T) {
	t.Parallel()

	headers := []string{"Timestamp", "Instrument", "Size", "Fill Price", "Profit/Loss"}
	assert.Equal(t, Propose(headers, nil), Propose(headers, nil))
}

func TestProposeFirstHeaderWins(t *testing.T) {
	t.Parallel()

	// Two datetime candidates: the earlier header takes the field.
	m := Propose([]string{"Date", "Timestamp"}, nil)
	assert.Equal(t, "Date", m[FieldDateTime])
}

func TestProposeNoEvidenceLeavesUnmapped(t *testing.T) {
	t.Parallel()

	m := Propose([]string{"Foo", "Bar"}, nil)
	_, ok := m.Header(FieldPnL)
	assert.False(t, ok)
	assert.Len(t, m.MissingRequired(), len(Required))
}

func TestProposePriorMappingWins(t *testing.T) {
	t.Parallel()

	prior := Mapping{FieldPnL: "Net Result"}
	m := Propose([]string{"P/L", "Date", "Symbol"}, prior)

	// The confirmed entry is not re-guessed even though "P/L" would match.
	assert.Equal(t, "Net Result", m[FieldPnL])
	assert.Equal(t, "Date", m[FieldDateTime])
}

func TestValidate(t *testing.T) {
	t.Parallel()

	m := Propose([]string{"Date", "Symbol", "Qty", "Price", "PnL"}, nil)
	assert.NoError(t, Validate(m))

	err := Validate(Mapping{FieldDateTime: "Date"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pnl")
}

func TestSignature(t *testing.T) {
	t.Parallel()

	a := Signature([]string{"Date", "Symbol", "PnL"})
	b := Signature([]string{"pnl", "date", "symbol"}) // order/case insensitive
	c := Signature([]string{"Date", "Symbol"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMappingFileRoundTrip(t *testing.T) {
	t.Parallel()

	m := Propose([]string{"Date", "Symbol", "Qty", "Price", "P/L"}, nil)

	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, m.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}
