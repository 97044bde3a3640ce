package journal

import (
	"math"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/mapping"
	"github.com/rustyeddy/tradebook/normalize"
)

// DropReason classifies why a row was excluded from the trade set.
type DropReason string

const (
	DropBadNumber DropReason = "bad_number" // qty, price or pnl unparseable
	DropBadTime   DropReason = "bad_time"   // datetime missing, unparseable or out of range
	DropNoSymbol  DropReason = "no_symbol"  // symbol empty after normalization
	DropNoSide    DropReason = "no_side"    // side could not be inferred
)

// Report counts kept vs dropped rows for one materialization pass. Rows are
// dropped silently per-row; only these aggregate counts surface to the user.
type Report struct {
	Kept    int
	Dropped int
	Reasons map[DropReason]int
}

// Materialize applies a confirmed mapping to every raw row and returns the
// trades that survive validation. It is pure: no I/O, a fresh slice, raw rows
// untouched. The only call-level error is an incomplete mapping, checked
// before any row is read; everything after that is per-row filtering.
//
// A row is dropped, never zero-filled, when a required numeric field fails to
// parse, the timestamp is unusable, the symbol is empty, or no side can be
// inferred.
func Materialize(rows []RawRow, m mapping.Mapping, now time.Time) ([]Trade, Report, error) {
	if err := mapping.Validate(m); err != nil {
		return nil, Report{}, err
	}

	rep := Report{Reasons: map[DropReason]int{}}
	drop := func(r DropReason) {
		rep.Dropped++
		rep.Reasons[r]++
	}

	trades := make([]Trade, 0, len(rows))
	for _, row := range rows {
		cell := func(f mapping.Field) string {
			h, ok := m.Header(f)
			if !ok {
				return ""
			}
			return strings.TrimSpace(row[h])
		}

		qty, err := normalize.ParseNumber(cell(mapping.FieldQty))
		if err != nil {
			drop(DropBadNumber)
			continue
		}
		price, err := normalize.ParseNumber(cell(mapping.FieldPrice))
		if err != nil {
			drop(DropBadNumber)
			continue
		}
		pnl, err := normalize.ParseNumber(cell(mapping.FieldPnL))
		if err != nil {
			drop(DropBadNumber)
			continue
		}

		ts, err := normalize.ParseTime(cell(mapping.FieldDateTime), now)
		if err != nil {
			drop(DropBadTime)
			continue
		}

		symbol := normalize.Symbol(cell(mapping.FieldSymbol))
		if symbol == "" {
			drop(DropNoSymbol)
			continue
		}

		// Entry/exit prices are not canonical fields, so side inference
		// here runs on the explicit cell and the signed quantity only.
		nan := math.NaN()
		side := normalize.InferSide(cell(mapping.FieldSide), qty, nan, nan)
		if side == normalize.SideUnknown {
			drop(DropNoSide)
			continue
		}

		rep.Kept++
		trades = append(trades, Trade{
			Time:       ts,
			Symbol:     symbol,
			Side:       side,
			Qty:        qty,
			Price:      price,
			PnL:        pnl,
			Notes:      cell(mapping.FieldNotes),
			Strategy:   cell(mapping.FieldStrategy),
			Tags:       normalize.SplitTags(cell(mapping.FieldTags)),
			BuyFillID:  cell(mapping.FieldBuyFillID),
			SellFillID: cell(mapping.FieldSellFillID),
			ImageURL:   cell(mapping.FieldImageURL),
		})
	}
	return trades, rep, nil
}
