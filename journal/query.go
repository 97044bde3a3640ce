package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/normalize"
)

const tradeColumns = `time, symbol, side, qty, price, pnl,
	notes, strategy, tags, buy_fill_id, sell_fill_id, image_url`

// ListImports returns all import batches, newest first.
func (s *SQLite) ListImports() ([]ImportBatch, error) {
	rows, err := s.db.Query(`
		SELECT import_id, created, source, kept, dropped
		FROM imports
		ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ImportBatch
	for rows.Next() {
		var b ImportBatch
		if err := rows.Scan(&b.ImportID, &b.Created, &b.Source, &b.Kept, &b.Dropped); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetImport returns a single batch by id.
func (s *SQLite) GetImport(importID string) (ImportBatch, error) {
	var b ImportBatch
	err := s.db.QueryRow(`
		SELECT import_id, created, source, kept, dropped
		FROM imports
		WHERE import_id = ?`, importID).
		Scan(&b.ImportID, &b.Created, &b.Source, &b.Kept, &b.Dropped)
	if err == sql.ErrNoRows {
		return ImportBatch{}, fmt.Errorf("import %q not found", importID)
	}
	if err != nil {
		return ImportBatch{}, err
	}
	return b, nil
}

// ListTrades returns every stored trade ordered by time ascending.
func (s *SQLite) ListTrades() ([]Trade, error) {
	return s.queryTrades(`
		SELECT `+tradeColumns+`
		FROM trades
		ORDER BY time ASC`)
}

// ListTradesByImport returns the trades of one import batch.
func (s *SQLite) ListTradesByImport(importID string) ([]Trade, error) {
	return s.queryTrades(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE import_id = ?
		ORDER BY time ASC`, importID)
}

// ListTradesBetween returns trades with time within [start, end).
func (s *SQLite) ListTradesBetween(start, end time.Time) ([]Trade, error) {
	return s.queryTrades(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
}

func (s *SQLite) queryTrades(query string, args ...any) ([]Trade, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		var t Trade
		var side, tags string
		err := rows.Scan(
			&t.Time, &t.Symbol, &side, &t.Qty, &t.Price, &t.PnL,
			&t.Notes, &t.Strategy, &tags,
			&t.BuyFillID, &t.SellFillID, &t.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		t.Side = normalize.Side(side)
		t.Tags = normalize.SplitTags(tags)
		out = append(out, t)
	}
	return out, rows.Err()
}
