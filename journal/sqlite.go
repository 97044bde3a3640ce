package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/pkg/id"
)

// SQLite persists normalized trades under import batch ids.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// SaveImport stores a batch and its trades in one transaction. Each trade
// gets a fresh ULID; the batch id is assigned here when empty.
func (s *SQLite) SaveImport(batch ImportBatch, trades []Trade) (ImportBatch, error) {
	if batch.ImportID == "" {
		batch.ImportID = id.New()
	}
	if batch.Created.IsZero() {
		batch.Created = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return ImportBatch{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO imports (import_id, created, source, kept, dropped)
		VALUES (?, ?, ?, ?, ?)`,
		batch.ImportID, batch.Created, batch.Source, batch.Kept, batch.Dropped,
	)
	if err != nil {
		return ImportBatch{}, fmt.Errorf("insert import: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades
		(trade_id, import_id, time, symbol, side, qty, price, pnl,
		 notes, strategy, tags, buy_fill_id, sell_fill_id, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ImportBatch{}, err
	}
	defer stmt.Close()

	for _, t := range trades {
		_, err := stmt.Exec(
			id.New(), batch.ImportID, t.Time, t.Symbol, string(t.Side),
			t.Qty, t.Price, t.PnL, t.Notes, t.Strategy,
			strings.Join(t.Tags, ","), t.BuyFillID, t.SellFillID, t.ImageURL,
		)
		if err != nil {
			return ImportBatch{}, fmt.Errorf("insert trade: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportBatch{}, err
	}
	return batch, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
