// Package journal turns raw broker CSV rows into normalized trade records
// and persists them. Materialization is pure; the SQLite store is the only
// part that touches disk.
package journal

import (
	"time"

	"github.com/rustyeddy/tradebook/normalize"
)

// RawRow is one decoded CSV line, keyed by raw header. Rows are ephemeral:
// they exist between CSV decoding and materialization and are never mutated.
type RawRow map[string]string

// Trade is the canonical unit of downstream analysis. A Trade is built once
// from a valid raw row and never mutated afterwards.
type Trade struct {
	Time     time.Time      `json:"datetime"`
	Symbol   string         `json:"symbol"`
	Side     normalize.Side `json:"side"`
	Qty      float64        `json:"qty"`
	Price    float64        `json:"price"`
	PnL      float64        `json:"pnl"`
	Notes    string         `json:"notes"`
	Strategy string         `json:"strategy,omitempty"`
	Tags     []string       `json:"tags,omitempty"`

	// Fill ids are opaque; they exist only so duplicate detection can run
	// outside this package.
	BuyFillID  string `json:"buyFillId,omitempty"`
	SellFillID string `json:"sellFillId,omitempty"`

	ImageURL string `json:"image_url,omitempty"`
}

// ImportBatch records one import run: where the rows came from and how many
// survived filtering. The ID is assigned by the store, not by materialization.
type ImportBatch struct {
	ImportID string
	Created  time.Time
	Source   string
	Kept     int
	Dropped  int
}
