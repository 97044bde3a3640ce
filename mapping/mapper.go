// Package mapping guesses which raw CSV header feeds each canonical trade
// field. The proposal is a pure function of the header list (plus an optional
// previously confirmed mapping), so callers that want caching can key a cache
// of their own on Signature.
package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// Field identifies a canonical trade field.
type Field string

const (
	FieldDateTime   Field = "datetime"
	FieldSymbol     Field = "symbol"
	FieldSide       Field = "side"
	FieldQty        Field = "qty"
	FieldPrice      Field = "price"
	FieldPnL        Field = "pnl"
	FieldNotes      Field = "notes"
	FieldStrategy   Field = "strategy"
	FieldTags       Field = "tags"
	FieldBuyFillID  Field = "buyFillId"
	FieldSellFillID Field = "sellFillId"
	FieldImageURL   Field = "image_url"
)

// Fields lists every canonical field in proposal order.
var Fields = []Field{
	FieldDateTime, FieldSymbol, FieldSide, FieldQty, FieldPrice, FieldPnL,
	FieldNotes, FieldStrategy, FieldTags, FieldBuyFillID, FieldSellFillID,
	FieldImageURL,
}

// Required are the fields that must be mapped before rows can be
// materialized. Side is not required because it can be inferred.
var Required = []Field{FieldDateTime, FieldSymbol, FieldQty, FieldPrice, FieldPnL}

// Mapping is a lookup table from canonical field to raw CSV header. A missing
// or empty entry means the field is unmapped.
type Mapping map[Field]string

// Header returns the raw header mapped to f, if any.
func (m Mapping) Header(f Field) (string, bool) {
	h, ok := m[f]
	if !ok || h == "" {
		return "", false
	}
	return h, true
}

// MissingRequired lists required fields that have no header yet.
func (m Mapping) MissingRequired() []Field {
	var missing []Field
	for _, f := range Required {
		if _, ok := m.Header(f); !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

var fieldLabels = map[Field]string{
	FieldDateTime:   "Date/Time",
	FieldSymbol:     "Symbol",
	FieldSide:       "Side",
	FieldQty:        "Quantity",
	FieldPrice:      "Price",
	FieldPnL:        "P&L",
	FieldNotes:      "Notes",
	FieldStrategy:   "Strategy",
	FieldTags:       "Tags",
	FieldBuyFillID:  "Buy Fill ID",
	FieldSellFillID: "Sell Fill ID",
	FieldImageURL:   "Image URL",
}

// extraSynonyms extends each field's synonym set beyond its id and label.
var extraSynonyms = map[Field][]string{
	FieldDateTime: {
		"date", "time", "timestamp", "execution time", "date/time",
		"trade date", "open time", "close time", "entry time", "exit time",
		"filled time",
	},
	FieldSymbol: {"ticker", "instrument", "security", "asset", "market", "product"},
	FieldSide:   {"action", "type", "direction", "buy/sell", "b/s", "order type", "trade type"},
	FieldQty: {
		"quantity", "size", "amount", "shares", "contracts", "units",
		"volume", "lots", "qty filled",
	},
	FieldPrice: {
		"avg price", "average price", "fill price", "entry price",
		"exec price", "price per share",
	},
	FieldPnL: {
		"profit", "loss", "p&l", "p/l", "profit/loss", "net p&l", "net pnl",
		"realized p&l", "realized pl", "gain/loss",
	},
	FieldNotes:      {"note", "comment", "comments", "description", "memo"},
	FieldStrategy:   {"setup", "system", "playbook", "model"},
	FieldTags:       {"tag", "label", "labels"},
	FieldBuyFillID:  {"buy fill id", "entry id", "open id", "buy order id"},
	FieldSellFillID: {"sell fill id", "exit id", "close id", "sell order id"},
	FieldImageURL:   {"image", "image url", "screenshot", "chart", "img"},
}

// Propose builds a mapping for the given headers. A non-empty prior mapping
// is taken as confirmed: its entries carry over untouched and only unfilled
// fields are guessed. For each unfilled field the first header (in original
// order) whose trimmed, lower-cased form matches a synonym wins. Fields with
// no matching header are left unmapped; the mapper never invents evidence.
//
// Propose is pure and idempotent.
func Propose(headers []string, prior Mapping) Mapping {
	m := Mapping{}
	for f, h := range prior {
		if h != "" {
			m[f] = h
		}
	}
	for _, f := range Fields {
		if _, ok := m[f]; ok {
			continue
		}
		syn := synonymSet(f)
		for _, h := range headers {
			if syn[canonicalize(h)] {
				m[f] = h
				break
			}
		}
	}
	return m
}

// Signature returns a stable cache key for a header set: order and case
// insensitive, so re-reads of the same export hit the same cache entry.
func Signature(headers []string) string {
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = canonicalize(h)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1f")
}

func canonicalize(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func synonymSet(f Field) map[string]bool {
	label := fieldLabels[f]
	set := map[string]bool{}
	set[strings.ToLower(string(f))] = true
	set[strings.ToLower(label)] = true
	set[strings.ToLower(strings.ReplaceAll(label, " ", ""))] = true
	for _, s := range extraSynonyms[f] {
		set[s] = true
	}
	return set
}

// Validate returns an error naming the unmapped required fields, or nil.
func Validate(m Mapping) error {
	missing := m.MissingRequired()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return fmt.Errorf("mapping incomplete: missing required fields %s",
		strings.Join(names, ", "))
}
