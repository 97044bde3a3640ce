package normalize

import (
	"math"
	"strings"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"

	// SideUnknown means no rule could resolve a direction. Rows with an
	// unknown side are unusable and must be excluded from analysis.
	SideUnknown Side = ""
)

// sideTokens maps exact (upper-cased, trimmed) explicit values to a side.
// Entry/open style tokens count as buys, exit/close style tokens as sells.
var sideTokens = map[string]Side{
	"BUY": Buy, "B": Buy, "LONG": Buy, "L": Buy, "+1": Buy, "1": Buy,
	"ENTRY": Buy, "OPEN": Buy, "IN": Buy,

	"SELL": Sell, "S": Sell, "SHORT": Sell, "SH": Sell, "SL": Sell,
	"-1": Sell, "0": Sell,
	"EXIT": Sell, "CLOSE": Sell, "OUT": Sell,
}

// sideSubstrings is the fallback rule list for explicit values that are not
// exact tokens, evaluated in order.
var sideSubstrings = []struct {
	token string
	side  Side
}{
	{"LONG", Buy},
	{"SHORT", Sell},
	{"BUY", Buy},
	{"SELL", Sell},
}

// InferSide resolves BUY/SELL for a row. Rules fire in a fixed priority
// order, first match wins:
//
//  1. explicit value (exact token, then substring match)
//  2. signed quantity: negative is a sell, positive a buy
//  3. entry/exit price comparison when both are finite: an exit at or above
//     entry is taken as a closed long, below entry as a closed short
//
// When nothing matches, SideUnknown is returned; there is no default.
// Pass NaN for prices that are not available.
func InferSide(explicit string, qty, entryPrice, exitPrice float64) Side {
	if s := sideFromToken(explicit); s != SideUnknown {
		return s
	}
	if qty < 0 {
		return Sell
	}
	if qty > 0 {
		return Buy
	}
	if isFinite(entryPrice) && isFinite(exitPrice) {
		if exitPrice >= entryPrice {
			return Buy
		}
		return Sell
	}
	return SideUnknown
}

func sideFromToken(raw string) Side {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if t == "" {
		return SideUnknown
	}
	if s, ok := sideTokens[t]; ok {
		return s
	}
	for _, rule := range sideSubstrings {
		if strings.Contains(t, rule.token) {
			return rule.side
		}
	}
	return SideUnknown
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
