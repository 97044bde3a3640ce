// Package metrics derives the trading-performance statistics bundle from a
// list of normalized trades. Compute is a pure function: it re-sorts its
// input internally, keeps no state between calls, and always returns the
// same bundle for the same trade set regardless of input order.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// profitFactorCap stands in for "infinite" when there are profits and no
// losses at all.
const profitFactorCap = 9999

// EquityPoint is one step of the cumulative pnl curve, 1-based by trade
// order after the internal datetime sort.
type EquityPoint struct {
	Trade  int     `json:"trade"`
	Equity float64 `json:"equity"`
}

// TimeBucket aggregates trades sharing an HH:MM time of day.
type TimeBucket struct {
	Time   string  `json:"time"`
	Trades int     `json:"trades"`
	PnL    float64 `json:"pnl"`
}

// DayBucket aggregates trades by weekday.
type DayBucket struct {
	Day    string  `json:"day"`
	Trades int     `json:"trades"`
	PnL    float64 `json:"pnl"`
}

// SymbolBucket aggregates trades by symbol.
type SymbolBucket struct {
	Symbol string  `json:"symbol"`
	Trades int     `json:"trades"`
	PnL    float64 `json:"pnl"`
}

// Bundle is the full statistics set. All floats are rounded to 2 decimals
// for presentation stability.
type Bundle struct {
	TotalPnL      float64 `json:"total_pnl"`
	TotalTrades   int     `json:"total_trades"`
	WinRate       float64 `json:"win_rate"`
	AvgWin        float64 `json:"avg_win"`
	AvgLoss       float64 `json:"avg_loss"`
	MaxDrawdown   float64 `json:"max_drawdown"`
	ProfitFactor  float64 `json:"profit_factor"`
	LargestWin    float64 `json:"largest_win"`
	LargestLoss   float64 `json:"largest_loss"`
	MaxWinStreak  int     `json:"max_win_streak"`
	MaxLossStreak int     `json:"max_loss_streak"`
	Expectancy    float64 `json:"expectancy"`
	RewardRisk    float64 `json:"reward_risk_ratio"`

	EquityCurve    []EquityPoint  `json:"equity_curve"`
	TimeData       []TimeBucket   `json:"time_data"`
	TradesByDay    []DayBucket    `json:"trades_by_day"`
	TradesBySymbol []SymbolBucket `json:"trades_by_symbol"`
}

type bucket struct {
	trades int
	pnl    float64
}

// Compute recalculates the whole bundle from scratch in a single pass over
// the trades, stably sorted by time ascending (ties keep input order).
//
// Breakeven trades (pnl == 0) count toward neither wins nor losses and
// reset both streak counters. Symbol buckets are ordered by descending pnl,
// ties alphabetical.
func Compute(trades []journal.Trade) Bundle {
	b := Bundle{
		EquityCurve:    []EquityPoint{},
		TimeData:       []TimeBucket{},
		TradesByDay:    []DayBucket{},
		TradesBySymbol: []SymbolBucket{},
	}
	if len(trades) == 0 {
		return b
	}

	sorted := make([]journal.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	var (
		cum, peak, maxDD        float64
		grossProfit, grossLoss  float64
		wins, losses            int
		winStreak, lossStreak   int
		largestWin, largestLoss float64
	)
	byTime := map[string]*bucket{}
	byDay := map[time.Weekday]*bucket{}
	bySymbol := map[string]*bucket{}

	for i, t := range sorted {
		cum += t.PnL
		if cum > peak {
			peak = cum
		}
		if dd := peak - cum; dd > maxDD {
			maxDD = dd
		}
		b.EquityCurve = append(b.EquityCurve, EquityPoint{Trade: i + 1, Equity: round2(cum)})

		switch {
		case t.PnL > 0:
			wins++
			grossProfit += t.PnL
			winStreak++
			lossStreak = 0
			if t.PnL > largestWin {
				largestWin = t.PnL
			}
		case t.PnL < 0:
			losses++
			grossLoss += -t.PnL
			lossStreak++
			winStreak = 0
			if t.PnL < largestLoss {
				largestLoss = t.PnL
			}
		default:
			winStreak = 0
			lossStreak = 0
		}
		if winStreak > b.MaxWinStreak {
			b.MaxWinStreak = winStreak
		}
		if lossStreak > b.MaxLossStreak {
			b.MaxLossStreak = lossStreak
		}

		accumulate(byTime, t.Time.Format("15:04"), t.PnL)
		accumulate(byDay, t.Time.Weekday(), t.PnL)
		accumulate(bySymbol, t.Symbol, t.PnL)
	}

	total := len(sorted)
	b.TotalTrades = total
	b.TotalPnL = round2(cum)
	b.WinRate = round2(float64(wins) / float64(total) * 100)
	b.MaxDrawdown = round2(maxDD)
	b.LargestWin = round2(largestWin)
	b.LargestLoss = round2(largestLoss)

	avgWin, avgLoss := 0.0, 0.0
	if wins > 0 {
		avgWin = grossProfit / float64(wins)
	}
	if losses > 0 {
		avgLoss = -grossLoss / float64(losses)
	}
	b.AvgWin = round2(avgWin)
	b.AvgLoss = round2(avgLoss)

	switch {
	case grossLoss > 0:
		b.ProfitFactor = round2(grossProfit / grossLoss)
	case grossProfit > 0:
		b.ProfitFactor = profitFactorCap
	}

	winFrac := float64(wins) / float64(total)
	b.Expectancy = round2(winFrac*avgWin - (1-winFrac)*math.Abs(avgLoss))
	if avgLoss != 0 {
		b.RewardRisk = round2(avgWin / math.Abs(avgLoss))
	}

	b.TimeData = timeBuckets(byTime)
	b.TradesByDay = dayBuckets(byDay)
	b.TradesBySymbol = symbolBuckets(bySymbol)
	return b
}

func accumulate[K comparable](m map[K]*bucket, k K, pnl float64) {
	agg := m[k]
	if agg == nil {
		agg = &bucket{}
		m[k] = agg
	}
	agg.trades++
	agg.pnl += pnl
}

func timeBuckets(m map[string]*bucket) []TimeBucket {
	out := make([]TimeBucket, 0, len(m))
	for k, agg := range m {
		out = append(out, TimeBucket{Time: k, Trades: agg.trades, PnL: round2(agg.pnl)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// dayBuckets keeps the canonical Sunday-to-Saturday order and only emits
// days that saw trades.
func dayBuckets(m map[time.Weekday]*bucket) []DayBucket {
	out := make([]DayBucket, 0, len(m))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if agg, ok := m[wd]; ok {
			out = append(out, DayBucket{Day: wd.String(), Trades: agg.trades, PnL: round2(agg.pnl)})
		}
	}
	return out
}

func symbolBuckets(m map[string]*bucket) []SymbolBucket {
	out := make([]SymbolBucket, 0, len(m))
	for k, agg := range m {
		out = append(out, SymbolBucket{Symbol: k, Trades: agg.trades, PnL: round2(agg.pnl)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PnL != out[j].PnL {
			return out[i].PnL > out[j].PnL
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
