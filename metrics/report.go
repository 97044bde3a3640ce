package metrics

import (
	"fmt"
	"io"
)

// WriteReport renders the bundle as a plain-text performance report.
func WriteReport(w io.Writer, b Bundle) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Summary")
	fmt.Fprintln(w, "==================================================")

	if b.TotalTrades == 0 {
		fmt.Fprintln(w, "No trades.")
		return
	}

	fmt.Fprintf(w, "Trades:         %d\n", b.TotalTrades)
	fmt.Fprintf(w, "Net P/L:        %.2f\n", b.TotalPnL)
	fmt.Fprintf(w, "Win Rate:       %.2f%%\n", b.WinRate)
	fmt.Fprintf(w, "Profit Factor:  %.2f\n", b.ProfitFactor)
	fmt.Fprintf(w, "Expectancy:     %.2f\n", b.Expectancy)
	fmt.Fprintf(w, "Reward/Risk:    %.2f\n", b.RewardRisk)
	fmt.Fprintf(w, "Max Drawdown:   %.2f\n", b.MaxDrawdown)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Avg Win:        %.2f\n", b.AvgWin)
	fmt.Fprintf(w, "Avg Loss:       %.2f\n", b.AvgLoss)
	fmt.Fprintf(w, "Largest Win:    %.2f\n", b.LargestWin)
	fmt.Fprintf(w, "Largest Loss:   %.2f\n", b.LargestLoss)
	fmt.Fprintf(w, "Win Streak:     %d\n", b.MaxWinStreak)
	fmt.Fprintf(w, "Loss Streak:    %d\n", b.MaxLossStreak)

	if len(b.TradesBySymbol) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By Symbol")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, s := range b.TradesBySymbol {
			fmt.Fprintf(w, "%-12s %5d trades  %10.2f\n", s.Symbol, s.Trades, s.PnL)
		}
	}

	if len(b.TradesByDay) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By Day")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, d := range b.TradesByDay {
			fmt.Fprintf(w, "%-12s %5d trades  %10.2f\n", d.Day, d.Trades, d.PnL)
		}
	}

	if len(b.TimeData) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By Time of Day")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, tb := range b.TimeData {
			fmt.Fprintf(w, "%-12s %5d trades  %10.2f\n", tb.Time, tb.Trades, tb.PnL)
		}
	}

	fmt.Fprintln(w)
}
