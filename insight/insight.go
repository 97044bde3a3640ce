// Package insight hands normalized trades to an external text-generation
// service and returns its free-text observations. The service contract is
// opaque: nothing here inspects or validates the generated text.
package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/tradebook/journal"
)

// Generator produces free-text insights for a trade list.
type Generator interface {
	Insights(ctx context.Context, trades []journal.Trade) (string, error)
}

// BuildPrompt renders at most maxTrades trades (a prefix of the list) into
// the user prompt sent to the service. maxTrades <= 0 means no cap.
func BuildPrompt(trades []journal.Trade, maxTrades int) (string, error) {
	if maxTrades > 0 && len(trades) > maxTrades {
		trades = trades[:maxTrades]
	}
	payload, err := json.Marshal(trades)
	if err != nil {
		return "", fmt.Errorf("marshal trades: %w", err)
	}
	return fmt.Sprintf(
		"Here are %d trades from my journal as JSON:\n%s\n\n"+
			"Point out patterns in my trading: what is working, what is costing money, "+
			"and two concrete habits to change. Keep it under 300 words.",
		len(trades), payload,
	), nil
}
