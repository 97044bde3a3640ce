package insight

import (
	"context"
	"fmt"

	"github.com/rustyeddy/tradebook/journal"
)

// Noop is the fallback Generator when no AI service is configured.
type Noop struct{}

func (Noop) Insights(_ context.Context, trades []journal.Trade) (string, error) {
	return fmt.Sprintf("AI insights are not configured (set ANTHROPIC_API_KEY). %d trades loaded.", len(trades)), nil
}
