package insight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/normalize"
)

func someTrades(n int) []journal.Trade {
	trades := make([]journal.Trade, n)
	for i := range trades {
		trades[i] = journal.Trade{
			Time:   time.Date(2024, 1, 1+i, 9, 30, 0, 0, time.UTC),
			Symbol: "AAPL",
			Side:   normalize.Buy,
			Qty:    10,
			Price:  100,
			PnL:    float64(i),
		}
	}
	return trades
}

func TestBuildPromptCapsTrades(t *testing.T) {
	t.Parallel()

	prompt, err := BuildPrompt(someTrades(5), 2)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Here are 2 trades")

	prompt, err = BuildPrompt(someTrades(5), 0)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Here are 5 trades")
}

func TestNoop(t *testing.T) {
	t.Parallel()

	got, err := Noop{}.Insights(context.Background(), someTrades(3))
	require.NoError(t, err)
	assert.Contains(t, got, "3 trades")
}

func TestAnthropicInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Write([]byte(`{"content":[{"type":"text","text":"cut your losers sooner"}]}`))
	}))
	defer srv.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	gen := NewAnthropic("test-model", srv.URL, 10)
	got, err := gen.Insights(context.Background(), someTrades(3))
	require.NoError(t, err)
	assert.Equal(t, "cut your losers sooner", got)
}

func TestAnthropicMissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	gen := NewAnthropic("test-model", "", 10)
	_, err := gen.Insights(context.Background(), someTrades(1))
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "ANTHROPIC_API_KEY"))
}
