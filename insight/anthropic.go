package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rustyeddy/tradebook/journal"
)

const defaultEndpoint = "https://api.anthropic.com/v1/messages"

const systemPrompt = "You are a trading coach reviewing a trade journal. " +
	"Be specific and blunt; refer to actual numbers from the trades."

// Anthropic is a Generator backed by the Anthropic messages API. The API key
// comes from the ANTHROPIC_API_KEY environment variable.
type Anthropic struct {
	Model     string
	Endpoint  string
	MaxTrades int
	Client    *http.Client
}

func NewAnthropic(model, endpoint string, maxTrades int) *Anthropic {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Anthropic{
		Model:     model,
		Endpoint:  endpoint,
		MaxTrades: maxTrades,
		Client:    http.DefaultClient,
	}
}

func (a *Anthropic) Insights(ctx context.Context, trades []journal.Trade) (string, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return "", errors.New("ANTHROPIC_API_KEY missing")
	}

	prompt, err := BuildPrompt(trades, a.MaxTrades)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(map[string]any{
		"model":      a.Model,
		"max_tokens": 1024,
		"system":     systemPrompt,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("insight http %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode insight response: %w", err)
	}
	if len(out.Content) == 0 {
		return "", errors.New("empty insight response")
	}
	return out.Content[0].Text, nil
}
