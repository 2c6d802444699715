// Package alphavantage implements the quote provider over the Alpha
// Vantage GLOBAL_QUOTE endpoint.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/shopspring/decimal"
)

type globalQuoteResponse struct {
	GlobalQuote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
}

// Client fetches quotes from Alpha Vantage.
type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

// New creates a Client from the market configuration.
func New(cfg config.MarketConfig) *Client {
	return &Client{
		apiURL: cfg.ApiUrl,
		apiKey: cfg.ApiKey,
		http:   &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Quote implements provider.QuoteProvider.
func (c *Client) Quote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return decimal.Zero, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("quote provider returned status %d", resp.StatusCode)
	}
	var body globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse quote response: %w", err)
	}
	if body.GlobalQuote.Price == "" {
		return decimal.Zero, fmt.Errorf("no quote for symbol %q", symbol)
	}
	price, err := decimal.NewFromString(body.GlobalQuote.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid quote price %q: %w", body.GlobalQuote.Price, err)
	}
	return price, nil
}
