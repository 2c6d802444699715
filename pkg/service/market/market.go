// Package market serves sentiment and quote lookups. Sentiment is a fixed
// mock table; quotes come from the external provider behind a cache and a
// hard timeout so market-data latency never leaks into the ledger path.
package market

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/provider"
	"github.com/shopspring/decimal"
)

// Sentiment is the mock sentiment result for a symbol.
type Sentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// sentimentTable is the fixed mock dataset. Unknown symbols fall back to
// neutral.
var sentimentTable = map[string]Sentiment{
	"AAPL": {Score: 0.72, Label: "positive"},
	"MSFT": {Score: 0.65, Label: "positive"},
	"GOOG": {Score: 0.58, Label: "positive"},
	"TSLA": {Score: 0.41, Label: "neutral"},
	"IBM":  {Score: 0.49, Label: "neutral"},
	"NFLX": {Score: 0.33, Label: "negative"},
}

var neutralSentiment = Sentiment{Score: 0.5, Label: "neutral"}

// Service provides sentiment and quote reads.
type Service struct {
	quotes   provider.QuoteProvider
	cache    provider.QuoteCache
	cacheTTL time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// NewService creates a market Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return &Service{
		quotes:   deps.Quotes,
		cache:    deps.QuoteCache,
		cacheTTL: deps.Config.Market.CacheTTL,
		timeout:  deps.Config.Market.HTTPTimeout,
		logger:   deps.Logger,
	}
}

// GetSentiment returns the mock sentiment for a symbol.
func (s *Service) GetSentiment(symbol string) Sentiment {
	if sent, ok := sentimentTable[strings.ToUpper(symbol)]; ok {
		return sent
	}
	return neutralSentiment
}

// GetQuote returns the current price for a symbol, served from cache when
// fresh. Provider calls are bounded by the configured timeout.
func (s *Service) GetQuote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	symbol = strings.ToUpper(symbol)
	logger := s.logger.With("symbol", symbol)

	if price, ok, err := s.cache.Get(ctx, symbol); err != nil {
		logger.Warn("quote cache read failed", "error", err)
	} else if ok {
		return price, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	price, err := s.quotes.Quote(ctx, symbol)
	if err != nil {
		logger.Error("quote fetch failed", "error", err)
		return decimal.Zero, err
	}
	if err := s.cache.Set(ctx, symbol, price, s.cacheTTL); err != nil {
		logger.Warn("quote cache write failed", "error", err)
	}
	return price, nil
}
