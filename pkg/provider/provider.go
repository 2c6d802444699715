// Package provider defines the contracts for external collaborators: the
// market-data quote source, its cache, and the LLM content generator.
// Implementations live in infra; services depend only on these interfaces
// so external latency and failures stay at the edge.
package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteProvider fetches the current price for a symbol from an external
// market-data source. Implementations must honor ctx cancellation so a
// slow provider cannot stall the caller.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// QuoteCache caches quote lookups. A miss returns (zero, false, nil).
type QuoteCache interface {
	Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error
}

// ContentGenerator produces a completion for a prompt. The Gemini client
// in infra implements it; tests substitute a stub.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
