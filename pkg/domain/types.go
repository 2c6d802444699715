// Package domain holds the core types of the investment ledger: trade and
// asset enumerations, the per-scope ledger state with its clamping rules,
// and the sentinel errors shared across services.
package domain

// Scope selects which ledger a trade targets. The real and virtual ledgers
// run the same engine over independent state.
type Scope string

const (
	// ScopeReal targets the real balance, holdings and transaction log.
	ScopeReal Scope = "real"
	// ScopeVirtual targets the paper-trading shadow state.
	ScopeVirtual Scope = "virtual"
)

// TradeType is the direction of a trade.
type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

// Valid reports whether t is a known trade type.
func (t TradeType) Valid() bool {
	return t == TradeBuy || t == TradeSell
}

// AssetClass buckets a trade into one of the per-class accumulators.
type AssetClass string

const (
	ClassStock     AssetClass = "stock"
	ClassBond      AssetClass = "bond"
	ClassInsurance AssetClass = "insurance"
)

// RiskTolerance is a user's declared appetite for risk.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

// Valid reports whether r is a known risk tolerance.
func (r RiskTolerance) Valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}
