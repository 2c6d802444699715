package domain

import "github.com/shopspring/decimal"

// LedgerState is the mutable financial state of one account in one scope:
// the cash balance, the running net cost of open positions, and the
// per-class accumulators. All mutation goes through ApplyBuy/ApplySell so
// the clamping rules live in exactly one place.
type LedgerState struct {
	Balance        decimal.Decimal
	BoughtSum      decimal.Decimal
	StocksTotal    decimal.Decimal
	BondsTotal     decimal.Decimal
	InsuranceTotal decimal.Decimal
}

// StartingBalance is the cash every new account is seeded with, in both
// the real and virtual scopes.
var StartingBalance = decimal.NewFromInt(10000)

// NewLedgerState returns a fresh state holding the starting balance.
func NewLedgerState() LedgerState {
	return LedgerState{
		Balance:        StartingBalance,
		BoughtSum:      decimal.Zero,
		StocksTotal:    decimal.Zero,
		BondsTotal:     decimal.Zero,
		InsuranceTotal: decimal.Zero,
	}
}

// CanAfford reports whether the balance covers amount.
func (s LedgerState) CanAfford(amount decimal.Decimal) bool {
	return s.Balance.GreaterThanOrEqual(amount)
}

// ApplyBuy debits the balance and credits the bought-sum and the class
// accumulator. The caller must have checked CanAfford first.
func (s *LedgerState) ApplyBuy(amount decimal.Decimal, class AssetClass) {
	s.Balance = s.Balance.Sub(amount)
	s.BoughtSum = s.BoughtSum.Add(amount)
	switch class {
	case ClassStock:
		s.StocksTotal = s.StocksTotal.Add(amount)
	case ClassBond:
		s.BondsTotal = s.BondsTotal.Add(amount)
	default:
		// Unspecified classes accumulate in the insurance bucket.
		s.InsuranceTotal = s.InsuranceTotal.Add(amount)
	}
}

// ApplySell credits the balance and debits the bought-sum and the class
// accumulator. Accumulators clamp at zero; they never go negative.
func (s *LedgerState) ApplySell(amount decimal.Decimal, class AssetClass) {
	s.Balance = s.Balance.Add(amount)
	s.BoughtSum = clampZero(s.BoughtSum.Sub(amount))
	switch class {
	case ClassStock:
		s.StocksTotal = clampZero(s.StocksTotal.Sub(amount))
	case ClassBond:
		s.BondsTotal = clampZero(s.BondsTotal.Sub(amount))
	default:
		s.InsuranceTotal = clampZero(s.InsuranceTotal.Sub(amount))
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
